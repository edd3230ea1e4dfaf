package verify

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/p25go/fec/cmd/internal/codec"
	"github.com/p25go/fec/coding/cyclic"
	"github.com/p25go/fec/coding/hamming"
	"github.com/p25go/fec/coding/sweep"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Threads  uint
	Progress bool
)

var VerifyRun = func(cmd *cobra.Command, args []string) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	codecs := sweep.All()
	if len(args) == 1 {
		c, err := codec.ByName(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		codecs = []sweep.Codec{c}
	}

	failed := false
	for _, c := range codecs {
		if !duality(c.Name) {
			fmt.Printf("%v: generator and parity-check tables are not dual\n", c.Name)
			failed = true
			continue
		}
		logrus.Debugf("%v: generator/parity-check duality holds", c.Name)

		for weight := 0; weight <= c.Radius; weight++ {
			stats := runSweep(ctx, c, weight)
			fmt.Printf("%v weight %v: %v\n", c.Name, weight, stats)
			if stats.Failures > 0 {
				failed = true
			}
			if ctx.Err() != nil {
				fmt.Println("verification interrupted")
				os.Exit(1)
			}
		}
	}

	if failed {
		fmt.Println("verification FAILED")
		os.Exit(1)
	}
	fmt.Println("verification passed")
}

func runSweep(ctx context.Context, c sweep.Codec, weight int) sweep.Stats {
	if weight == 0 {
		return sweep.RoundTrip(ctx, c, int(Threads), nil, Progress)
	}
	return sweep.ErrorSweep(ctx, c, weight, int(Threads), nil, Progress)
}

func duality(name string) bool {
	switch name {
	case sweep.Cyclic().Name:
		return cyclic.Validate()
	case hamming.Standard.Name:
		return hamming.Standard.Validate()
	case hamming.Shortened.Name:
		return hamming.Shortened.Validate()
	}
	return false
}
