// Package sweep runs exhaustive verification sweeps over the data channel
// codecs: every data value, and every error pattern up to a code's
// correction radius, must decode back to the value it came from. The sweeps
// are deterministic; there is no random channel anywhere.
package sweep

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/combin"
)

// Stats accumulates the outcome of one sweep.
type Stats struct {
	Words     int           // codewords decoded
	Failures  int           // decode failures and wrong recoveries
	Corrected avgstd.AvgStd // corrected-bit counts over successful decodes
}

func (s Stats) String() string {
	return fmt.Sprintf("{Words:%v, Failures:%v, Corrected:%0.02f(+/-%0.02f)}",
		s.Words, s.Failures, s.Corrected.Mean, math.Sqrt(s.Corrected.SampledVariance()))
}

// Checkpoints is called under the stats lock after every decode.
type Checkpoints func(updatedStats Stats)

// RoundTrip decodes the clean codeword of every data value; anything other
// than an exact recovery with zero corrections counts as a failure.
func RoundTrip(ctx context.Context, c Codec, threads int, checkpoints Checkpoints, showProgress bool) Stats {
	return run(ctx, c, []uint16{0}, threads, checkpoints, showProgress)
}

// ErrorSweep XORs every error pattern of the given weight into the codeword
// of every data value; a failure is any decode that does not recover the
// original data with exactly weight corrected bits. Weights above the code's
// correction radius therefore report every word as a failure.
func ErrorSweep(ctx context.Context, c Codec, weight int, threads int, checkpoints Checkpoints, showProgress bool) Stats {
	combinations := combin.Combinations(c.Bits, weight)
	patterns := make([]uint16, 0, len(combinations))
	for _, positions := range combinations {
		var p uint16
		for _, b := range positions {
			p |= 1 << b
		}
		patterns = append(patterns, p)
	}
	return run(ctx, c, patterns, threads, checkpoints, showProgress)
}

func run(ctx context.Context, c Codec, patterns []uint16, threads int, checkpoints Checkpoints, showProgress bool) Stats {
	words := (1 << c.DataBits) * len(patterns)

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(words)
	}

	pool := threadpool.NewFixedSize(ctx, threads, words)
	stats := Stats{}
	statsMux := sync.Mutex{}

	trial := func(data, pattern uint16) {
		if showProgress {
			bar.Increment()
		}

		recovered, errs, ok := c.Decode(c.Encode(data) ^ pattern)
		weight := bits.OnesCount16(pattern)
		failed := !ok || recovered != data || errs != weight
		if failed {
			logrus.Debugf("%v: data %#x pattern %#x: got (%#x, %v, %v)",
				c.Name, data, pattern, recovered, errs, ok)
		}

		statsMux.Lock()
		stats.Words++
		if failed {
			stats.Failures++
		} else {
			stats.Corrected.Update(float64(errs))
		}
		if checkpoints != nil {
			checkpoints(stats)
		}
		statsMux.Unlock()
	}

	for d := 0; d < 1<<c.DataBits; d++ {
		for _, p := range patterns {
			data, pattern := uint16(d), p
			pool.Add(func() { trial(data, pattern) })
		}
	}
	pool.Wait()

	if showProgress {
		bar.Finish()
	}
	return stats
}
