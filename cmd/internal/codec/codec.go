package codec

import (
	"fmt"
	"os"
	"strconv"

	"github.com/p25go/fec/coding/hamming"
	"github.com/p25go/fec/coding/sweep"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ByName returns the codec adapter for a code name.
func ByName(name string) (sweep.Codec, error) {
	switch name {
	case "cyclic":
		return sweep.Cyclic(), nil
	case "standard":
		return sweep.Hamming(hamming.Standard), nil
	case "shortened":
		return sweep.Hamming(hamming.Shortened), nil
	}
	return sweep.Codec{}, fmt.Errorf("unknown code %q: want cyclic, standard or shortened", name)
}

var EncodeRun = func(cmd *cobra.Command, args []string) {
	c, err := ByName(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for _, arg := range args[1:] {
		data, err := parseWord(arg)
		if err != nil {
			fmt.Println("unable to parse data value: ", err)
			os.Exit(1)
		}
		if data>>c.DataBits != 0 {
			fmt.Printf("data %#x wider than the %v bits of %v\n", data, c.DataBits, c.Name)
			os.Exit(1)
		}

		codeword := c.Encode(data)
		logrus.Debugf("%v: data %#x -> codeword %#b", c.Name, data, codeword)
		fmt.Printf("%#04x\n", codeword)
	}
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	c, err := ByName(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	lost := 0
	for _, arg := range args[1:] {
		word, err := parseWord(arg)
		if err != nil {
			fmt.Println("unable to parse word: ", err)
			os.Exit(1)
		}
		if word>>c.Bits != 0 {
			fmt.Printf("word %#x wider than the %v bits of %v\n", word, c.Bits, c.Name)
			os.Exit(1)
		}

		data, errs, ok := c.Decode(word)
		if !ok {
			fmt.Printf("%#04x: unrecoverable\n", word)
			lost++
			continue
		}
		fmt.Printf("%#04x: data %#04x, %v bits corrected\n", word, data, errs)
	}

	if lost > 0 {
		logrus.Debugf("%v: %v of %v words unrecoverable", c.Name, lost, len(args)-1)
		os.Exit(1)
	}
}

func parseWord(arg string) (uint16, error) {
	v, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
