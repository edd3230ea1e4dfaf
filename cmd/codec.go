package cmd

import (
	"github.com/p25go/fec/cmd/internal/codec"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode CODE DATA...",
	Aliases: []string{"e", "enc"},
	Short:   "Encode data bits into codewords",
	Long:    `Encode encodes each DATA value (decimal, 0x hex or 0b binary) with the named CODE (cyclic, standard or shortened) and prints the resulting codeword.`,
	Args:    cobra.MinimumNArgs(2),
	Run:     codec.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode CODE WORD...",
	Aliases: []string{"d", "dec"},
	Short:   "Decode received codewords back to data bits",
	Long:    `Decode corrects and decodes each received WORD (decimal, 0x hex or 0b binary) with the named CODE (cyclic, standard or shortened). Unrecoverable words are reported and make the command exit nonzero.`,
	Args:    cobra.MinimumNArgs(2),
	Run:     codec.DecodeRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
