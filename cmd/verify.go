package cmd

import (
	"github.com/p25go/fec/cmd/internal/verify"

	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:     "verify [CODE]",
	Aliases: []string{"v"},
	Short:   "Exhaustively verify the codec tables",
	Long:    `Verify checks generator/parity-check duality and then sweeps every data value and every correctable error pattern of the named CODE (cyclic, standard or shortened), or of all codes when none is named.`,
	Args:    cobra.MaximumNArgs(1),
	Run:     verify.VerifyRun,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().UintVarP(&verify.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	verifyCmd.Flags().BoolVarP(&verify.Progress, "progress", "p", true, "show progress bars")
}
