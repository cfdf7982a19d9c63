package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

// overlapsCmd represents the overlaps command
var overlapsCmd = &cobra.Command{
	Use:   "overlaps A B",
	Short: "Report whether two intervals share at least one element",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := calc.NewEvaluator(typeFlag.Elem).Overlaps(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overlapsCmd)
}
