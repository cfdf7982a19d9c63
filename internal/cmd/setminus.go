package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

// setminusCmd represents the setminus command
var setminusCmd = &cobra.Command{
	Use:   "setminus A B",
	Short: "Print the parts of interval A not covered by interval B",
	Long: `Setminus prints the decomposition of A \ B into at most two disjoint
intervals, left fragment first. An absent fragment prints as "(empty)".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := calc.NewEvaluator(typeFlag.Elem).SetMinus(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setminusCmd)
}
