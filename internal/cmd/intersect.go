package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

// intersectCmd represents the intersect command
var intersectCmd = &cobra.Command{
	Use:   "intersect A B",
	Short: "Print the intersection of two intervals",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := calc.NewEvaluator(typeFlag.Elem).Intersect(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intersectCmd)
}
