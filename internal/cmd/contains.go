package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

// containsCmd represents the contains command
var containsCmd = &cobra.Command{
	Use:   "contains A X",
	Short: "Report whether the value X lies in interval A",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := calc.NewEvaluator(typeFlag.Elem).Contains(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(containsCmd)
}
