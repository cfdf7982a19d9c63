package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

// lengthCmd represents the length command
var lengthCmd = &cobra.Command{
	Use:   "length A",
	Short: "Print the number of elements in an interval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := calc.NewEvaluator(typeFlag.Elem).Length(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lengthCmd)
}
