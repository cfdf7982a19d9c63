package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

// boundsCmd represents the bounds command
var boundsCmd = &cobra.Command{
	Use:   "bounds A",
	Short: "Print the canonical closed form of an interval",
	Long: `Bounds resolves the interval literal against the selected element type:
excluded endpoints are moved inward and unbounded sides snap to the extreme
values of the type.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := calc.NewEvaluator(typeFlag.Elem).Bounds(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boundsCmd)
}
