package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/interval/internal/calc"
)

var typeFlag = calc.TypeFlag{Elem: calc.ElemInt}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "interval",
	Short: "Arithmetic over integer intervals",
	Long: `Interval evaluates arithmetic over integer intervals: intersection,
set difference, membership, overlap and element counts. Interval literals use
bracket notation ("[0,3]", "(0,3]", "(,5]") or operator shorthand (">=3",
"<10", "=42"); an empty side of the bracket form is unbounded. Endpoints are
parsed and computed as the element type selected with --type.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().VarP(&typeFlag, "type", "t",
		"element type of the interval endpoints, one of: "+strings.Join(calc.ElemTypeStrings(), ", "))
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
