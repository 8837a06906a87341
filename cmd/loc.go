package cmd

import (
	"fmt"
	"os"

	"github.com/gaperf/gaperf/loc"
	"github.com/spf13/cobra"
)

var locSource string

var locCmd = &cobra.Command{
	Use:   "loc",
	Short: "Count executable lines of code per implementation",
	Long: `Loc counts executable lines for each language implementation,
excluding comments, docstrings, and blank lines, and prints per-file
counts with per-language totals.`,
	Example: `  gaperf loc --source ./implementations`,
	RunE:    runLoc,
}

func init() {
	locCmd.Flags().StringVarP(&locSource, "source", "s", "./implementations", "Directory with the language implementations")

	rootCmd.AddCommand(locCmd)
}

func runLoc(cmd *cobra.Command, args []string) error {
	counts, err := loc.CountTree(locSource)
	if err != nil {
		return fmt.Errorf("error counting lines: %w", err)
	}
	if len(counts) == 0 {
		return fmt.Errorf("no supported source files found under %s", locSource)
	}

	loc.PrintReport(os.Stdout, counts)
	return nil
}
