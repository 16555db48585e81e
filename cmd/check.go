package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/protsap/contactbook/internal/parser"
	"github.com/protsap/contactbook/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate contact files without importing them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCheck(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func RunCheck(w io.Writer, paths []string) error {
	failed := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			ui.FailLine(w, path, err)
			failed++
			continue
		}
		input := string(content)

		pairs, err := parser.Parse(parser.RuleFile, input)
		if err == nil {
			_, err = parser.Transform(pairs, input)
		}
		if err != nil {
			ui.FailLine(w, path, err)
			var perr *parser.Error
			if errors.As(err, &perr) {
				ui.Diagnostic(w, path, input, perr)
			}
			failed++
			continue
		}
		ui.OkLine(w, path, len(pairs.Find(parser.RuleContact)))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
