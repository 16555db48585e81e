package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/protsap/contactbook/internal/parser"
	"github.com/protsap/contactbook/internal/ui"
)

var ruleFlag string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the match tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunParse(cmd.OutOrStdout(), args[0], ruleFlag)
	},
}

func init() {
	parseCmd.Flags().StringVar(&ruleFlag, "rule", parser.RuleFile.String(), "Start rule (file, contact, phone, string, date)")
	rootCmd.AddCommand(parseCmd)
}

func RunParse(w io.Writer, path, ruleName string) error {
	rule, err := parser.LookupRule(ruleName)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	input := string(content)

	pairs, err := parseFile(w, path, rule, input)
	if err != nil {
		return err
	}
	ui.Tree(w, pairs)
	return nil
}

// parseFile parses input and prints a diagnostic on rejection.
func parseFile(w io.Writer, path string, rule parser.Rule, input string) (parser.Pairs, error) {
	pairs, err := parser.Parse(rule, input)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			ui.Diagnostic(w, path, input, perr)
			logger.Debug("parse rejected",
				zap.String("file", path),
				zap.Int("offset", perr.Offset),
				zap.Stringer("kind", perr.Kind))
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("parsed", zap.String("file", path), zap.Stringer("rule", rule))
	return pairs, nil
}
