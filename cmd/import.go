package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/protsap/contactbook/internal/db"
	"github.com/protsap/contactbook/internal/parser"
	"github.com/protsap/contactbook/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Parse contact files and store their contacts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunImport(cmd.OutOrStdout(), cfg.Database, args)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// RunImport stores the contacts of each file. Files are imported one at a
// time; a rejected file stops the run but earlier files stay imported.
func RunImport(w io.Writer, dbPath string, paths []string) error {
	if err := requireDB(dbPath); err != nil {
		return err
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	count := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		input := string(content)

		pairs, err := parseFile(w, path, parser.RuleFile, input)
		if err != nil {
			return err
		}
		contacts, err := parser.Transform(pairs, input)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		importID, err := db.InsertContacts(sqlDB, path, contacts)
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		logger.Debug("imported",
			zap.String("file", path),
			zap.String("import", importID),
			zap.Int("contacts", len(contacts)))

		for _, c := range contacts {
			ui.NewLine(w, c.Name+" "+c.Surname)
		}
		count += len(contacts)
	}

	ui.SummaryLine(w, count, len(paths))
	return nil
}
