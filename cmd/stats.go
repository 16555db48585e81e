package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/protsap/contactbook/internal/db"
	"github.com/protsap/contactbook/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show counts of stored contacts, phones and imports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStats(cmd.OutOrStdout(), cfg.Database)
	},
}

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "List import runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunImports(cmd.OutOrStdout(), cfg.Database)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importsCmd)
}

func RunStats(w io.Writer, dbPath string) error {
	if err := requireDB(dbPath); err != nil {
		return err
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	stats, err := db.CountAll(sqlDB)
	if err != nil {
		return err
	}
	ui.StatsReport(w, stats)
	return nil
}

func RunImports(w io.Writer, dbPath string) error {
	if err := requireDB(dbPath); err != nil {
		return err
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	imports, err := db.ListImports(sqlDB)
	if err != nil {
		return err
	}
	if len(imports) == 0 {
		fmt.Fprintln(w, "no imports yet")
		return nil
	}
	for _, im := range imports {
		ui.ImportRow(w, im)
	}
	return nil
}
