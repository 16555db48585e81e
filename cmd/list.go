package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/protsap/contactbook/internal/db"
	"github.com/protsap/contactbook/internal/ui"
)

var surnameFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), cfg.Database, surnameFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&surnameFlag, "surname", "", "Filter by surname")
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer, dbPath, surname string) error {
	if err := requireDB(dbPath); err != nil {
		return err
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	contacts, err := db.ListContacts(sqlDB, surname)
	if err != nil {
		return err
	}

	// Compute column widths
	idWidth, nameWidth := 0, 0
	for _, c := range contacts {
		if n := len(fmt.Sprintf("%d", c.ID)); n > idWidth {
			idWidth = n
		}
		if n := len(c.Name) + 1 + len(c.Surname); n > nameWidth {
			nameWidth = n
		}
	}

	for _, c := range contacts {
		ui.ContactRow(w, c, idWidth, nameWidth)
	}
	return nil
}
