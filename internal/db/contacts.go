package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/protsap/contactbook/internal/parser"
)

const birthdayFormat = "2006-01-02"

var ErrNotFound = errors.New("not found")

// Contact is a stored contact with its phones in file order.
type Contact struct {
	ID       int64
	ImportID string
	Source   string
	Line     int
	Name     string
	Surname  string
	Address  string
	Birthday time.Time
	Phones   []string
}

// Import describes one import run.
type Import struct {
	ID         string
	Source     string
	ImportedAt string
	Contacts   int
}

// Stats summarizes the database contents.
type Stats struct {
	Contacts int
	Phones   int
	Imports  int
}

// InsertContacts stores contacts parsed from source under a new import ID
// and returns that ID. Either every contact is stored or none is.
func InsertContacts(sqlDB *sql.DB, source string, contacts []parser.ParsedContact) (string, error) {
	importID := uuid.NewString()

	tx, err := sqlDB.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO imports (id, source) VALUES (?, ?)`, importID, source); err != nil {
		return "", fmt.Errorf("inserting import: %w", err)
	}

	for _, c := range contacts {
		res, err := tx.Exec(`INSERT INTO contacts (import_id, line, name, surname, address, birthday) VALUES (?, ?, ?, ?, ?, ?)`,
			importID, c.Line, c.Name, c.Surname, c.Address, c.Birthday.Format(birthdayFormat))
		if err != nil {
			return "", fmt.Errorf("inserting contact at line %d: %w", c.Line, err)
		}
		contactID, err := res.LastInsertId()
		if err != nil {
			return "", err
		}
		for i, phone := range c.Phones {
			_, err := tx.Exec(`INSERT INTO phones (contact_id, position, raw, normalized) VALUES (?, ?, ?, ?)`,
				contactID, i, phone, parser.NormalizePhone(phone))
			if err != nil {
				return "", fmt.Errorf("inserting phone %s: %w", phone, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing import: %w", err)
	}
	return importID, nil
}

// ListContacts returns stored contacts ordered by surname, name and ID. An
// empty surname matches every contact.
func ListContacts(sqlDB *sql.DB, surname string) ([]Contact, error) {
	rows, err := sqlDB.Query(`
		SELECT c.id, c.import_id, i.source, c.line, c.name, c.surname, c.address, c.birthday
		FROM contacts c
		JOIN imports i ON c.import_id = i.id
		WHERE ? = '' OR c.surname = ?
		ORDER BY c.surname, c.name, c.id
	`, surname, surname)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}

	for i := range contacts {
		if contacts[i].Phones, err = phones(sqlDB, contacts[i].ID); err != nil {
			return nil, err
		}
	}
	return contacts, nil
}

// GetContact returns the contact with the given ID, or ErrNotFound.
func GetContact(sqlDB *sql.DB, id int64) (Contact, error) {
	row := sqlDB.QueryRow(`
		SELECT c.id, c.import_id, i.source, c.line, c.name, c.surname, c.address, c.birthday
		FROM contacts c
		JOIN imports i ON c.import_id = i.id
		WHERE c.id = ?
	`, id)
	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Contact{}, fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Contact{}, err
	}
	if c.Phones, err = phones(sqlDB, id); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// ListImports returns import runs, oldest first, with their contact counts.
func ListImports(sqlDB *sql.DB) ([]Import, error) {
	rows, err := sqlDB.Query(`
		SELECT i.id, i.source, i.imported_at, COUNT(c.id)
		FROM imports i
		LEFT JOIN contacts c ON c.import_id = i.id
		GROUP BY i.id
		ORDER BY i.imported_at, i.rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying imports: %w", err)
	}
	defer rows.Close()

	var imports []Import
	for rows.Next() {
		var im Import
		if err := rows.Scan(&im.ID, &im.Source, &im.ImportedAt, &im.Contacts); err != nil {
			return nil, fmt.Errorf("scanning import row: %w", err)
		}
		imports = append(imports, im)
	}
	return imports, rows.Err()
}

// CountAll returns row counts for the stats report.
func CountAll(sqlDB *sql.DB) (Stats, error) {
	var s Stats
	err := sqlDB.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM contacts),
			(SELECT COUNT(*) FROM phones),
			(SELECT COUNT(*) FROM imports)
	`).Scan(&s.Contacts, &s.Phones, &s.Imports)
	if err != nil {
		return Stats{}, fmt.Errorf("counting rows: %w", err)
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (Contact, error) {
	var c Contact
	var birthday string
	if err := row.Scan(&c.ID, &c.ImportID, &c.Source, &c.Line, &c.Name, &c.Surname, &c.Address, &birthday); err != nil {
		return Contact{}, err
	}
	t, err := time.Parse(birthdayFormat, birthday)
	if err != nil {
		return Contact{}, fmt.Errorf("contact %d: birthday %q: %w", c.ID, birthday, err)
	}
	c.Birthday = t
	return c, nil
}

func phones(sqlDB *sql.DB, contactID int64) ([]string, error) {
	rows, err := sqlDB.Query(`SELECT raw FROM phones WHERE contact_id = ? ORDER BY position`, contactID)
	if err != nil {
		return nil, fmt.Errorf("querying phones: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning phone row: %w", err)
		}
		out = append(out, raw)
	}
	return out, rows.Err()
}
