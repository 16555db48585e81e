package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protsap/contactbook/internal/parser"
)

func openContactDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := Open(filepath.Join(t.TempDir(), "contacts", "contacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

func sampleContacts() []parser.ParsedContact {
	return []parser.ParsedContact{
		{
			Name:     "John",
			Surname:  "Doe",
			Phones:   []string{"+380501234567", "+38(050)123-45-68"},
			Address:  "Some address",
			Birthday: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			Line:     1,
		},
		{
			Name:     "Jane",
			Surname:  "Austen",
			Phones:   []string{"+44 1234 567890"},
			Address:  "Chawton",
			Birthday: time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC),
			Line:     8,
		},
	}
}

func TestOpen_UsesWAL(t *testing.T) {
	sqlDB := openContactDB(t)

	var mode string
	require.NoError(t, sqlDB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestInsertContacts_StoresImport(t *testing.T) {
	sqlDB := openContactDB(t)

	importID, err := InsertContacts(sqlDB, "book.contacts", sampleContacts())
	require.NoError(t, err)
	_, err = uuid.Parse(importID)
	require.NoError(t, err)

	imports, err := ListImports(sqlDB)
	require.NoError(t, err)
	require.Len(t, imports, 1)
	assert.Equal(t, importID, imports[0].ID)
	assert.Equal(t, "book.contacts", imports[0].Source)
	assert.Equal(t, 2, imports[0].Contacts)
}

func TestListContacts_OrderedBySurname(t *testing.T) {
	sqlDB := openContactDB(t)
	_, err := InsertContacts(sqlDB, "book.contacts", sampleContacts())
	require.NoError(t, err)

	contacts, err := ListContacts(sqlDB, "")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Austen", contacts[0].Surname)
	assert.Equal(t, "Doe", contacts[1].Surname)
	assert.Equal(t, []string{"+380501234567", "+38(050)123-45-68"}, contacts[1].Phones)
	assert.Equal(t, time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC), contacts[0].Birthday)
}

func TestListContacts_FilterBySurname(t *testing.T) {
	sqlDB := openContactDB(t)
	_, err := InsertContacts(sqlDB, "book.contacts", sampleContacts())
	require.NoError(t, err)

	contacts, err := ListContacts(sqlDB, "Doe")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "John", contacts[0].Name)
}

func TestGetContact(t *testing.T) {
	sqlDB := openContactDB(t)
	_, err := InsertContacts(sqlDB, "book.contacts", sampleContacts())
	require.NoError(t, err)

	c, err := GetContact(sqlDB, 2)
	require.NoError(t, err)
	assert.Equal(t, "Jane", c.Name)
	assert.Equal(t, "book.contacts", c.Source)
	assert.Equal(t, 8, c.Line)
	assert.Equal(t, []string{"+44 1234 567890"}, c.Phones)
}

func TestGetContact_NotFound(t *testing.T) {
	sqlDB := openContactDB(t)

	_, err := GetContact(sqlDB, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountAll(t *testing.T) {
	sqlDB := openContactDB(t)
	_, err := InsertContacts(sqlDB, "a.contacts", sampleContacts())
	require.NoError(t, err)
	_, err = InsertContacts(sqlDB, "b.contacts", sampleContacts()[:1])
	require.NoError(t, err)

	stats, err := CountAll(sqlDB)
	require.NoError(t, err)
	assert.Equal(t, Stats{Contacts: 3, Phones: 5, Imports: 2}, stats)
}

func TestPhones_Normalized(t *testing.T) {
	sqlDB := openContactDB(t)
	_, err := InsertContacts(sqlDB, "book.contacts", sampleContacts())
	require.NoError(t, err)

	var normalized string
	require.NoError(t, sqlDB.QueryRow(`SELECT normalized FROM phones WHERE raw = ?`, "+38(050)123-45-68").Scan(&normalized))
	assert.Equal(t, "+380501234568", normalized)
}
