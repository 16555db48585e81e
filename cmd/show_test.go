package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protsap/contactbook/internal/db"
)

func runShow(t *testing.T, id string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, testDB, id))
	return buf.String()
}

func TestShow_Contact(t *testing.T) {
	inTempDir(t)
	importSample(t)

	out := runShow(t, "1")

	assert.Contains(t, out, "#1 John Doe")
	assert.Contains(t, out, "address:  Some address")
	assert.Contains(t, out, "birthday: 2000-01-01")
	assert.Contains(t, out, "phone:    +380501234567")
	assert.Contains(t, out, "phone:    +380501234568")
	assert.Contains(t, out, "from book.contacts:1")
}

func TestShow_HashPrefix(t *testing.T) {
	inTempDir(t)
	importSample(t)

	out := runShow(t, "#2")

	assert.Contains(t, out, "Jane Roe")
	assert.Contains(t, out, "from book.contacts:8")
}

func TestShow_InvalidID(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	err := RunShow(&buf, testDB, "abc")
	assert.EqualError(t, err, "invalid contact ID: abc")
}

func TestShow_NotFound(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	err := RunShow(&buf, testDB, "99")
	assert.ErrorIs(t, err, db.ErrNotFound)
}
