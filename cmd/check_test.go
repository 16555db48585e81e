package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_AllValid(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("a.contacts", []byte(johnDoe), 0o644))
	require.NoError(t, os.WriteFile("b.contacts", []byte(johnDoe+"\n"+janeRoe+"\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunCheck(&buf, []string{"a.contacts", "b.contacts"}))

	out := buf.String()
	assert.Contains(t, out, "ok   a.contacts (1 contacts)")
	assert.Contains(t, out, "ok   b.contacts (2 contacts)")
}

func TestCheck_ReportsFailures(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("a.contacts", []byte(johnDoe), 0o644))
	require.NoError(t, os.WriteFile("b.contacts", []byte(johnDoe+johnDoe), 0o644))

	var buf bytes.Buffer
	err := RunCheck(&buf, []string{"a.contacts", "b.contacts", "missing.contacts"})
	assert.EqualError(t, err, "2 of 3 files failed")

	out := buf.String()
	assert.Contains(t, out, "ok   a.contacts")
	assert.Contains(t, out, "err  b.contacts: 7:1: unexpected token, expected line_break")
	assert.Contains(t, out, "err  missing.contacts")
}

func TestCheck_InvalidBirthday(t *testing.T) {
	inTempDir(t)
	content := `[contact]
name = "John"
surname = "Doe"
phones = ["+380501234567"]
address = "Some address"
birthday = "2000-02-30"
`
	require.NoError(t, os.WriteFile("a.contacts", []byte(content), 0o644))

	var buf bytes.Buffer
	require.Error(t, RunCheck(&buf, []string{"a.contacts"}))
	assert.Contains(t, buf.String(), "invalid birthday")
}
