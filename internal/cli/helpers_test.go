package cli

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// testDB returns a database path inside the test's temp dir.
func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

// runCommand executes the CLI with the given args against db and returns
// the combined output. A fresh root command is built per call so flag state
// never leaks between invocations.
func runCommand(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	return runCommandIn(t, db, "", args...)
}

// runCommandIn is runCommand with stdin content (for confirmation prompts).
func runCommandIn(t *testing.T, db, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--db", db))

	err := cmd.Execute()
	return buf.String(), err
}

// seedBook adds a tracked book and fails the test on error.
func seedBook(t *testing.T, db, title, author, genre string, price, stock int64) {
	t.Helper()

	args := []string{
		"add-book",
		"--title", title,
		"--author", author,
		"--price", strconv.FormatInt(price, 10),
	}
	if genre != "" {
		args = append(args, "--genre", genre)
	}
	if stock >= 0 {
		args = append(args, "--stock", strconv.FormatInt(stock, 10))
	}
	if _, err := runCommand(t, db, args...); err != nil {
		t.Fatalf("seed add-book %q failed: %v", title, err)
	}
}
