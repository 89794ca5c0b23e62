// Package ledger writes submissions in the plain-text credentials ledger format.
package ledger

import (
	"bytes"
	"fmt"
	"io"

	"github.com/natefinch/atomic"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
)

// DefaultPath is the conventional ledger file name.
const DefaultPath = "credentials.txt"

// Render concatenates the blocks of entries in order.
func Render(entries []model.LedgerEntry) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e.Block())
	}
	return buf.Bytes()
}

// Write renders entries to w.
func Write(w io.Writer, entries []model.LedgerEntry) error {
	if _, err := w.Write(Render(entries)); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

// WriteFile replaces path with the rendered ledger atomically.
func WriteFile(path string, entries []model.LedgerEntry) error {
	if err := atomic.WriteFile(path, bytes.NewReader(Render(entries))); err != nil {
		return fmt.Errorf("write ledger %q: %w", path, err)
	}
	return nil
}
