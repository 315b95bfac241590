// Package ledger persists the durable record of completed sends, used for
// idempotent re-runs of the mail pipeline.
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/varun/outreach/internal/types"
)

// The ledger file is a CSV with a header row and one row per completed send.
// Only Success rows are ever written, so membership of an email in the ledger
// means "done, never retry".
var header = []string{"email", "status", "error"}

// LoadSentSet returns the set of email addresses already recorded as sent.
// A missing ledger file is an empty set, not an error.
func LoadSentSet(path string) (map[string]bool, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	sent := make(map[string]bool, len(rows))
	for _, row := range rows {
		if len(row) > 0 && row[0] != "" {
			sent[row[0]] = true
		}
	}
	return sent, nil
}

// Append rewrites the ledger as the union of its previous rows and the
// Success outcomes from this run. Failed outcomes are never persisted, so
// they are retried on every future run.
func Append(path string, outcomes []types.SendOutcome) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		if o.Status != types.StatusSuccess {
			continue
		}
		rows = append(rows, []string{o.Email, string(o.Status), o.Error})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write ledger %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write ledger rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush ledger: %w", err)
	}
	return f.Close()
}

// readRows returns all data rows of the ledger, excluding the header.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse ledger %s: %w", path, err)
	}

	if len(records) > 0 {
		records = records[1:] // drop header
	}
	return records, nil
}
