// Package recipients loads and validates the recipient list for a send run.
package recipients

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/varun/outreach/internal/types"
)

// Load reads the headerless three-column recipient CSV (email, first_name,
// company) in order. Rows whose address fails the format check are returned
// separately so the caller can warn about them; they are never attempted.
func Load(path string) (valid []types.Recipient, invalid []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open recipients CSV %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse recipients CSV %s: %w", path, err)
		}
		if len(row) < 3 {
			invalid = append(invalid, strings.Join(row, ","))
			continue
		}

		rcpt := types.Recipient{
			Email:     strings.TrimSpace(row[0]),
			FirstName: strings.TrimSpace(row[1]),
			Company:   strings.TrimSpace(row[2]),
		}
		if !types.IsValidAddress(rcpt.Email) || rcpt.Validate() != nil {
			invalid = append(invalid, rcpt.Email)
			continue
		}
		valid = append(valid, rcpt)
	}

	return valid, invalid, nil
}
