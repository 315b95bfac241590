package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/varun/outreach/internal/types"
)

// WriteJSON writes the indented JSON report.
func WriteJSON(path string, r types.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// WriteText writes the parallel plain-text report.
func WriteText(path string, r types.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	defer f.Close()

	if err := RenderText(f, r); err != nil {
		return err
	}
	return f.Close()
}

// RenderText renders the human-readable report: header, summary block, then
// numbered findings.
func RenderText(w io.Writer, r types.Report) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Security Report - %s\n", r.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")
	sb.WriteString(fmt.Sprintf("Total issues found: %d\n", r.Summary.TotalIssues))
	sb.WriteString(fmt.Sprintf("High severity issues: %d\n", r.Summary.HighSeverity))
	sb.WriteString(fmt.Sprintf("Medium severity issues: %d\n", r.Summary.MediumSeverity))
	sb.WriteString(fmt.Sprintf("Low severity issues: %d\n", r.Summary.LowSeverity))
	sb.WriteString(fmt.Sprintf("Other issues: %d\n\n", r.Summary.OtherIssues))

	if len(r.Findings) > 0 {
		sb.WriteString("Detailed Findings:\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n\n")

		for i, f := range r.Findings {
			sb.WriteString(fmt.Sprintf("Issue #%d:\n", i+1))
			sb.WriteString(fmt.Sprintf("  File: %s\n", f.File))
			sb.WriteString(fmt.Sprintf("  Line: %d\n", f.Line))
			sb.WriteString(fmt.Sprintf("  Type: %s\n", f.Type))
			if f.Severity != "" {
				sb.WriteString(fmt.Sprintf("  Severity: %s\n", f.Severity))
			}
			sb.WriteString(fmt.Sprintf("  Content: %s\n\n", f.Content))
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
