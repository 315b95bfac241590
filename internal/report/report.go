// Package report aggregates scan findings into the write-once run report and
// renders the JSON and text outputs.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/varun/outreach/internal/types"
)

// New builds the report for one scan run: findings in source order plus the
// severity-bucket summary.
func New(findings []types.Finding) types.Report {
	if findings == nil {
		findings = []types.Finding{}
	}
	return types.Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now(),
		Findings:  findings,
		Summary:   Summarize(findings),
	}
}

// Summarize buckets findings by severity. Findings without a recognized
// severity (all pattern-based ones) count as Other, so the four buckets
// always sum to the total.
func Summarize(findings []types.Finding) types.Summary {
	s := types.Summary{TotalIssues: len(findings)}
	for _, f := range findings {
		switch f.Severity {
		case types.SeverityHigh:
			s.HighSeverity++
		case types.SeverityMedium:
			s.MediumSeverity++
		case types.SeverityLow:
			s.LowSeverity++
		default:
			s.OtherIssues++
		}
	}
	return s
}

// HasHighSeverity reports whether the run must exit non-zero.
func HasHighSeverity(r types.Report) bool {
	return r.Summary.HighSeverity > 0
}
