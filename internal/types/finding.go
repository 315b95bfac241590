package types

import "time"

// Severity levels emitted by the external analyzer. Pattern-based findings
// carry no severity and are counted in the Other bucket.
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
	SeverityLow    = "LOW"
)

// Finding is one reported issue from the scanner. All four finding sources
// flatten into this shape.
type Finding struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Content  string `json:"content"`
	Type     string `json:"type"`
	Severity string `json:"severity,omitempty"`
}

// Summary holds the severity-bucket counts for a scan run. TotalIssues always
// equals the sum of the four buckets.
type Summary struct {
	TotalIssues    int `json:"total_issues"`
	HighSeverity   int `json:"high_severity"`
	MediumSeverity int `json:"medium_severity"`
	LowSeverity    int `json:"low_severity"`
	OtherIssues    int `json:"other_issues"`
}

// Report is the write-once output of one scan run.
type Report struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Findings  []Finding `json:"findings"`
	Summary   Summary   `json:"summary"`
}
