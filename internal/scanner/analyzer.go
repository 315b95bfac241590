package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/varun/outreach/internal/types"
)

// gosec JSON report shape, reduced to the fields flattened into findings.
type gosecIssue struct {
	Severity string `json:"severity"`
	Details  string `json:"details"`
	File     string `json:"file"`
	Code     string `json:"code"`
	Line     string `json:"line"`
}

type gosecReport struct {
	Issues []gosecIssue `json:"Issues"`
}

// checkVulnerabilities runs the external analyzer when it is installed.
// Absence of the tool is a skipped source, not an error. gosec exits non-zero
// when it finds issues, so the exit code is ignored whenever output exists.
func (s *Scanner) checkVulnerabilities(ctx context.Context) []types.Finding {
	gosecPath, err := s.lookPath("gosec")
	if err != nil {
		s.log.Info("gosec is not installed. Install it with: go install github.com/securego/gosec/v2/cmd/gosec@latest")
		return nil
	}

	args := []string{"-fmt=json", "-quiet"}
	if s.cfg.AnalyzerExcludes != "" {
		args = append(args, "-exclude="+s.cfg.AnalyzerExcludes)
	}
	args = append(args, "./...")

	cmd := exec.CommandContext(ctx, gosecPath, args...)
	cmd.Dir = s.cfg.ScanRoot
	out, err := cmd.Output()
	if len(out) == 0 {
		if err != nil {
			s.log.Warnf("Error running gosec: %v", err)
		}
		return nil
	}

	findings, err := parseAnalyzerReport(out)
	if err != nil {
		s.log.Warnf("Failed to parse gosec output: %v", err)
		return nil
	}
	return findings
}

// parseAnalyzerReport flattens the analyzer's structured output into the
// common finding shape.
func parseAnalyzerReport(out []byte) ([]types.Finding, error) {
	var report gosecReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, err
	}

	findings := make([]types.Finding, 0, len(report.Issues))
	for _, issue := range report.Issues {
		findings = append(findings, types.Finding{
			File:     issue.File,
			Line:     parseLine(issue.Line),
			Content:  strings.TrimSpace(issue.Code),
			Type:     fmt.Sprintf("Security issue: %s", issue.Details),
			Severity: strings.ToUpper(issue.Severity),
		})
	}
	return findings, nil
}

// parseLine handles both "42" and range forms like "42-45".
func parseLine(s string) int {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
