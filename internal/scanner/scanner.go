// Package scanner walks the file tree for risky patterns, drives the optional
// external analyzer and dependency-staleness query, and flattens everything
// into the common finding shape.
package scanner

import (
	"context"
	"os/exec"

	"go.uber.org/zap"

	"github.com/varun/outreach/internal/config"
	"github.com/varun/outreach/internal/types"
)

// Scanner aggregates findings from four independent, order-insensitive
// sources. Sources are concatenated with no dedup or cross-source
// correlation.
type Scanner struct {
	cfg *config.Config
	log *zap.SugaredLogger

	// lookPath is swapped in tests to simulate absent tools.
	lookPath func(string) (string, error)
}

func New(cfg *config.Config, log *zap.SugaredLogger) *Scanner {
	return &Scanner{cfg: cfg, log: log, lookPath: exec.LookPath}
}

// Run executes all four checks sequentially and returns the concatenated
// findings. Absent optional tools skip their source; only the pattern scans
// always run.
func (s *Scanner) Run(ctx context.Context) []types.Finding {
	var findings []types.Finding

	s.log.Info("Checking for hardcoded credentials...")
	findings = append(findings, s.checkHardcodedCredentials()...)

	s.log.Info("Checking for security vulnerabilities...")
	findings = append(findings, s.checkVulnerabilities(ctx)...)

	s.log.Info("Checking for input validation issues...")
	findings = append(findings, s.checkDangerousCalls()...)

	s.log.Info("Checking for outdated dependencies...")
	findings = append(findings, s.checkOutdatedDependencies(ctx)...)

	return findings
}
