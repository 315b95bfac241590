package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/varun/outreach/internal/types"
)

// goModule is the subset of `go list -m -u -json` output used here.
type goModule struct {
	Path    string `json:"Path"`
	Version string `json:"Version"`
	Main    bool   `json:"Main"`
	Update  *struct {
		Path    string `json:"Path"`
		Version string `json:"Version"`
	} `json:"Update"`
}

// checkOutdatedDependencies maps each module with an available update to a
// finding. Requires a go.mod under the scan root and the go tool on PATH;
// missing either skips the source.
func (s *Scanner) checkOutdatedDependencies(ctx context.Context) []types.Finding {
	if _, err := os.Stat(filepath.Join(s.cfg.ScanRoot, "go.mod")); err != nil {
		return nil
	}
	goPath, err := s.lookPath("go")
	if err != nil {
		s.log.Info("go tool not found; skipping dependency check")
		return nil
	}

	cmd := exec.CommandContext(ctx, goPath, "list", "-m", "-u", "-json", "all")
	cmd.Dir = s.cfg.ScanRoot
	out, err := cmd.Output()
	if err != nil {
		s.log.Warnf("Error checking dependencies: %v", err)
		return nil
	}

	findings, err := parseModuleUpdates(out)
	if err != nil {
		s.log.Warnf("Failed to parse go list output: %v", err)
		return nil
	}
	return findings
}

// parseModuleUpdates decodes the JSON stream emitted by `go list -m -u -json all`.
func parseModuleUpdates(out []byte) ([]types.Finding, error) {
	var findings []types.Finding

	dec := json.NewDecoder(bytes.NewReader(out))
	for {
		var m goModule
		if err := dec.Decode(&m); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if m.Main || m.Update == nil {
			continue
		}
		findings = append(findings, types.Finding{
			File:    "go.mod",
			Line:    0,
			Content: fmt.Sprintf("%s %s -> %s", m.Path, m.Version, m.Update.Version),
			Type:    "Outdated dependency",
		})
	}

	return findings, nil
}
