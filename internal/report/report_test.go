package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varun/outreach/internal/schemas"
	"github.com/varun/outreach/internal/types"
)

func sampleFindings() []types.Finding {
	return []types.Finding{
		{File: "a.go", Line: 3, Content: `password = "x"`, Type: "Potential hardcoded credential"},
		{File: "b.go", Line: 14, Content: "md5.New()", Type: "Security issue: weak hash", Severity: types.SeverityHigh},
		{File: "c.go", Line: 9, Content: "os.ReadFile(p)", Type: "Security issue: file inclusion", Severity: types.SeverityMedium},
		{File: "d.go", Line: 2, Content: "tls.Config{...}", Type: "Security issue: bad tls", Severity: types.SeverityLow},
		{File: "go.mod", Line: 0, Content: "x v1 -> v2", Type: "Outdated dependency"},
	}
}

func TestSummarize_BucketsSumToTotal(t *testing.T) {
	s := Summarize(sampleFindings())

	assert.Equal(t, 5, s.TotalIssues)
	assert.Equal(t, 1, s.HighSeverity)
	assert.Equal(t, 1, s.MediumSeverity)
	assert.Equal(t, 1, s.LowSeverity)
	assert.Equal(t, 2, s.OtherIssues)
	assert.Equal(t, s.TotalIssues, s.HighSeverity+s.MediumSeverity+s.LowSeverity+s.OtherIssues)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, types.Summary{}, s)
}

func TestNew_NilFindingsBecomeEmptyList(t *testing.T) {
	r := New(nil)

	assert.NotNil(t, r.Findings)
	assert.Empty(t, r.Findings)
	assert.NotEmpty(t, r.RunID)
	assert.False(t, r.Timestamp.IsZero())
}

func TestHasHighSeverity(t *testing.T) {
	assert.True(t, HasHighSeverity(New(sampleFindings())))
	assert.False(t, HasHighSeverity(New(nil)))
	assert.False(t, HasHighSeverity(New([]types.Finding{
		{File: "a.go", Line: 1, Content: "x", Type: "t", Severity: types.SeverityMedium},
	})))
}

func TestWriteJSON_FieldNamesAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "security_report.json")
	require.NoError(t, WriteJSON(path, New(sampleFindings())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Fixed field names.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"run_id", "timestamp", "findings", "summary"} {
		assert.Contains(t, raw, key)
	}

	schemaPath := filepath.Join("..", "..", "schemas", "security_report.schema.json")
	assert.NoError(t, schemas.ValidateBytes(schemaPath, data))
}

func TestWriteJSON_EmptyReportValidatesAgainstSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "security_report.json")
	require.NoError(t, WriteJSON(path, New(nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	schemaPath := filepath.Join("..", "..", "schemas", "security_report.schema.json")
	assert.NoError(t, schemas.ValidateBytes(schemaPath, data))
}

func TestRenderText_Format(t *testing.T) {
	r := New(sampleFindings())

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Security Report - ")
	assert.Contains(t, out, "Total issues found: 5")
	assert.Contains(t, out, "High severity issues: 1")
	assert.Contains(t, out, "Other issues: 2")
	assert.Contains(t, out, "Issue #1:")
	assert.Contains(t, out, "  File: a.go")
	assert.Contains(t, out, "  Severity: HIGH")
	// Findings without severity omit the severity row.
	assert.Contains(t, out, "Issue #5:")
	assert.NotContains(t, out, "Severity: \n")
}

func TestRenderText_NoFindingsOmitsDetailSection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, New(nil)))

	assert.Contains(t, buf.String(), "Total issues found: 0")
	assert.NotContains(t, buf.String(), "Detailed Findings:")
}

func TestWriteText_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "security_report.txt")
	require.NoError(t, WriteText(path, New(sampleFindings())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Detailed Findings:")
}
