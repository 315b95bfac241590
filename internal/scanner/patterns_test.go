package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/varun/outreach/internal/config"
)

func newTestScanner(t *testing.T, root string) *Scanner {
	t.Helper()
	cfg := &config.Config{ScanRoot: root}
	return New(cfg, zap.NewNop().Sugar())
}

func writeSource(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCheckHardcodedCredentials_LiteralAssignment(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "main.go", "package main\n\nvar password = \"literal123\"\n")

	findings := newTestScanner(t, root).checkHardcodedCredentials()

	require.Len(t, findings, 1)
	assert.Equal(t, filepath.Join(root, "main.go"), findings[0].File)
	assert.Equal(t, 3, findings[0].Line)
	assert.Equal(t, `var password = "literal123"`, findings[0].Content)
	assert.Equal(t, "Potential hardcoded credential", findings[0].Type)
	assert.Empty(t, findings[0].Severity)
}

func TestCheckHardcodedCredentials_EnvLookupSuppressed(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "main.go", "package main\n\nvar password = os.Getenv(\"X\")\n")

	assert.Empty(t, newTestScanner(t, root).checkHardcodedCredentials())
}

func TestCheckHardcodedCredentials_AllKeysAndForms(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "cfg.go", `package cfg

var api_key = "abc123"

func f() {
	secret := "hunter2"
	cfg := Config{Token: "tok-1"}
	_ = cfg
	_ = secret
}
`)

	findings := newTestScanner(t, root).checkHardcodedCredentials()
	assert.Len(t, findings, 3)
}

func TestCheckHardcodedCredentials_PromptReadSuppressed(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "main.go", "package main\n\n// password = term.ReadPassword(fd)\nvar pw, _ = readPassword() // password = \"placeholder\"\n")

	assert.Empty(t, newTestScanner(t, root).checkHardcodedCredentials())
}

func TestCheckDangerousCalls(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "run.go", `package run

import "os/exec"

func f() {
	_ = exec.Command("sh", "-c", "ls")
}
`)

	findings := newTestScanner(t, root).checkDangerousCalls()

	require.Len(t, findings, 1)
	assert.Equal(t, "Potential input validation issue", findings[0].Type)
	assert.Equal(t, 6, findings[0].Line)
}

func TestScan_SkipsDependencyAndVCSDirs(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, filepath.Join("vendor", "dep.go"), "package dep\n\nvar password = \"invendor\"\n")
	writeSource(t, root, filepath.Join(".git", "hook.go"), "package hook\n\nvar password = \"ingit\"\n")
	writeSource(t, root, filepath.Join("node_modules", "mod.go"), "package mod\n\nvar password = \"inmodules\"\n")
	writeSource(t, root, "app.go", "package app\n\nvar password = \"inapp\"\n")

	findings := newTestScanner(t, root).checkHardcodedCredentials()

	require.Len(t, findings, 1)
	assert.Equal(t, filepath.Join(root, "app.go"), findings[0].File)
}

func TestScan_NonGoFilesIgnored(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "notes.txt", "password = \"plain\"\n")

	assert.Empty(t, newTestScanner(t, root).checkHardcodedCredentials())
}
