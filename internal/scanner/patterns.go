package scanner

import (
	"os"
	"regexp"
	"strings"

	"github.com/varun/outreach/internal/types"
)

const (
	typeHardcodedCredential = "Potential hardcoded credential"
	typeInputValidation     = "Potential input validation issue"
)

// credentialPatterns match credential-like names assigned a quoted literal.
// Case-insensitive; "=", ":=" and struct-literal ":" assignments all count.
var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password\s*(:?=|:)\s*["'\x60][^"'\x60]+["'\x60]`),
	regexp.MustCompile(`(?i)api_key\s*(:?=|:)\s*["'\x60][^"'\x60]+["'\x60]`),
	regexp.MustCompile(`(?i)secret\s*(:?=|:)\s*["'\x60][^"'\x60]+["'\x60]`),
	regexp.MustCompile(`(?i)token\s*(:?=|:)\s*["'\x60][^"'\x60]+["'\x60]`),
}

// envOrPrompt suppresses lines that reference environment lookups or
// interactive reads. Heuristic false-positive filter, nothing more.
var envOrPrompt = regexp.MustCompile(`(?i)os\.(getenv|lookupenv)|readpassword|input\(`)

// execPatterns match dynamic-execution and shell-invocation calls.
var execPatterns = []*regexp.Regexp{
	regexp.MustCompile(`exec\.Command\s*\(`),
	regexp.MustCompile(`exec\.CommandContext\s*\(`),
	regexp.MustCompile(`syscall\.Exec\s*\(`),
	regexp.MustCompile(`syscall\.ForkExec\s*\(`),
	regexp.MustCompile(`os\.StartProcess\s*\(`),
}

func (s *Scanner) checkHardcodedCredentials() []types.Finding {
	return s.scanLines(credentialPatterns, typeHardcodedCredential, envOrPrompt)
}

func (s *Scanner) checkDangerousCalls() []types.Finding {
	return s.scanLines(execPatterns, typeInputValidation, nil)
}

// scanLines applies the pattern set line by line over every source file.
// A line matching any pattern yields one finding per matching pattern, unless
// the suppress expression also matches the line.
func (s *Scanner) scanLines(patterns []*regexp.Regexp, findingType string, suppress *regexp.Regexp) []types.Finding {
	var findings []types.Finding

	for _, path := range s.sourceFiles() {
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Warnf("Error reading %s: %v", path, err)
			continue
		}

		for i, line := range strings.Split(string(data), "\n") {
			if suppress != nil && suppress.MatchString(line) {
				continue
			}
			for _, re := range patterns {
				if re.MatchString(line) {
					findings = append(findings, types.Finding{
						File:    path,
						Line:    i + 1,
						Content: strings.TrimSpace(line),
						Type:    findingType,
					})
				}
			}
		}
	}

	return findings
}
