// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the explicit configuration structure constructed once at process
// entry and passed to each pipeline. There are no ambient globals; credentials
// and paths all live here.
// All fields are optional in the JSON file; missing values use environment
// fallbacks and defaults.
type Config struct {
	// Mailer
	EmailAddress     string `json:"email_address,omitempty"`    // Outbound account address
	EmailPassword    string `json:"-"`                          // App password; env or interactive prompt only
	SenderName       string `json:"sender_name,omitempty"`      // Display name on the From header
	SMTPHost         string `json:"smtp_host,omitempty"`        // Mail submission host
	SMTPPort         int    `json:"smtp_port,omitempty"`        // Mail submission port
	ResumePath       string `json:"resume_path,omitempty"`      // Attachment file on disk
	ResumeFilename   string `json:"resume_filename,omitempty"`  // Attachment name shown to recipients
	RecipientsCSV    string `json:"recipients_csv,omitempty"`   // Headerless email,first_name,company list
	SentLogPath      string `json:"sent_log,omitempty"`         // Ledger of completed sends
	RunLogPath       string `json:"run_log,omitempty"`          // Human-readable run log file
	SubjectTemplate  string `json:"subject_template,omitempty"` // text/template over Recipient fields
	BodyTemplatePath string `json:"body_template,omitempty"`    // Optional body template file
	SessionCap       int    `json:"session_cap,omitempty"`      // Hard stop on attempts per run

	// Scanner
	ScanRoot         string `json:"scan_root,omitempty"`         // Tree to scan
	ReportJSONPath   string `json:"report_json,omitempty"`       // JSON report output
	ReportTextPath   string `json:"report_text,omitempty"`       // Text report output
	AnalyzerExcludes string `json:"analyzer_excludes,omitempty"` // Rule IDs skipped by the external analyzer
}

// FromEnv returns a Config populated from environment variables with built-in
// defaults for everything not set. This is the base layer; a JSON config file
// and CLI flags override it.
func FromEnv() Config {
	return Config{
		EmailAddress:     os.Getenv("EMAIL_ADDRESS"),
		EmailPassword:    os.Getenv("EMAIL_PASSWORD"),
		SenderName:       getEnv("SENDER_NAME", ""),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		ResumePath:       getEnv("RESUME_PATH", "resume.pdf"),
		ResumeFilename:   getEnv("RESUME_FILENAME", "resume.pdf"),
		RecipientsCSV:    getEnv("RECIPIENTS_CSV", "recipients.csv"),
		SentLogPath:      getEnv("SENT_LOG_FILE", "sent_emails_log.csv"),
		RunLogPath:       getEnv("RUN_LOG_FILE", "email_sender.log"),
		SessionCap:       getEnvInt("SESSION_CAP", 50),
		ScanRoot:         getEnv("SCAN_ROOT", "."),
		ReportJSONPath:   getEnv("REPORT_JSON", "security_report.json"),
		ReportTextPath:   getEnv("REPORT_TEXT", "security_report.txt"),
		AnalyzerExcludes: getEnv("ANALYZER_EXCLUDES", "G104"),
	}
}

// LoadFile loads configuration overrides from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled from defaults.
// Used to layer a config file over the environment-derived base.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.EmailAddress == "" {
		result.EmailAddress = defaults.EmailAddress
	}
	if result.EmailPassword == "" {
		result.EmailPassword = defaults.EmailPassword
	}
	if result.SenderName == "" {
		result.SenderName = defaults.SenderName
	}
	if result.SMTPHost == "" {
		result.SMTPHost = defaults.SMTPHost
	}
	if result.SMTPPort == 0 {
		result.SMTPPort = defaults.SMTPPort
	}
	if result.ResumePath == "" {
		result.ResumePath = defaults.ResumePath
	}
	if result.ResumeFilename == "" {
		result.ResumeFilename = defaults.ResumeFilename
	}
	if result.RecipientsCSV == "" {
		result.RecipientsCSV = defaults.RecipientsCSV
	}
	if result.SentLogPath == "" {
		result.SentLogPath = defaults.SentLogPath
	}
	if result.RunLogPath == "" {
		result.RunLogPath = defaults.RunLogPath
	}
	if result.SubjectTemplate == "" {
		result.SubjectTemplate = defaults.SubjectTemplate
	}
	if result.BodyTemplatePath == "" {
		result.BodyTemplatePath = defaults.BodyTemplatePath
	}
	if result.SessionCap == 0 {
		result.SessionCap = defaults.SessionCap
	}
	if result.ScanRoot == "" {
		result.ScanRoot = defaults.ScanRoot
	}
	if result.ReportJSONPath == "" {
		result.ReportJSONPath = defaults.ReportJSONPath
	}
	if result.ReportTextPath == "" {
		result.ReportTextPath = defaults.ReportTextPath
	}
	if result.AnalyzerExcludes == "" {
		result.AnalyzerExcludes = defaults.AnalyzerExcludes
	}

	return result
}

// ValidateMailInputs checks that the files the send pipeline depends on exist.
// A missing resume or recipient list is a fatal setup error.
func (c *Config) ValidateMailInputs() error {
	if _, err := os.Stat(c.ResumePath); os.IsNotExist(err) {
		return fmt.Errorf("config error: resume file not found: %s", c.ResumePath)
	}
	if _, err := os.Stat(c.RecipientsCSV); os.IsNotExist(err) {
		return fmt.Errorf("config error: recipients CSV file not found: %s", c.RecipientsCSV)
	}
	if c.SessionCap < 1 {
		return fmt.Errorf("config error: session_cap must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
