package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varun/outreach/internal/observability"
	"github.com/varun/outreach/internal/report"
	"github.com/varun/outreach/internal/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the file tree for security issues and emit JSON and text reports",
	Long:  "Scan aggregates four finding sources (hardcoded credentials, external analyzer results, dangerous call patterns, outdated dependencies) into one report. The command exits non-zero if and only if at least one high-severity finding exists.",
	RunE:  runScan,
}

var (
	scanConfigFile string
	scanRoot       string
	scanJSONOut    string
	scanTextOut    string
)

func init() {
	scanCmd.Flags().StringVarP(&scanConfigFile, "config", "c", "", "Path to JSON config file")
	scanCmd.Flags().StringVar(&scanRoot, "root", "", "Directory tree to scan")
	scanCmd.Flags().StringVar(&scanJSONOut, "json-out", "", "Path for the JSON report")
	scanCmd.Flags().StringVar(&scanTextOut, "text-out", "", "Path for the text report")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(scanConfigFile)
	if err != nil {
		return err
	}
	if scanRoot != "" {
		cfg.ScanRoot = scanRoot
	}
	if scanJSONOut != "" {
		cfg.ReportJSONPath = scanJSONOut
	}
	if scanTextOut != "" {
		cfg.ReportTextPath = scanTextOut
	}

	log := observability.NewConsoleLogger()
	log.Info("Starting security scan...")

	findings := scanner.New(&cfg, log).Run(cmd.Context())
	rpt := report.New(findings)

	if err := report.WriteJSON(cfg.ReportJSONPath, rpt); err != nil {
		return err
	}
	if err := report.WriteText(cfg.ReportTextPath, rpt); err != nil {
		return err
	}

	printSummary(rpt.Summary.TotalIssues, rpt.Summary.HighSeverity, rpt.Summary.MediumSeverity, rpt.Summary.LowSeverity, rpt.Summary.OtherIssues, cfg.ReportJSONPath, cfg.ReportTextPath)

	if report.HasHighSeverity(rpt) {
		return fmt.Errorf("%d high severity issue(s) found", rpt.Summary.HighSeverity)
	}
	return nil
}

func printSummary(total, high, medium, low, other int, jsonPath, textPath string) {
	fmt.Fprintf(os.Stdout, "\nSecurity Report Summary:\n")
	fmt.Fprintf(os.Stdout, "Total issues found: %d\n", total)
	fmt.Fprintf(os.Stdout, "High severity issues: %d\n", high)
	fmt.Fprintf(os.Stdout, "Medium severity issues: %d\n", medium)
	fmt.Fprintf(os.Stdout, "Low severity issues: %d\n", low)
	fmt.Fprintf(os.Stdout, "Other issues: %d\n", other)
	fmt.Fprintf(os.Stdout, "\nDetailed report saved to %s\n", jsonPath)
	fmt.Fprintf(os.Stdout, "Text report saved to %s\n", textPath)
}
