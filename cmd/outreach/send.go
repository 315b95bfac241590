package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varun/outreach/internal/config"
	"github.com/varun/outreach/internal/ledger"
	"github.com/varun/outreach/internal/mailer"
	"github.com/varun/outreach/internal/observability"
	"github.com/varun/outreach/internal/recipients"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send personalized emails to every recipient not yet in the sent ledger",
	Long:  "Send reads the recipient list and the sent ledger, renders one templated message per new recipient with the resume attached, submits them over a single authenticated session with randomized pacing, and records successes back into the ledger.",
	RunE:  runSend,
}

var (
	sendConfigFile string
	recipientsFile string
	resumeFile     string
	ledgerFile     string
)

func init() {
	sendCmd.Flags().StringVarP(&sendConfigFile, "config", "c", "", "Path to JSON config file")
	sendCmd.Flags().StringVar(&recipientsFile, "recipients", "", "Path to recipient CSV (email,first_name,company, no header)")
	sendCmd.Flags().StringVar(&resumeFile, "resume", "", "Path to the resume attachment")
	sendCmd.Flags().StringVar(&ledgerFile, "ledger", "", "Path to the sent-emails ledger CSV")

	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(sendConfigFile)
	if err != nil {
		return err
	}
	if recipientsFile != "" {
		cfg.RecipientsCSV = recipientsFile
	}
	if resumeFile != "" {
		cfg.ResumePath = resumeFile
	}
	if ledgerFile != "" {
		cfg.SentLogPath = ledgerFile
	}

	log, closeLog, err := observability.NewRunLogger(cfg.RunLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := cfg.ValidateMailInputs(); err != nil {
		log.Error(err.Error())
		return err
	}
	if err := cfg.EnsureCredentials(); err != nil {
		log.Error(err.Error())
		return err
	}

	valid, invalid, err := recipients.Load(cfg.RecipientsCSV)
	if err != nil {
		log.Errorf("Error loading recipients: %v", err)
		return err
	}
	if len(invalid) > 0 {
		log.Warnf("Found %d invalid email formats in the CSV file", len(invalid))
		for i, email := range invalid {
			if i >= 5 {
				break
			}
			log.Warnf("Invalid email format: %s", email)
		}
	}
	if len(valid) == 0 {
		log.Error("No valid recipients found. Exiting.")
		return fmt.Errorf("no valid recipients in %s", cfg.RecipientsCSV)
	}

	sent, err := ledger.LoadSentSet(cfg.SentLogPath)
	if err != nil {
		log.Errorf("Error loading sent emails log: %v", err)
		return err
	}

	resume, err := os.ReadFile(cfg.ResumePath)
	if err != nil {
		log.Errorf("Error reading resume file: %v", err)
		return err
	}

	builder, err := mailer.NewBuilder(&cfg, resume)
	if err != nil {
		log.Error(err.Error())
		return err
	}

	transport, err := mailer.Dial(&cfg)
	if err != nil {
		log.Errorf("Error connecting to SMTP server: %v", err)
		return err
	}
	defer transport.Close()
	log.Info("Successfully connected to SMTP server")

	runner := mailer.NewRunner(&cfg, log, builder, transport, mailer.NewPacer(log))
	outcomes, _ := runner.Run(valid, sent)

	if err := ledger.Append(cfg.SentLogPath, outcomes); err != nil {
		log.Errorf("Error updating sent emails log: %v", err)
		return err
	}
	log.Info("Sent email log updated successfully")

	return nil
}

func loadConfig(path string) (config.Config, error) {
	base := config.FromEnv()
	if path == "" {
		return base, nil
	}
	fileCfg, err := config.LoadFile(path)
	if err != nil {
		return config.Config{}, err
	}
	return fileCfg.MergeWithDefaults(base), nil
}
