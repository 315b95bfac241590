package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnsureCredentials fills in EmailAddress and EmailPassword interactively when
// the environment did not provide them. The password is read without echo.
func (c *Config) EnsureCredentials() error {
	if c.EmailAddress == "" {
		fmt.Fprint(os.Stdout, "Enter your email address: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email address: %w", err)
		}
		c.EmailAddress = strings.TrimSpace(line)
	}

	if c.EmailPassword == "" {
		fmt.Fprint(os.Stdout, "Enter your app password: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stdout)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		c.EmailPassword = string(pw)
	}

	if c.EmailAddress == "" || c.EmailPassword == "" {
		return fmt.Errorf("email credentials are required")
	}
	return nil
}
