package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/varun/outreach/internal/config"
)

// Transport is the authenticated submission session messages are sent over.
// The whole run uses a single session; a failure to establish it aborts the
// run before any send is attempted.
type Transport interface {
	Send(m *gomail.Message) error
	Close() error
}

type smtpTransport struct {
	sc gomail.SendCloser
}

// Dial opens and authenticates one SMTP session using the configured
// credentials. STARTTLS is negotiated by the dialer on the submission port.
func Dial(cfg *config.Config) (Transport, error) {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword)
	sc, err := d.Dial()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server %s:%d: %w", cfg.SMTPHost, cfg.SMTPPort, err)
	}
	return &smtpTransport{sc: sc}, nil
}

func (t *smtpTransport) Send(m *gomail.Message) error {
	return gomail.Send(t.sc, m)
}

func (t *smtpTransport) Close() error {
	return t.sc.Close()
}
