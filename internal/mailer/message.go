// Package mailer implements the bulk personalized send pipeline: message
// construction, the authenticated submission session, randomized pacing, and
// the dedup/cap send loop.
package mailer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/varun/outreach/internal/config"
	"github.com/varun/outreach/internal/types"
)

const defaultSubject = "Looking for Cloud Engineering / DevOps Opportunities at {{.Company}}"

const defaultBody = `Dear {{.FirstName}},

I hope this message finds you well.

My name is {{.Sender}}, and I am writing to express my strong interest in potential opportunities at {{.Company}}, particularly in Cloud Engineering / DevOps roles.

I have practical experience designing and implementing cloud infrastructure solutions, deploying distributed systems on Kubernetes, and building CI/CD pipelines. My resume is attached for your review.

Thank you for your time and consideration. I look forward to the possibility of connecting.

Best regards,
{{.Sender}}
`

// templateData is what the subject and body templates interpolate.
type templateData struct {
	FirstName string
	Company   string
	Sender    string
}

// Builder renders one message per recipient from fixed templates plus a fixed
// binary attachment. Templates are parsed once up front so a broken override
// fails the run before any send.
type Builder struct {
	cfg     *config.Config
	subject *template.Template
	body    *template.Template
	resume  []byte
}

// NewBuilder parses the subject and body templates and captures the attachment
// bytes. BodyTemplatePath, when set, replaces the built-in body.
func NewBuilder(cfg *config.Config, resume []byte) (*Builder, error) {
	subjectText := cfg.SubjectTemplate
	if subjectText == "" {
		subjectText = defaultSubject
	}
	subject, err := template.New("subject").Parse(subjectText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subject template: %w", err)
	}

	bodyText := defaultBody
	if cfg.BodyTemplatePath != "" {
		data, err := os.ReadFile(cfg.BodyTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read body template %s: %w", cfg.BodyTemplatePath, err)
		}
		bodyText = string(data)
	}
	body, err := template.New("body").Parse(bodyText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse body template: %w", err)
	}

	return &Builder{cfg: cfg, subject: subject, body: body, resume: resume}, nil
}

// Build renders the message for one recipient: From with display name, plain
// text body, and the resume attached under its configured filename.
func (b *Builder) Build(rcpt types.Recipient) (*gomail.Message, error) {
	data := templateData{
		FirstName: rcpt.FirstName,
		Company:   rcpt.Company,
		Sender:    b.cfg.SenderName,
	}

	var subject, body bytes.Buffer
	if err := b.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("failed to render subject: %w", err)
	}
	if err := b.body.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", b.cfg.EmailAddress, b.cfg.SenderName)
	msg.SetHeader("To", rcpt.Email)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", body.String())
	msg.Attach(b.cfg.ResumeFilename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(b.resume)
		return err
	}))

	return msg, nil
}
