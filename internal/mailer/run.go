package mailer

import (
	"go.uber.org/zap"

	"github.com/varun/outreach/internal/config"
	"github.com/varun/outreach/internal/observability"
	"github.com/varun/outreach/internal/types"
)

// Stats summarizes one send run.
type Stats struct {
	Sent    int
	Failed  int
	Skipped int
}

// Attempted is the number of sends that consumed session-cap budget.
func (s Stats) Attempted() int {
	return s.Sent + s.Failed
}

// Runner drives the send loop over an open transport.
type Runner struct {
	cfg       *config.Config
	log       *zap.SugaredLogger
	builder   *Builder
	transport Transport
	pacer     *Pacer
}

func NewRunner(cfg *config.Config, log *zap.SugaredLogger, builder *Builder, transport Transport, pacer *Pacer) *Runner {
	return &Runner{cfg: cfg, log: log, builder: builder, transport: transport, pacer: pacer}
}

// Run walks the recipient list in order, skipping addresses already in the
// sent set and stopping once attempted sends reach the session cap. A failed
// send is recorded and the loop continues; the pacer runs after every attempt.
func (r *Runner) Run(rcpts []types.Recipient, sent map[string]bool) ([]types.SendOutcome, Stats) {
	var outcomes []types.SendOutcome
	var stats Stats

	for _, rcpt := range rcpts {
		if stats.Attempted() >= r.cfg.SessionCap {
			r.log.Warnf("Maximum email limit reached (%d). Stopping for safety.", r.cfg.SessionCap)
			break
		}

		if sent[rcpt.Email] {
			r.log.Infof("Skipped (already sent): %s", observability.HashEmail(rcpt.Email))
			stats.Skipped++
			continue
		}

		outcome := r.attempt(rcpt)
		outcomes = append(outcomes, outcome)
		if outcome.Status == types.StatusSuccess {
			stats.Sent++
		} else {
			stats.Failed++
		}

		r.pacer.Wait()
	}

	r.log.Infof("Email sending complete. Total sent: %d, Total skipped: %d", stats.Sent, stats.Skipped)
	return outcomes, stats
}

func (r *Runner) attempt(rcpt types.Recipient) types.SendOutcome {
	msg, err := r.builder.Build(rcpt)
	if err == nil {
		err = r.transport.Send(msg)
	}

	if err != nil {
		r.log.Errorf("Failed to send email to %s: %v", observability.HashEmail(rcpt.Email), err)
		return types.SendOutcome{Email: rcpt.Email, Status: types.StatusFailed, Error: err.Error()}
	}

	r.log.Infof("Email sent to %s", observability.HashEmail(rcpt.Email))
	return types.SendOutcome{Email: rcpt.Email, Status: types.StatusSuccess}
}
