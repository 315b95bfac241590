package mailer

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/varun/outreach/internal/config"
	"github.com/varun/outreach/internal/types"
)

// fakeTransport records recipients and fails addresses on demand.
type fakeTransport struct {
	sent    []string
	failFor map[string]bool
	closed  bool
}

func (f *fakeTransport) Send(m *gomail.Message) error {
	to := m.GetHeader("To")[0]
	if f.failFor[to] {
		return fmt.Errorf("550 mailbox unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func newTestRunner(t *testing.T, cfg *config.Config, transport Transport) *Runner {
	t.Helper()
	builder, err := NewBuilder(cfg, []byte("%PDF"))
	require.NoError(t, err)
	log := zap.NewNop().Sugar()
	pacer := newPacer(rand.New(rand.NewSource(1)), func(time.Duration) {}, log)
	return NewRunner(cfg, log, builder, transport, pacer)
}

func makeRecipients(n int) []types.Recipient {
	rcpts := make([]types.Recipient, 0, n)
	for i := 0; i < n; i++ {
		rcpts = append(rcpts, types.Recipient{
			Email:     fmt.Sprintf("r%03d@example.com", i),
			FirstName: fmt.Sprintf("R%d", i),
			Company:   "Acme",
		})
	}
	return rcpts
}

func TestRun_SendsOnlyRecipientsNotInLedger(t *testing.T) {
	cfg := testMailConfig()
	transport := &fakeTransport{}
	r := newTestRunner(t, cfg, transport)

	rcpts := makeRecipients(4)
	sent := map[string]bool{rcpts[1].Email: true, rcpts[3].Email: true}

	outcomes, stats := r.Run(rcpts, sent)

	assert.Equal(t, []string{rcpts[0].Email, rcpts[2].Email}, transport.sent)
	assert.Equal(t, 2, stats.Sent)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, 0, stats.Failed)
	assert.Len(t, outcomes, 2)
}

func TestRun_SessionCapCountsAttempts(t *testing.T) {
	cfg := testMailConfig()
	cfg.SessionCap = 50
	transport := &fakeTransport{failFor: map[string]bool{"r000@example.com": true}}
	r := newTestRunner(t, cfg, transport)

	outcomes, stats := r.Run(makeRecipients(60), nil)

	// Exactly 50 attempts, failures included; the rest wait for a future run.
	assert.Equal(t, 50, stats.Attempted())
	assert.Equal(t, 49, stats.Sent)
	assert.Equal(t, 1, stats.Failed)
	assert.Len(t, outcomes, 50)
}

func TestRun_FailureIsRecordedAndLoopContinues(t *testing.T) {
	cfg := testMailConfig()
	transport := &fakeTransport{failFor: map[string]bool{"r001@example.com": true}}
	r := newTestRunner(t, cfg, transport)

	outcomes, stats := r.Run(makeRecipients(3), nil)

	require.Len(t, outcomes, 3)
	assert.Equal(t, types.StatusSuccess, outcomes[0].Status)
	assert.Equal(t, types.StatusFailed, outcomes[1].Status)
	assert.Contains(t, outcomes[1].Error, "550")
	assert.Equal(t, types.StatusSuccess, outcomes[2].Status)
	assert.Equal(t, 2, stats.Sent)
	assert.Equal(t, 1, stats.Failed)
}

func TestRun_SkippedRecipientsConsumeNoCap(t *testing.T) {
	cfg := testMailConfig()
	cfg.SessionCap = 2
	transport := &fakeTransport{}
	r := newTestRunner(t, cfg, transport)

	rcpts := makeRecipients(5)
	sent := map[string]bool{rcpts[0].Email: true, rcpts[1].Email: true, rcpts[2].Email: true}

	_, stats := r.Run(rcpts, sent)

	assert.Equal(t, 3, stats.Skipped)
	assert.Equal(t, 2, stats.Sent)
}

func TestRun_RerunAfterLedgerUpdateSendsNothing(t *testing.T) {
	cfg := testMailConfig()
	transport := &fakeTransport{}
	r := newTestRunner(t, cfg, transport)

	rcpts := makeRecipients(3)
	outcomes, _ := r.Run(rcpts, nil)

	sent := make(map[string]bool)
	for _, o := range outcomes {
		if o.Status == types.StatusSuccess {
			sent[o.Email] = true
		}
	}

	transport.sent = nil
	_, stats := r.Run(rcpts, sent)

	assert.Empty(t, transport.sent)
	assert.Equal(t, 3, stats.Skipped)
	assert.Equal(t, 0, stats.Attempted())
}
