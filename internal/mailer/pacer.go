package mailer

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Pacing constants. Two nested randomized intervals: a short delay after every
// message, and a longer pause after each batch of consecutive messages. The
// batch size itself is re-drawn after every pause.
const (
	stepMin = 2 * time.Second
	stepMax = 12 * time.Second

	pauseMinSec = 30
	pauseMaxSec = 90

	batchMin = 3
	batchMax = 7
)

// Pacer inserts the randomized delays between sends. The delays apply
// unconditionally after every attempt; they are rate limiting, not backoff.
type Pacer struct {
	rng   *rand.Rand
	sleep func(time.Duration)
	log   *zap.SugaredLogger

	batchSize int
	streak    int
}

// NewPacer returns a Pacer with a time-seeded source and real sleeps.
func NewPacer(log *zap.SugaredLogger) *Pacer {
	return newPacer(rand.New(rand.NewSource(time.Now().UnixNano())), time.Sleep, log)
}

func newPacer(rng *rand.Rand, sleep func(time.Duration), log *zap.SugaredLogger) *Pacer {
	p := &Pacer{rng: rng, sleep: sleep, log: log}
	p.batchSize = p.drawBatchSize()
	return p
}

// Wait blocks for the per-message delay and, at each batch boundary, for the
// extra pause. It returns the applied durations; pause is zero off-boundary.
func (p *Pacer) Wait() (step, pause time.Duration) {
	step = stepMin + time.Duration(p.rng.Float64()*float64(stepMax-stepMin))
	p.log.Infof("Sleeping %.2fs before next email...", step.Seconds())
	p.sleep(step)

	p.streak++
	if p.streak >= p.batchSize {
		pause = time.Duration(pauseMinSec+p.rng.Intn(pauseMaxSec-pauseMinSec+1)) * time.Second
		p.log.Infof("Batch limit reached. Sleeping %ds to avoid burst detection...", int(pause.Seconds()))
		p.sleep(pause)
		p.streak = 0
		p.batchSize = p.drawBatchSize()
	}
	return step, pause
}

func (p *Pacer) drawBatchSize() int {
	return batchMin + p.rng.Intn(batchMax-batchMin+1)
}
