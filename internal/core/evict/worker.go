package evict

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Target is anything that can drop idle per-session state.
type Target interface {
	EvictIdle(idle time.Duration) int
}

// Worker periodically unmounts controller sets whose session went idle, the
// gateway analog of a dashboard page being closed.
type Worker struct {
	target    Target
	pollEvery time.Duration
	idleAfter time.Duration
}

func NewWorker(target Target, idleAfter time.Duration) *Worker {
	if idleAfter <= 0 {
		idleAfter = 30 * time.Minute
	}
	return &Worker{target: target, pollEvery: time.Minute, idleAfter: idleAfter}
}

func (w *Worker) Run(ctx context.Context) {
	log.Info().Dur("idle_after", w.idleAfter).Msg("evict worker: started")
	t := time.NewTicker(w.pollEvery)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("evict worker: stopping")
			return
		case <-t.C:
			if n := w.target.EvictIdle(w.idleAfter); n > 0 {
				log.Debug().Int("evicted", n).Msg("evict worker: idle sessions unmounted")
			}
		}
	}
}
