// Package scheduler periodically retries abstractive summarizer
// initialization, so a process that started (or was downgraded) without
// a working model recovers without a restart.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"paperdeck/internal/summarizer"
)

const (
	ReinstateSpec    = "*/5 * * * *"
	reinstateTimeout = time.Minute
)

// Factory builds a fresh abstractive summarizer. It is called only
// while the set has no working abstractive capability.
type Factory func() (summarizer.Summarizer, error)

type Scheduler struct {
	ctx     context.Context
	cron    *cron.Cron
	set     *summarizer.Set
	factory Factory
	log     *slog.Logger
}

func New(ctx context.Context, set *summarizer.Set, factory Factory, log *slog.Logger) *Scheduler {
	return &Scheduler{
		ctx:     ctx,
		cron:    cron.New(),
		set:     set,
		factory: factory,
		log:     log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(ReinstateSpec, s.reinstateAbstractive); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) reinstateAbstractive() {
	ctx, cancel := context.WithTimeout(s.ctx, reinstateTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		s.log.InfoContext(ctx, "Scheduler context is done",
			"error", ctx.Err())
		return
	default:
	}

	if s.factory == nil || s.set.AbstractiveAvailable() {
		return
	}

	abstractive, err := s.factory()
	if err != nil {
		s.log.WarnContext(ctx, "Abstractive summarizer is still unavailable",
			"error", err)

		return
	}

	s.set.Reinstate(abstractive)
	s.log.InfoContext(ctx, "Abstractive summarizer is reinstated")
}
