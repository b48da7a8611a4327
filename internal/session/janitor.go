package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultSweepInterval = time.Minute
	defaultIdleTTL       = 30 * time.Minute
)

type idleEvictor interface {
	EvictIdle(ttl time.Duration) int
}

// Janitor periodically drops sessions that have been idle for too long.
type Janitor struct {
	sessions      idleEvictor
	idleTTL       time.Duration
	sweepInterval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (j *Janitor) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func() {
		if evicted := j.sessions.EvictIdle(j.idleTTL); evicted > 0 {
			logrus.Infof("Evicted %d idle sessions", evicted)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(j.sweepInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	j.mu.Lock()
	j.sched = scheduler
	j.mu.Unlock()
	scheduler.Start()

	// Stop janitor when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := j.Shutdown(); sdErr != nil {
			logrus.Errorf("Janitor shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (j *Janitor) Shutdown() error {
	j.mu.Lock()
	sched := j.sched
	j.sched = nil
	j.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (j *Janitor) running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sched != nil
}

func NewJanitor(sessions idleEvictor, idleTTL, sweepInterval time.Duration) *Janitor {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	return &Janitor{sessions: sessions, idleTTL: idleTTL, sweepInterval: sweepInterval}
}
