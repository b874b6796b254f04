package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/atomic"

	"ftd/internal/models"
	"ftd/internal/providers"
	"ftd/internal/services"
	"ftd/internal/storage"
	"ftd/internal/structures"
)

type SessionInterface interface {
	Start()
	Stop()
	Halt()
	Resume()
	Running() bool
	AddSteps(n int) (models.DailyRecord, error)
}

// Session is the periodic step accumulator. While running it adds exactly
// one step per tick through the ledger, which also maintains the derived
// calories. The persisted tracking flag drives resume-on-launch; missed
// ticks while the daemon was down are never replayed.
type Session struct {
	mu       sync.Mutex
	running  atomic.Bool
	stop     chan struct{}
	done     chan struct{}
	interval time.Duration
	ledger   services.LedgerServiceInterface
	store    storage.KeyValueStoreInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
}

func NewSession(conf *structures.Config, ledger services.LedgerServiceInterface, store storage.KeyValueStoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) SessionInterface {
	interval := conf.Tracking.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Session{
		interval: interval,
		ledger:   ledger,
		store:    store,
		logger:   logger,
		metrics:  metrics,
	}
}

// Start transitions Idle→Running, persists the tracking flag and begins
// the tick loop. Starting a running session is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return
	}

	s.store.Set(models.TrackingKey, "true")
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running.Store(true)

	go s.loop(s.stop, s.done)
	s.logger.Infof(providers.TypeApp, "Step tracking started, tick every %s", s.interval)
}

// Stop transitions Running→Idle and clears the persisted flag. The tick
// loop is joined before returning, so no accumulation happens afterwards.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Set(models.TrackingKey, "false")
	if !s.running.Load() {
		return
	}
	s.haltLocked()
	s.logger.Infof(providers.TypeApp, "Step tracking stopped")
}

// Halt stops the tick loop without touching the persisted flag. Used at
// shutdown so an active session resumes on the next launch.
func (s *Session) Halt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return
	}
	s.haltLocked()
	s.logger.Infof(providers.TypeApp, "Step tracking halted for shutdown")
}

func (s *Session) haltLocked() {
	close(s.stop)
	<-s.done
	s.running.Store(false)
}

// Resume restarts tracking when the persisted flag says a session was
// active at last shutdown.
func (s *Session) Resume() {
	raw, ok := s.store.Get(models.TrackingKey)
	if !ok || !cast.ToBool(raw) {
		return
	}
	s.logger.Infof(providers.TypeApp, "Resuming step tracking from persisted state")
	s.Start()
}

func (s *Session) Running() bool {
	return s.running.Load()
}

// AddSteps applies a manual bulk increment in a single ledger call,
// independent of the tracking state.
func (s *Session) AddSteps(n int) (models.DailyRecord, error) {
	if n <= 0 {
		return models.DailyRecord{}, fmt.Errorf("%w: step count must be a positive number", models.ErrValidation)
	}
	return s.ledger.AccumulateSteps(n), nil
}

func (s *Session) loop(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Session) tick() {
	rec := s.ledger.AccumulateSteps(1)
	s.metrics.IncTicksTotal()
	s.logger.Debugf(providers.TypeApp, "Tick: steps=%d calories=%d", rec.Steps, rec.Calories)
}
