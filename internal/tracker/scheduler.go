package tracker

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"ftd/internal/providers"
	"ftd/internal/services"
	"ftd/internal/storage"
	"ftd/internal/structures"
	"ftd/internal/tracker/interfaces"
)

// Scheduler owns the daemon's periodic work: flushing the store to disk and
// refreshing the tracked-days gauge. It also wires the restore/persist
// lifecycle around the tracking session.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	store   storage.KeyValueStoreInterface
	ledger  services.LedgerServiceInterface
	session SessionInterface
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	saveInterval := s.config.Persistence.SaveInterval
	summaryInterval := s.config.Tracking.SummaryInterval

	s.cron.AddFunc(gron.Every(saveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		start := time.Now()
		if err := s.store.Flush(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.logger.Debugf(providers.TypeApp, "Persisted store to %s", s.config.Persistence.FilePath)
	})

	s.cron.AddFunc(gron.Every(summaryInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.metrics.SetTrackedDays(s.ledger.TrackedDays())
		today := s.ledger.GetToday()
		s.logger.Infof(providers.TypeApp, "Today: %d steps, %d calories", today.Steps, today.Calories)
	})

	s.cron.Start()
}

// Stop halts periodic work and the tick loop. The persisted tracking flag
// is left as-is so an active session resumes on the next launch.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.session.Halt()
}

// Restore loads the persisted store and resumes tracking when the flag
// was set at last shutdown.
func (s *Scheduler) Restore() error {
	if err := s.store.Load(); err != nil {
		return err
	}
	s.metrics.SetTrackedDays(s.ledger.TrackedDays())
	s.session.Resume()
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting store to disk...")
	if err := s.store.Flush(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store storage.KeyValueStoreInterface, ledger services.LedgerServiceInterface, session SessionInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		store:   store,
		ledger:  ledger,
		session: session,
		metrics: metrics,
	}
}
