package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftd/internal/models"
	"ftd/internal/services"
	"ftd/internal/testutil"
)

func newTestScheduler(t *testing.T) (*Scheduler, *testutil.MemStore, *testutil.MockMetrics) {
	t.Helper()
	store := testutil.NewMemStore()
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	conf := sessionConfig(time.Hour)
	conf.Persistence.SaveInterval = time.Hour

	ledger := services.NewLedgerService(conf, store, logger, metrics)
	session := NewSession(conf, ledger, store, logger, metrics)
	sched := NewScheduler(conf, logger, store, ledger, session, metrics).(*Scheduler)
	return sched, store, metrics
}

func TestScheduler_RestoreLoadsAndResumes(t *testing.T) {
	sched, store, metrics := newTestScheduler(t)
	defer sched.Stop()

	store.Set(models.TrackingKey, "true")
	require.NoError(t, sched.Restore())

	assert.True(t, sched.session.Running())
	assert.Equal(t, 0, metrics.TrackedDays)
}

func TestScheduler_RestoreWithoutFlagStaysIdle(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	require.NoError(t, sched.Restore())
	assert.False(t, sched.session.Running())
}

func TestScheduler_RestorePropagatesLoadError(t *testing.T) {
	sched, store, _ := newTestScheduler(t)
	store.LoadErr = assert.AnError

	assert.Error(t, sched.Restore())
}

func TestScheduler_PersistFlushesStore(t *testing.T) {
	sched, store, _ := newTestScheduler(t)

	require.NoError(t, sched.Persist())
	assert.Equal(t, 1, store.Flushes)
}

func TestScheduler_PersistPropagatesFlushError(t *testing.T) {
	sched, store, _ := newTestScheduler(t)
	store.FlushErr = assert.AnError

	assert.Error(t, sched.Persist())
}

func TestScheduler_StopHaltsSessionWithoutClearingFlag(t *testing.T) {
	sched, store, _ := newTestScheduler(t)

	store.Set(models.TrackingKey, "true")
	require.NoError(t, sched.Restore())
	require.True(t, sched.session.Running())

	sched.Init()
	sched.Stop()

	assert.False(t, sched.session.Running())
	val, ok := store.Get(models.TrackingKey)
	require.True(t, ok)
	assert.Equal(t, "true", val)
}
