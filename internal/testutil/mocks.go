package testutil

import (
	"sort"
	"strings"
	"sync"
	"time"

	"ftd/internal/models"
	"ftd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// HasWarning reports whether any warn-level entry contains the substring.
func (m *MockLogger) HasWarning(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == "warn" && strings.Contains(e.Format, substr) {
			return true
		}
	}
	return false
}

// MockCompressor passes data through unchanged.
type MockCompressor struct {
	CompressErr   error
	DecompressErr error
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressErr != nil {
		return nil, m.CompressErr
	}
	return val, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressErr != nil {
		return nil, m.DecompressErr
	}
	return val, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    int
	Durations   int
	CacheHits   int
	CacheMisses int
	Persists    int
	Steps       int
	Ticks       int
	Claims      map[string]int
	TrackedDays int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Durations++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persists++
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) AddStepsTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Steps += count
}

func (m *MockMetrics) IncTicksTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Ticks++
}

func (m *MockMetrics) IncRewardClaims(rewardID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Claims == nil {
		m.Claims = make(map[string]int)
	}
	m.Claims[rewardID]++
}

func (m *MockMetrics) SetTrackedDays(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TrackedDays = count
}

// MemStore is an in-memory KeyValueStoreInterface for tests.
type MemStore struct {
	mu       sync.RWMutex
	Data     map[string]string
	LoadErr  error
	FlushErr error
	Flushes  int
}

func NewMemStore() *MemStore {
	return &MemStore{Data: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.Data[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data[key] = value
}

func (s *MemStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Data, key)
}

func (s *MemStore) ListKeys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.Data))
	for k := range s.Data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *MemStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data = make(map[string]string)
}

func (s *MemStore) Load() error { return s.LoadErr }

func (s *MemStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Flushes++
	return s.FlushErr
}

// MockNotifier records claims and can simulate sync failures.
type MockNotifier struct {
	mu     sync.Mutex
	Err    error
	Claims []models.ClaimedReward
}

func (m *MockNotifier) NotifyClaim(claim models.ClaimedReward) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Claims = append(m.Claims, claim)
	return nil
}
