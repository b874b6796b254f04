package storage

import (
	"os"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"ftd/internal/providers"
	"ftd/internal/structures"
)

// KeyValueStoreInterface is the per-key contract every persisted component
// goes through. Values are opaque strings (JSON encoded by the callers).
type KeyValueStoreInterface interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	ListKeys(prefix string) []string
	ClearAll()
	Load() error
	Flush() error
}

// snapshot is the on-disk envelope: zstd-compressed JSON with an explicit
// version field for future migrations.
type snapshot struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

const snapshotVersion = 1

// FileStore keeps all keys in memory and persists them as a single
// compressed snapshot. Writes mark the store dirty; Flush performs the
// actual disk I/O with an atomic tmp-file and rename.
type FileStore struct {
	mu         sync.RWMutex
	entries    map[string]string
	dirty      bool
	filePath   string
	compressor CompressorInterface
	logger     providers.Logger
}

func NewFileStore(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) KeyValueStoreInterface {
	return &FileStore{
		entries:    make(map[string]string),
		filePath:   conf.Persistence.FilePath,
		compressor: compressor,
		logger:     logger,
	}
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.entries[key]
	return val, ok
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	s.dirty = true
}

func (s *FileStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		s.dirty = true
	}
}

func (s *FileStore) ListKeys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *FileStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string)
	s.dirty = true
}

// Load reads the snapshot from disk. A missing file is a fresh start;
// a corrupt file is logged and treated as empty rather than failing startup.
func (s *FileStore) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressed, err := s.compressor.Decompress(data)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Unreadable store file %s, starting empty: %s", s.filePath, err)
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(decompressed, &snap); err != nil {
		s.logger.Warnf(providers.TypeApp, "Corrupt store file %s, starting empty: %s", s.filePath, err)
		return nil
	}
	if snap.Entries == nil {
		snap.Entries = make(map[string]string)
	}

	s.mu.Lock()
	s.entries = snap.Entries
	s.dirty = false
	s.mu.Unlock()
	return nil
}

// Flush persists the current entries if anything changed since the last flush.
// The dirty flag is cleared when the snapshot is taken, so writes landing
// during the disk I/O are picked up by the next flush.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	snap := snapshot{Version: snapshotVersion, Entries: make(map[string]string, len(s.entries))}
	for k, v := range s.entries {
		snap.Entries[k] = v
	}
	s.dirty = false
	s.mu.Unlock()

	err := s.writeSnapshot(&snap)
	if err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
	}
	return err
}

func (s *FileStore) writeSnapshot(snap *snapshot) error {
	jsonData, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	data, err := s.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := s.filePath + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return os.Rename(tmpFile, s.filePath)
}
