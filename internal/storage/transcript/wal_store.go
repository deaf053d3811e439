// Package transcript persists the console command history in a WAL so a
// session can be audited after the fact.
package transcript

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"
)

const (
	defaultTranscriptDir = "./wal/transcript"
	segmentLimit         = 500
	maxSegments          = 20
	entryKeyPrefix       = "console_entry_"
)

// Entry is one dispatched command together with its outcome.
type Entry struct {
	ID          string    `json:"id"`
	Time        time.Time `json:"time"`
	Input       string    `json:"input"`
	OK          bool      `json:"ok"`
	Message     string    `json:"message,omitempty"`
	ErrorDetail string    `json:"error_detail,omitempty"`
}

// Record pairs an entry with its WAL index.
type Record struct {
	Index uint64
	Entry Entry
}

// WALStore persists console entries in a WAL.
type WALStore struct {
	wal *gowal.Wal
	mu  sync.RWMutex
}

// NewWALStore initializes a WAL-backed transcript store under the provided
// directory.
func NewWALStore(dir string) (*WALStore, error) {
	if dir == "" {
		dir = defaultTranscriptDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "transcript_",
		SegmentThreshold: segmentLimit,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init transcript WAL")
	}

	return &WALStore{wal: wal}, nil
}

// Redact replaces the secret part of a token command so credentials never
// reach disk. Any other input passes through unchanged.
func Redact(input string) string {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(strings.ToLower(trimmed), "token ") {
		return "token ***"
	}
	return input
}

// Save appends the entry to the WAL. A missing ID or timestamp is filled in.
func (s *WALStore) Save(entry Entry) error {
	if s == nil || s.wal == nil {
		return errors.New("transcript store is not initialized")
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Time.IsZero() {
		entry.Time = time.Now().UTC()
	}
	entry.Input = Redact(entry.Input)

	payload, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "marshal transcript entry")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nextIndex := s.wal.CurrentIndex() + 1
	return s.wal.Write(nextIndex, entryKeyPrefix+entry.ID, payload)
}

// EntriesAfter returns all entries written after the provided WAL index.
func (s *WALStore) EntriesAfter(index uint64) ([]Record, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("transcript store is not initialized")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.wal.CurrentIndex()
	if current <= index {
		return nil, nil
	}

	records := make([]Record, 0, current-index)
	for idx := index + 1; idx <= current; idx++ {
		key, payload, err := s.wal.Get(idx)
		if err != nil || !strings.HasPrefix(key, entryKeyPrefix) {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(payload, &entry); err != nil {
			return nil, errors.Wrap(err, "decode transcript entry")
		}
		records = append(records, Record{Index: idx, Entry: entry})
	}

	return records, nil
}

// Close closes the underlying WAL.
func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("transcript store is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}
