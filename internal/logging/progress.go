package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ProgressLog writes progress events to a JSONL file.
// It is safe for concurrent use. A nil ProgressLog is safe to use;
// all methods are no-ops on nil receiver.
type ProgressLog struct {
	mu   sync.Mutex
	file *os.File
}

// NewProgressLog opens path for append, creating parent directories.
// An empty path returns nil and no error.
func NewProgressLog(path string) (*ProgressLog, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	return &ProgressLog{file: f}, nil
}

// Log writes an event as a single JSONL line.
// A "time" field is added automatically. The caller's map is not mutated.
// Safe to call on nil receiver.
func (pl *ProgressLog) Log(event map[string]any) {
	if pl == nil {
		return
	}

	entry := make(map[string]any, len(event)+1)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')

	pl.mu.Lock()
	defer pl.mu.Unlock()
	if pl.file != nil {
		_, _ = pl.file.Write(data)
	}
}

// Close closes the underlying file. Safe to call on nil receiver.
func (pl *ProgressLog) Close() error {
	if pl == nil {
		return nil
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()
	if pl.file == nil {
		return nil
	}
	err := pl.file.Close()
	pl.file = nil

	return err
}
