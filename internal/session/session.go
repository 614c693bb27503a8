// Package session provides an explicitly constructed, file-backed session
// log. A Log is created once at startup, passed to the components that need
// it, and flushed on shutdown; there is no package-level state.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type Event struct {
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Event     string            `json:"event"`
	Task      string            `json:"task,omitempty"`
	Command   string            `json:"command,omitempty"`
	PID       int               `json:"pid,omitempty"`
	Detail    map[string]string `json:"detail,omitempty"`
}

// Log appends JSONL events tagged with a per-process session id. All methods
// are safe for concurrent use and never fail the caller; a broken log file
// degrades to a no-op.
type Log struct {
	path      string
	sessionID string

	mu   sync.Mutex
	file *os.File
}

// Open creates (or appends to) a session log file under dir and returns the
// initialized Log.
func Open(dir string) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session log dir: %w", err)
	}
	path := filepath.Join(dir, "session.jsonl")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	return &Log{path: path, sessionID: newSessionID(), file: file}, nil
}

// Discard returns a Log that accepts events and writes nothing. Used by
// tests and by callers that could not open a log file.
func Discard() *Log {
	return &Log{sessionID: newSessionID()}
}

func (l *Log) SessionID() string {
	if l == nil {
		return ""
	}
	return l.sessionID
}

func (l *Log) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Emit writes one event. Empty event names are dropped.
func (l *Log) Emit(event Event) {
	if l == nil || strings.TrimSpace(event.Event) == "" {
		return
	}
	if event.SessionID == "" {
		event.SessionID = l.sessionID
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if len(event.Detail) == 0 {
		event.Detail = nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = l.file.Write(data)
}

// Flush syncs buffered writes to disk.
func (l *Log) Flush() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Sync()
	}
}

// Close flushes and closes the underlying file. The Log remains usable as a
// no-op afterwards.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}
	return fmt.Sprintf("%x", time.Now().UnixNano())
}
