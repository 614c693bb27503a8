// Package outbuf holds per-task build output: the append-only line buffer,
// the scroll offset, last-run metadata, and the wrap-aware row metrics used
// to clamp scrolling. One writer (the event drain) and one reader (the
// render pass) may interleave freely; appends are atomic pushes and metrics
// snapshots are replaced whole.
package outbuf

import (
	"sync"
	"time"
)

type task struct {
	lines       []string
	offset      int
	lastCommand string
	profiles    []string
	running     bool
	startedAt   time.Time
	finishedAt  time.Time
	metrics     Metrics
}

// Store maps task identities (module tabs) to their output state.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]*task
}

func NewStore() *Store {
	return &Store{tasks: make(map[string]*task)}
}

func (s *Store) get(id string) *task {
	t, ok := s.tasks[id]
	if !ok {
		t = &task{}
		s.tasks[id] = t
	}
	return t
}

// BeginRun resets the task's buffer for a fresh invocation and records the
// command being run. The scroll offset resets with the buffer; stale
// metrics from the previous run are discarded.
func (s *Store) BeginRun(id, command string, profiles []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.get(id)
	t.lines = nil
	t.offset = 0
	t.lastCommand = command
	t.profiles = append([]string(nil), profiles...)
	t.running = true
	t.startedAt = time.Now()
	t.finishedAt = time.Time{}
	t.metrics = Metrics{}
}

// Append pushes one completed output line in arrival order.
func (s *Store) Append(id, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.get(id)
	t.lines = append(t.lines, line)
}

// FinishRun marks the task idle. A non-empty errMessage appends the
// trailing "ERROR: {message}" line that distinguishes a failed run in the
// output panel.
func (s *Store) FinishRun(id, errMessage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.get(id)
	if errMessage != "" {
		t.lines = append(t.lines, "ERROR: "+errMessage)
	}
	t.running = false
	t.finishedAt = time.Now()
}

// Lines returns the task's buffer. The returned slice is a stable view:
// the buffer is append-only between runs, so concurrent appends reallocate
// rather than mutate the returned backing array's visible range.
func (s *Store) Lines(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tasks[id]; ok {
		return t.lines[:len(t.lines):len(t.lines)]
	}
	return nil
}

// LineCount avoids copying the slice header when only the length matters.
func (s *Store) LineCount(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tasks[id]; ok {
		return len(t.lines)
	}
	return 0
}

// Offset returns the task's current scroll offset in visual rows.
func (s *Store) Offset(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tasks[id]; ok {
		return t.offset
	}
	return 0
}

// SetOffset stores a scroll offset clamped against the current metrics.
func (s *Store) SetOffset(id string, offset, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.get(id)
	t.offset = ClampOffset(offset, t.metrics.TotalRows, height)
}

// Recompute replaces the task's metrics snapshot for the given width and
// re-clamps the scroll offset against the new total. The offset is clamped,
// never reset, so resizing preserves the user's place.
func (s *Store) Recompute(id string, width, height int) Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.get(id)
	t.metrics = Compute(t.lines, width)
	t.offset = ClampOffset(t.offset, t.metrics.TotalRows, height)
	return t.metrics
}

// Metrics returns the task's current metrics snapshot.
func (s *Store) Metrics(id string) Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tasks[id]; ok {
		return t.metrics
	}
	return Metrics{}
}

// Running reports whether a terminal event has yet to arrive for the
// task's current invocation.
func (s *Store) Running(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tasks[id]; ok {
		return t.running
	}
	return false
}

// Elapsed returns how long the current (or last) invocation has been
// running, and zero if the task never ran.
func (s *Store) Elapsed(id string) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok || t.startedAt.IsZero() {
		return 0
	}
	if t.running || t.finishedAt.IsZero() {
		return time.Since(t.startedAt)
	}
	return t.finishedAt.Sub(t.startedAt)
}

// LastCommand returns the command line of the task's most recent run.
func (s *Store) LastCommand(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tasks[id]; ok {
		return t.lastCommand
	}
	return ""
}

// Profiles returns the profile/flag context recorded for display.
func (s *Store) Profiles(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tasks[id]; ok {
		return append([]string(nil), t.profiles...)
	}
	return nil
}
