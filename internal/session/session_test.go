package session

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"
)

func TestOpenEmitFlushClose(t *testing.T) {
	dir := t.TempDir()
	log, err := Open(dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if log.SessionID() == "" {
		t.Error("expected a non-empty session id")
	}

	log.Emit(Event{Event: "launch", Task: "core", Command: "mvn install", PID: 123})
	log.Emit(Event{Event: "exit", Task: "core", PID: 123})
	log.Flush()
	if err := log.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	file, err := os.Open(log.Path())
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer file.Close()

	var events []Event
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var event Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("malformed log line %q: %v", scanner.Text(), err)
		}
		events = append(events, event)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, event := range events {
		if event.SessionID != log.SessionID() {
			t.Errorf("expected session id %q, got %q", log.SessionID(), event.SessionID)
		}
		if event.Timestamp.IsZero() {
			t.Error("expected a timestamp to be stamped")
		}
	}
	if events[0].Event != "launch" || events[1].Event != "exit" {
		t.Errorf("expected [launch exit], got [%s %s]", events[0].Event, events[1].Event)
	}
}

func TestEmitDropsUnnamedEvents(t *testing.T) {
	dir := t.TempDir()
	log, err := Open(dir)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	log.Emit(Event{Event: "  "})
	if err := log.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	data, err := os.ReadFile(log.Path())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty log, got %q", data)
	}
}

func TestDiscardIsSafe(t *testing.T) {
	log := Discard()
	log.Emit(Event{Event: "launch"})
	log.Flush()
	if err := log.Close(); err != nil {
		t.Errorf("close on discard log: %v", err)
	}
	// A nil log is equally inert.
	var nilLog *Log
	nilLog.Emit(Event{Event: "launch"})
	nilLog.Flush()
	_ = nilLog.Close()
}
