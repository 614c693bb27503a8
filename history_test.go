package main

import (
	"path/filepath"
	"testing"
	"time"
)

func tempHistoryStore(t *testing.T) *historyStore {
	t.Helper()
	store, err := openHistoryStoreAt(filepath.Join(t.TempDir(), "history.sqlite"))
	if err != nil {
		t.Fatalf("open history store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := tempHistoryStore(t)
	runs := []runRecord{
		{Project: "/p", Module: "core", Command: "mvn -B test", ExitCode: 0, Duration: 2 * time.Second},
		{Project: "/p", Module: "core", Command: "mvn -B install", ExitCode: 1, Duration: 9 * time.Second},
		{Project: "/p", Module: "web", Command: "mvn -B test", ExitCode: 0, Duration: time.Second},
	}
	for _, run := range runs {
		if err := store.RecordRun(run); err != nil {
			t.Fatalf("record run: %v", err)
		}
	}

	records, err := store.RecentRuns("/p", "core", 10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 core runs, got %d", len(records))
	}
	// Most recent first.
	if records[0].Command != "mvn -B install" || records[0].ExitCode != 1 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Duration != 2*time.Second {
		t.Errorf("expected duration to round-trip, got %v", records[1].Duration)
	}
}

func TestRecentProjectsUpdatesOnTouch(t *testing.T) {
	store := tempHistoryStore(t)
	if err := store.TouchProject("/alpha"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := store.TouchProject("/beta"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	paths, err := store.RecentProjects(10)
	if err != nil {
		t.Fatalf("recent projects: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 projects, got %v", paths)
	}
	// Touching an existing path must not create a duplicate row.
	if err := store.TouchProject("/alpha"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	paths, err = store.RecentProjects(10)
	if err != nil {
		t.Fatalf("recent projects: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("expected no duplicates, got %v", paths)
	}
}

func TestNilHistoryStoreIsInert(t *testing.T) {
	var store *historyStore
	if err := store.RecordRun(runRecord{}); err != nil {
		t.Errorf("nil store RecordRun: %v", err)
	}
	if err := store.TouchProject("/x"); err != nil {
		t.Errorf("nil store TouchProject: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("nil store Close: %v", err)
	}
}
