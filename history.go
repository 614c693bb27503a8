package main

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type historyStore struct {
	db   *sql.DB
	path string
}

type runRecord struct {
	Project  string
	Module   string
	Command  string
	ExitCode int
	Duration time.Duration
	RanAt    time.Time
}

func openHistoryStore() (*historyStore, error) {
	return openHistoryStoreAt(filepath.Join(resolveConfigDir(), "history.sqlite"))
}

func openHistoryStoreAt(sqlitePath string) (*historyStore, error) {
	db, err := sql.Open("sqlite", sqlitePath)
	if err != nil {
		return nil, err
	}
	if err := migrateHistoryStore(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &historyStore{db: db, path: sqlitePath}, nil
}

func migrateHistoryStore(db *sql.DB) error {
	statements := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project TEXT NOT NULL,
			module TEXT NOT NULL,
			command TEXT NOT NULL,
			exit_code INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			ran_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS recent_projects (
			path TEXT PRIMARY KEY,
			opened_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("history store migration failed: %w", err)
		}
	}
	return nil
}

func (s *historyStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *historyStore) RecordRun(record runRecord) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (project, module, command, exit_code, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		record.Project, record.Module, record.Command, record.ExitCode, record.Duration.Milliseconds(),
	)
	return err
}

func (s *historyStore) RecentRuns(project, module string, limit int) ([]runRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT project, module, command, exit_code, duration_ms, ran_at
		 FROM runs WHERE project = ? AND module = ?
		 ORDER BY id DESC LIMIT ?`,
		project, module, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []runRecord
	for rows.Next() {
		var record runRecord
		var durationMS int64
		if err := rows.Scan(&record.Project, &record.Module, &record.Command, &record.ExitCode, &durationMS, &record.RanAt); err != nil {
			return nil, err
		}
		record.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *historyStore) TouchProject(path string) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO recent_projects (path, opened_at) VALUES (?, CURRENT_TIMESTAMP)
		 ON CONFLICT(path) DO UPDATE SET opened_at = CURRENT_TIMESTAMP`,
		path,
	)
	return err
}

func (s *historyStore) RecentProjects(limit int) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(`SELECT path FROM recent_projects ORDER BY opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
