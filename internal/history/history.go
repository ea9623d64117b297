/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package history keeps a small SQLite database of recently opened
// presentations so the file chooser and the File menu can offer them again.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	applog "gopresent/internal/log"
	"log/slog"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

// Entry is one recently opened presentation.
type Entry struct {
	Path     string
	Title    string
	Pages    int
	OpenedAt time.Time
}

// Store wraps the recents database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the recents database at path, enables WAL mode and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	l := applog.WithComponent("history")
	if path == "" {
		return nil, errors.New("history path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		l.Error("create history dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS recents (
		path      TEXT PRIMARY KEY,
		title     TEXT NOT NULL,
		pages     INTEGER NOT NULL,
		opened_at TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, fmt.Errorf("create recents table: %w", err)
	}

	l.Info("history ready", slog.String("path", path))
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Touch records that the presentation at path was opened now, inserting or
// refreshing its row.
func (s *Store) Touch(ctx context.Context, path, title string, pages int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `INSERT INTO recents (path, title, pages, opened_at) VALUES(?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET title=excluded.title, pages=excluded.pages, opened_at=excluded.opened_at`,
		path, title, pages, now)
	if err != nil {
		return fmt.Errorf("record recent: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently opened first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `SELECT path, title, pages, opened_at FROM recents ORDER BY opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recents: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.Path, &e.Title, &e.Pages, &ts); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, ts); perr == nil {
			e.OpenedAt = t
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recents: %w", err)
	}
	return out, nil
}

// Forget removes a single entry, used when a recent file no longer exists.
func (s *Store) Forget(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM recents WHERE path=?`, path); err != nil {
		return fmt.Errorf("forget recent: %w", err)
	}
	return nil
}
