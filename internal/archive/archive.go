// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps parse results in a local SQLite database so they can
// be listed, re-exported, and searched by course code without re-parsing the
// source text.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/record-parser/pkg/types"
)

const dbFile = "records.db"

// ErrNotFound reports a document ID with no archived result.
var ErrNotFound = errors.New("document not found in archive")

// Store manages the archive database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Entry is the summary row returned by List and FindByCourse.
type Entry struct {
	ID         string             `json:"id" yaml:"id"`
	Kind       types.DocumentKind `json:"kind" yaml:"kind"`
	SourcePath string             `json:"source_path" yaml:"source_path"`
	ParsedAt   time.Time          `json:"parsed_at" yaml:"parsed_at"`
	Courses    int                `json:"courses" yaml:"courses"`
}

// NewStore opens or creates the archive at archiveDir/records.db and
// creates the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.ArchiveDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(cfg.ArchiveDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			source_path TEXT,
			parsed_at TEXT NOT NULL,
			result TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS document_courses (
			document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			bucket TEXT NOT NULL,
			course_code TEXT NOT NULL,
			PRIMARY KEY (document_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_document_courses_code ON document_courses(course_code)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_kind ON documents(kind)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores result under id, replacing any earlier result for the same id.
func (s *Store) Save(ctx context.Context, id, sourcePath string, result *types.ParseResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM document_courses WHERE document_id = ?`, id); err != nil {
		return fmt.Errorf("deleting old courses: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, kind, source_path, parsed_at, result)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			kind=excluded.kind, source_path=excluded.source_path,
			parsed_at=excluded.parsed_at, result=excluded.result`,
		id, string(result.Kind), sourcePath,
		time.Now().UTC().Format(time.RFC3339Nano), string(data),
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO document_courses (document_id, position, bucket, course_code) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range result.CourseCodes() {
		if _, err := stmt.ExecContext(ctx, id, i, c.Bucket, c.CourseCode); err != nil {
			return fmt.Errorf("inserting course %s: %w", c.CourseCode, err)
		}
	}

	return tx.Commit()
}

// Get returns the archived result for id.
func (s *Store) Get(ctx context.Context, id string) (*types.ParseResult, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT result FROM documents WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying document %s: %w", id, err)
	}

	var result types.ParseResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("decoding archived result %s: %w", id, err)
	}
	return &result, nil
}

// List returns archived documents, newest first. An empty kind lists every
// kind. A limit of zero or less uses the configured maximum.
func (s *Store) List(ctx context.Context, kind types.DocumentKind, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	query := `SELECT d.id, d.kind, d.source_path, d.parsed_at,
			(SELECT count(*) FROM document_courses c WHERE c.document_id = d.id)
		FROM documents d`
	var args []any
	if kind != "" {
		query += ` WHERE d.kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY d.parsed_at DESC, d.id LIMIT ?`
	args = append(args, limit)

	return s.queryEntries(ctx, query, args...)
}

// FindByCourse returns the documents that mention code in any bucket.
func (s *Store) FindByCourse(ctx context.Context, code string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	return s.queryEntries(ctx,
		`SELECT d.id, d.kind, d.source_path, d.parsed_at,
			(SELECT count(*) FROM document_courses c WHERE c.document_id = d.id)
		FROM documents d
		WHERE d.id IN (SELECT document_id FROM document_courses WHERE course_code = ?)
		ORDER BY d.parsed_at DESC, d.id LIMIT ?`,
		code, limit,
	)
}

func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			kind       string
			sourcePath sql.NullString
			parsedAt   string
		)
		if err := rows.Scan(&e.ID, &kind, &sourcePath, &parsedAt, &e.Courses); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		e.Kind = types.DocumentKind(kind)
		e.SourcePath = sourcePath.String
		if t, err := time.Parse(time.RFC3339Nano, parsedAt); err == nil {
			e.ParsedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
