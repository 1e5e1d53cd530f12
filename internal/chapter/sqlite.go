package chapter

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Schema is the table layout SQLiteSource reads from.
const Schema = `CREATE TABLE IF NOT EXISTS verses (
	chapter   TEXT    NOT NULL,
	position  INTEGER NOT NULL,
	reference TEXT    NOT NULL,
	text      TEXT    NOT NULL,
	PRIMARY KEY (chapter, position)
)`

// SQLiteSource reads chapters from a verses table. Rows are re-encoded to
// the JSON wire format so every source shares one decoder.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens the database file at path.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return NewSQLiteSource(db), nil
}

func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

func (s *SQLiteSource) Fetch(ctx context.Context, id string) ([]byte, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT reference, text FROM verses WHERE chapter = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query chapter %s: %w", id, err)
	}
	defer rows.Close()

	var verses []Verse
	for rows.Next() {
		var v Verse
		if err := rows.Scan(&v.Reference, &v.Text); err != nil {
			return nil, fmt.Errorf("scan chapter %s: %w", id, err)
		}
		verses = append(verses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query chapter %s: %w", id, err)
	}
	if len(verses) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return encode(verses)
}

func (s *SQLiteSource) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT chapter FROM verses ORDER BY chapter`)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list chapters: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
