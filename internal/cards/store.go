package cards

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cards (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    color TEXT NOT NULL,
    created_at INTEGER NOT NULL       -- UnixNano
);
`

// Store persists cards in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the card database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Count returns the number of stored cards.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cards").Scan(&n); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}

// Seed inserts cs when the store is empty. It returns the number of cards
// inserted.
func (s *Store) Seed(ctx context.Context, cs []Card) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 || len(cs) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed cards: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO cards (title, color, created_at) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("seed cards: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UnixNano()
	for _, c := range cs {
		if _, err := stmt.ExecContext(ctx, c.Title, c.Color, now); err != nil {
			return 0, fmt.Errorf("seed card %q: %w", c.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed cards: %w", err)
	}
	return len(cs), nil
}

// Add stores a new card and returns it with its id.
func (s *Store) Add(ctx context.Context, title, color string) (Card, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO cards (title, color, created_at) VALUES (?, ?, ?)",
		title, color, time.Now().UnixNano())
	if err != nil {
		return Card{}, fmt.Errorf("add card: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Card{}, fmt.Errorf("add card: %w", err)
	}
	return Card{ID: id, Title: title, Color: color}, nil
}

// Delete removes the card with id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete card %d: %w", id, err)
	}
	return nil
}

// List returns all cards in insertion order.
func (s *Store) List(ctx context.Context) ([]Card, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, color FROM cards ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var out []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.Title, &c.Color); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return out, nil
}
