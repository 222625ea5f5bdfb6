package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" database/sql driver
	"github.com/medichat/go-medichat/models"
)

const createHistoryTable = `CREATE TABLE IF NOT EXISTS chat_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    role TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// sqliteHistoryStore is the terminal client's local chat transcript, backed
// by a single-file SQLite database next to the executable. The transcript
// is a convenience cache only; the server never sees it.
type sqliteHistoryStore struct {
	db *sql.DB
}

// NewChatHistory opens (or creates) the SQLite transcript at path.
// Pass ":memory:" for an ephemeral transcript in tests.
func NewChatHistory(path string) (HistoryStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening chat history db: %w", err)
	}

	if _, err := db.Exec(createHistoryTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating chat history table: %w", err)
	}

	return &sqliteHistoryStore{db: db}, nil
}

func (s *sqliteHistoryStore) Append(ctx context.Context, turn models.ChatTurn) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_history (role, content) VALUES (?, ?);`,
		turn.Role, turn.Content)
	if err != nil {
		return fmt.Errorf("error appending chat turn: %w", err)
	}

	return nil
}

// Recent returns the last limit turns in chronological order.
func (s *sqliteHistoryStore) Recent(ctx context.Context, limit int) ([]models.ChatTurn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, content, created_at
         FROM (SELECT id, role, content, created_at FROM chat_history ORDER BY id DESC LIMIT ?)
         ORDER BY id ASC;`, limit)
	if err != nil {
		return nil, fmt.Errorf("error reading chat history: %w", err)
	}
	defer rows.Close()

	var turns []models.ChatTurn
	for rows.Next() {
		var turn models.ChatTurn
		if err := rows.Scan(&turn.ID, &turn.Role, &turn.Content, &turn.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		turns = append(turns, turn)
	}

	return turns, rows.Err()
}

func (s *sqliteHistoryStore) Close() error {
	return s.db.Close()
}
