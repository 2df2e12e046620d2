package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/chiahsuan/wordbank/internal/word"
)

// bankRow maps the word_banks table, a key-value table holding one
// serialized bank per name.
type bankRow struct {
	Name      string          `db:"name"`
	Contents  json.RawMessage `db:"contents"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// DBStore implements Persistence using MySQL.
type DBStore struct {
	db *sqlx.DB
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Load reads the persisted bank row. No row means an empty bank, and a
// blob that fails to parse degrades to an empty bank as well.
func (r *DBStore) Load(ctx context.Context) ([]word.Record, error) {
	var row bankRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM word_banks WHERE name = ?", BankKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word_banks) > %w", err)
	}

	var records []word.Record
	if err := json.Unmarshal(row.Contents, &records); err != nil {
		slog.Warn("persisted word bank is corrupt, treating as empty", "name", BankKey, "error", err)
		return nil, nil
	}
	return records, nil
}

// Save upserts the full bank under its key.
func (r *DBStore) Save(ctx context.Context, records []word.Record) error {
	contents, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("json.Marshal() > %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO word_banks (name, contents)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE contents = VALUES(contents)`,
		BankKey, contents); err != nil {
		return fmt.Errorf("db.ExecContext(upsert word_banks) > %w", err)
	}
	return nil
}
