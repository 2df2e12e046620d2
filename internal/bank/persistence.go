package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chiahsuan/wordbank/internal/word"
)

// BankKey is the logical key the word bank is persisted under.
const BankKey = "my_words"

// Persistence loads and saves the serialized word bank under a single
// logical key. Write-through: Save is called after every bank mutation.
type Persistence interface {
	Load(ctx context.Context) ([]word.Record, error)
	Save(ctx context.Context, records []word.Record) error
}

// FileStore persists the bank as a JSON blob in a single file.
type FileStore struct {
	rootDir string
}

// NewFileStore creates a file-backed store rooted at the given directory.
func NewFileStore(rootDir string) *FileStore {
	return &FileStore{rootDir: rootDir}
}

func (f *FileStore) filePath() string {
	return filepath.Join(f.rootDir, BankKey+".json")
}

// Load reads the persisted bank. A missing file is an empty bank; a blob
// that fails to parse is treated as empty rather than surfaced, since the
// user can always rebuild the bank from the daily feed.
func (f *FileStore) Load(_ context.Context) ([]word.Record, error) {
	contents, err := os.ReadFile(f.filePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", f.filePath(), err)
	}

	var records []word.Record
	if err := json.Unmarshal(contents, &records); err != nil {
		slog.Warn("persisted word bank is corrupt, treating as empty", "path", f.filePath(), "error", err)
		return nil, nil
	}
	return records, nil
}

// Save writes the full bank synchronously.
func (f *FileStore) Save(_ context.Context, records []word.Record) error {
	if err := os.MkdirAll(f.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", f.rootDir, err)
	}

	contents, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("json.Marshal() > %w", err)
	}
	if err := os.WriteFile(f.filePath(), contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", f.filePath(), err)
	}
	return nil
}
