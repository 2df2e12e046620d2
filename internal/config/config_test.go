package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Type)
	assert.Equal(t, filepath.Join("data", "bank"), cfg.Storage.File.Directory)
	assert.Equal(t, 3306, cfg.Storage.MySQL.Port)
	assert.Equal(t, 30, cfg.Daily.Count)
	assert.Equal(t, "en-US", cfg.Speech.LanguageTag)
	assert.Equal(t, uint(3), cfg.Remote.RetryAttempts)
	assert.False(t, cfg.Remote.Enabled)
	assert.Equal(t, filepath.Join("outputs", "study_sheets"), cfg.Outputs.StudySheetDirectory)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  type: mysql
  mysql:
    host: db.internal
    port: 3307
    username: wordbank
    database: wordbank
daily:
  count: 10
speech:
  command: say
  args: ["-v", "{lang}", "{text}"]
remote:
  enabled: true
  base_url: https://words.example.com
  retry_attempts: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Storage.Type)
	assert.Equal(t, "db.internal", cfg.Storage.MySQL.Host)
	assert.Equal(t, 3307, cfg.Storage.MySQL.Port)
	assert.Equal(t, 10, cfg.Daily.Count)
	assert.Equal(t, "say", cfg.Speech.Command)
	assert.Equal(t, []string{"-v", "{lang}", "{text}"}, cfg.Speech.Args)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, "https://words.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, uint(5), cfg.Remote.RetryAttempts)
}

func TestLoad_SecretsFromEnvironment(t *testing.T) {
	t.Setenv("WORDBANK_API_KEY", "test-api-key")
	t.Setenv("WORDBANK_DB_PASSWORD", "test-db-password")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-api-key", cfg.Remote.APIKey)
	assert.Equal(t, "test-db-password", cfg.Storage.MySQL.Password)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "unknown storage type",
			contents: "storage:\n  type: redis\n",
			wantErr:  "invalid configuration",
		},
		{
			name:     "daily count below one",
			contents: "daily:\n  count: 0\n",
			wantErr:  "invalid configuration",
		},
		{
			name:     "remote enabled without base url",
			contents: "remote:\n  enabled: true\n",
			wantErr:  "invalid configuration",
		},
		{
			name:     "pool file does not exist",
			contents: "pool:\n  file: /no/such/pool.yml\n",
			wantErr:  "must be an existing and readable file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.contents)

			_, err := Load(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	path := writeConfigFile(t, "storage: [not a mapping\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "could not be read")
}
