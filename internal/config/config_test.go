package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "address-cleanser.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STAGE", "LOG_LEVEL", "API_KEYS", "PORT", "RATE_LIMIT", "BATCH_WORKERS", "MAX_BATCH_SIZE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "local", cfg.Stage)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.RateLimit)
	assert.Equal(t, 1000, cfg.Batch.MaxSize)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	path := writeConfig(t, `
stage = "dev"

[server]
port = 9000
api_keys = ["file-key"]
rate_limit = 10

[batch]
workers = 3
max_size = 50
chunk_size = 25

[log]
level = "debug"
file = "/tmp/cleanser.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Stage:  "dev",
		Server: ServerConfig{Port: 9000, APIKeys: []string{"file-key"}, RateLimit: 10},
		Batch:  BatchConfig{Workers: 3, MaxSize: 50, ChunkSize: 25},
		Log:    LogConfig{Level: "debug", File: "/tmp/cleanser.log"},
	}, cfg)
	assert.True(t, cfg.AuthEnabled())

	t.Setenv("PORT", "8080")
	t.Setenv("API_KEYS", " a, ,b ")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MAX_BATCH_SIZE", "5")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"a", "b"}, cfg.Server.APIKeys)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Batch.MaxSize)
	assert.Equal(t, 3, cfg.Batch.Workers)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("RATE_LIMIT")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RATE_LIMIT=7\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Server.RateLimit)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		env     map[string]string
		file    string
		wantErr string
	}{
		{name: "bad integer", env: map[string]string{"PORT": "eighty"}, wantErr: "invalid PORT"},
		{name: "bad stage", env: map[string]string{"STAGE": "qa"}, wantErr: `invalid stage "qa"`},
		{name: "bad port", env: map[string]string{"PORT": "70000"}, wantErr: "invalid port 70000"},
		{name: "negative rate", env: map[string]string{"RATE_LIMIT": "-1"}, wantErr: "rate limit must not be negative"},
		{name: "bad toml", file: "[server\nport=1", wantErr: "failed to parse config file"},
		{name: "zero chunk", file: "[batch]\nchunk_size = 0\n", wantErr: "chunk size must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,,b, "))
}

func TestValidate_Stage(t *testing.T) {
	tests := []struct {
		stage string
		want  bool
	}{
		{"prod", true},
		{"dev", true},
		{"local", true},
		{"", false},
		{"staging", false},
		{"PROD", false},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			cfg := Default()
			cfg.Stage = tt.stage
			assert.Equal(t, tt.want, cfg.Validate() == nil)
		})
	}
}
