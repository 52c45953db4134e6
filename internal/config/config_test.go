package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(envConfigPath, "")
	return dir
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, path, err := Load(nil, "")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := isolate(t)

	file := filepath.Join(dir, "custom.yaml")
	content := []byte("chat:\n  typing_delay: 250ms\ndocuments:\n  default_type: excel\nseed: 7\n")
	require.NoError(t, os.WriteFile(file, content, 0o600))

	t.Setenv("YARA_CHAT_TYPING_DELAY", "2s")

	cfg, path, err := Load(nil, file)
	require.NoError(t, err)
	assert.Equal(t, file, path)
	assert.Equal(t, 2*time.Second, cfg.Chat.TypingDelay)
	assert.Equal(t, "excel", cfg.Documents.DefaultType)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, Default().Video.MaxUploadBytes, cfg.Video.MaxUploadBytes)
}

func TestLoadPicksUpWorkingDirectoryFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfigName), []byte("log_level: debug\n"), 0o600))

	cfg, path, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, defaultConfigName, filepath.Base(path))
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, dotEnvFile), []byte("YARA_SEED=42\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("YARA_SEED") })

	cfg, _, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, _, err := Load(nil, filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("YARA_VIDEO_MAX_UPLOAD_BYTES", "0")

	_, _, err := Load(nil, "")
	require.Error(t, err)
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", defaultConfigName)

	require.NoError(t, WriteDefault(path))

	cfg, _, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
