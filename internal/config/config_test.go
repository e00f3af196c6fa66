package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, "gemini-3-flash-preview", cfg.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "@vibra_tr", cfg.UserHandle)
	assert.True(t, cfg.Haptics)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "api_key: test-key\ntheme: cyber\nuser_name: Can\nhaptics: false\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "cyber", cfg.Theme)
	assert.Equal(t, "Can", cfg.UserName)
	assert.False(t, cfg.Haptics)
	// Unset fields keep their defaults.
	assert.Equal(t, "gemini-3-flash-preview", cfg.Model)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: from-file\ntheme: void\n"), 0644))

	t.Setenv("VIBRA_API_KEY", "from-env")
	t.Setenv("VIBRA_REQUEST_TIMEOUT", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "void", cfg.Theme)
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("VIBRA_REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("VIBRA_HAPTICS", "maybe")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Haptics)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.APIKey = "persisted"
	cfg.Theme = "void"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "persisted", loaded.APIKey)
	assert.Equal(t, "void", loaded.Theme)
}
