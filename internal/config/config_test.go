package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("STORAGE_FILE_PATH", "/tmp/storage.json")
	t.Setenv("STORAGE_DB_DATABASE_URI", "authdemo.db")
	t.Setenv("CONFIG", "/tmp/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/storage.json", cfg.Storage.File.Path)
	assert.Equal(t, "authdemo.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"app": {"version": "2.0.0"},
		"storage": {
			"file": {"path": "state.json"}
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "state.json", cfg.Storage.File.Path)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestConfigBuilder_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "from-env"}},
		&StructuredConfig{
			App:     App{Version: "from-flags"},
			Storage: Storage{File: File{Path: "flags.json"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value, so earlier sources win and later
	// ones only fill gaps.
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "flags.json", cfg.Storage.File.Path)
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := &ClientConfig{
		Storage: ClientStorage{File: ClientFile{Path: "state.json"}},
	}
	assert.NoError(t, cfg.validate())

	cfg = &ClientConfig{
		Storage: ClientStorage{DB: ClientDB{DSN: "authdemo.db"}},
	}
	assert.NoError(t, cfg.validate())

	cfg = &ClientConfig{
		Storage: ClientStorage{
			File: ClientFile{Path: "state.json"},
			DB:   ClientDB{DSN: "authdemo.db"},
		},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}
