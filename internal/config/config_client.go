package config

import "fmt"

// defaultStorageFile is the JSON storage file used when neither a file path
// nor a database DSN is configured.
const defaultStorageFile = "authdemo_storage.json"

// ClientApp holds application-level settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string shown in the UI.
	Version string
}

// ClientFile holds the JSON-file storage settings for the client.
type ClientFile struct {
	// Path is the JSON storage file path, or ":memory:".
	Path string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// File holds JSON-file storage settings.
	File ClientFile
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level application configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Storage contains local storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates the application config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, defaults the storage backend to a JSON
// file next to the working directory when nothing is configured, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			File: ClientFile{Path: cfg.Storage.File.Path},
			DB:   ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	if clientCfg.Storage.File.Path == "" && clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.File.Path = defaultStorageFile
	}

	return clientCfg, clientCfg.validate()
}
