package config

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local storage backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown on the welcome screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local storage backends. Exactly
// one backend is active: the SQLite database when DB.DSN is set, otherwise
// the JSON file.
type Storage struct {
	// File holds the JSON-file storage settings.
	File File `envPrefix:"FILE_"`

	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// File holds settings of the JSON-file storage backend.
type File struct {
	// Path is the path of the JSON storage file. The special value
	// ":memory:" keeps all data in memory for the lifetime of the process.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// DB holds connection settings for the local SQLite storage backend.
type DB struct {
	// DSN is the SQLite file path or connection string
	// (e.g. "authdemo.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win; later sources only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
