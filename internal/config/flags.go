package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-f file storage path (":memory:" for a non-persistent run)
//	-d local SQLite database DSN
//	-c/-config json file path with configs
//	-app-version application version string
func ParseFlags() *StructuredConfig {
	var fileStoragePath string
	var databaseDSN string
	var jsonConfigPath string
	var appVersion string

	flag.StringVar(&fileStoragePath, "f", "", "File storage path")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&appVersion, "app-version", "", "Application version")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Storage: Storage{
			File: File{Path: fileStoragePath},
			DB:   DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}
}
