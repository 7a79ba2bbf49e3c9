package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		File struct {
			Path string `json:"path"`
		} `json:"file,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			File: File{Path: jsonCfg.Storage.File.Path},
			DB:   DB{DSN: jsonCfg.Storage.DB.DSN},
		},
	}

	return cfg, nil
}
