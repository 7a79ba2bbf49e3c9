package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the structured config carries no rules the
// client view does not already enforce.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.File.Path != "" && cfg.Storage.DB.DSN != "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
