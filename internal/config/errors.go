package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings: the
	// file backend and the database backend are mutually exclusive.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
