package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrMissingAccessToken indicates that no Square access token was found
	// in flags, environment, .env or the JSON file.
	ErrMissingAccessToken = errors.New("square access token is not set")
	// ErrInvalidSquareConfigs indicates invalid Square client settings
	// (for example, an unknown environment name).
	ErrInvalidSquareConfigs = errors.New("invalid square configuration")
	// ErrInvalidStorageConfigs indicates invalid ledger storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a malformed address or a zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkersConfigs indicates a negative sweep interval or a
	// non-positive PENDING max age while the sweeper is enabled.
	ErrInvalidWorkersConfigs = errors.New("invalid workers configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
