package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidHistoryLimit is returned when the configured history limit is negative.
	ErrInvalidHistoryLimit = zerr.New("history limit must not be negative")

	// ErrInvalidFilter is returned when the configured default filter is not all, completed or pending.
	ErrInvalidFilter = zerr.New("invalid filter, expected 'all', 'completed' or 'pending'")

	// ErrInvalidOutputMode is returned when the output mode is not auto, tui or linear.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'tui' or 'linear'")

	// ErrInvalidLogLevel is returned when the log level is not debug, info, warn or error.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrInvalidLogFormat is returned when the log format is not pretty or json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrWorkingDirFailed is returned when the working directory cannot be determined.
	ErrWorkingDirFailed = zerr.New("failed to get working directory")

	// ErrInputReadFailed is returned when reading menu input fails.
	ErrInputReadFailed = zerr.New("failed to read input")

	// ErrSessionFailed is returned when an interactive session ends with an error.
	ErrSessionFailed = zerr.New("session failed")
)
