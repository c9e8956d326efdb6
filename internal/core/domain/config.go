package domain

// OutputMode selects the front end of an interactive session.
type OutputMode string

const (
	// OutputAuto picks the TUI on terminals and the linear menu elsewhere.
	OutputAuto OutputMode = "auto"
	// OutputTUI forces the full-screen interactive front end.
	OutputTUI OutputMode = "tui"
	// OutputLinear forces the line-oriented text menu.
	OutputLinear OutputMode = "linear"
)

// LogFormat selects how log records are written.
type LogFormat string

const (
	// LogFormatPretty writes human-readable, colored records.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON writes one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// Config is the resolved application configuration.
type Config struct {
	// Source is the file the configuration was read from, empty when defaults are used.
	Source        string
	HistoryLimit  int
	DefaultFilter Filter
	Output        OutputMode
	LogLevel      string
	LogFormat     LogFormat
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		HistoryLimit:  DefaultHistoryLimit,
		DefaultFilter: FilterAll,
		Output:        OutputAuto,
		LogLevel:      "info",
		LogFormat:     LogFormatPretty,
	}
}
