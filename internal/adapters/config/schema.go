package config

// Todofile represents the structure of the todo.yaml configuration file.
type Todofile struct {
	Version string     `yaml:"version"`
	History HistoryDTO `yaml:"history"`
	View    ViewDTO    `yaml:"view"`
	Output  string     `yaml:"output"`
	Log     LogDTO     `yaml:"log"`
}

// HistoryDTO represents the undo history settings.
type HistoryDTO struct {
	// Limit is a pointer so that an explicit 0 (unbounded) differs from an absent key.
	Limit *int `yaml:"limit"`
}

// ViewDTO represents the task listing settings.
type ViewDTO struct {
	Filter string `yaml:"filter"`
}

// LogDTO represents the logging settings.
type LogDTO struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
