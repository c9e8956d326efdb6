// Package config provides the configuration loader for todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	Getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger: logger,
		FS:     NewOSFS(),
		Getenv: os.Getenv,
	}
}

// Load resolves the configuration for cwd.
//
// A path in TODO_CONFIG wins and must exist. Otherwise todo.yaml is searched
// from cwd up to the filesystem root. Without a file the defaults are returned.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return domain.Config{}, err
	}

	if configPath == "" {
		l.Logger.Debug(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
		return domain.DefaultConfig(), nil
	}

	var todofile Todofile
	if err := l.readAndUnmarshalYAML(configPath, &todofile); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	cfg, err := l.buildConfig(&todofile)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	cfg.Source = configPath

	l.Logger.Debug("loaded configuration from " + configPath)
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	if explicit := l.Getenv(domain.ConfigEnvVar); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		if _, err := l.FS.Stat(explicit); err != nil {
			return "", zerr.With(domain.ErrConfigNotFound, "path", explicit)
		}
		return explicit, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) buildConfig(todofile *Todofile) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if todofile.Version != "" && todofile.Version != domain.ConfigVersion {
		return cfg, zerr.With(domain.ErrUnsupportedConfigVersion, "version", todofile.Version)
	}
	if todofile.Version == "" {
		l.Logger.Warn(fmt.Sprintf("%s has no version, assuming %q", domain.ConfigFileName, domain.ConfigVersion))
	}

	if limit := todofile.History.Limit; limit != nil {
		if *limit < 0 {
			return cfg, zerr.With(domain.ErrInvalidHistoryLimit, "limit", *limit)
		}
		cfg.HistoryLimit = *limit
		if *limit == 1 {
			l.Logger.Warn("history.limit of 1 leaves nothing to undo, using 2")
			cfg.HistoryLimit = 2
		}
	}

	if f := todofile.View.Filter; f != "" {
		filter := domain.Filter(f)
		if !filter.IsValid() {
			return cfg, zerr.With(domain.ErrInvalidFilter, "filter", f)
		}
		cfg.DefaultFilter = filter
	}

	if o := todofile.Output; o != "" {
		mode := domain.OutputMode(o)
		switch mode {
		case domain.OutputAuto, domain.OutputTUI, domain.OutputLinear:
			cfg.Output = mode
		default:
			return cfg, zerr.With(domain.ErrInvalidOutputMode, "output", o)
		}
	}

	if lvl := todofile.Log.Level; lvl != "" {
		switch lvl {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = lvl
		default:
			return cfg, zerr.With(domain.ErrInvalidLogLevel, "level", lvl)
		}
	}

	if f := todofile.Log.Format; f != "" {
		format := domain.LogFormat(f)
		switch format {
		case domain.LogFormatPretty, domain.LogFormatJSON:
			cfg.LogFormat = format
		default:
			return cfg, zerr.With(domain.ErrInvalidLogFormat, "format", f)
		}
	}

	return cfg, nil
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Todofile) error {
	configFile, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
