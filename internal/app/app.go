// Package app implements the application layer for todo.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.trai.ch/todo/internal/adapters/detector"
	"go.trai.ch/todo/internal/adapters/linear"
	"go.trai.ch/todo/internal/adapters/tui"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
	"go.trai.ch/todo/internal/engine/menu"
	"go.trai.ch/zerr"
)

// configurable is implemented by loggers that take their level and format from the config file.
type configurable interface {
	Configure(cfg domain.Config)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	stdin        io.Reader
	stdout       io.Writer
	teaOptions   []tea.ProgramOption
	detect       func() domain.OutputMode
	workDir      func() (string, error)
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, tracer ports.Tracer) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		detect:       detector.DetectEnvironment,
		workDir:      os.Getwd,
	}
}

// WithIO replaces the session input and output streams.
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.stdin = in
	a.stdout = out
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDetector replaces terminal detection used for the "auto" output mode.
func (a *App) WithDetector(detect func() domain.OutputMode) *App {
	a.detect = detect
	return a
}

// WithWorkDir replaces the lookup of the directory the config search starts from.
func (a *App) WithWorkDir(workDir func() (string, error)) *App {
	a.workDir = workDir
	return a
}

// ShellOptions configuration for the Shell method.
type ShellOptions struct {
	// OutputMode is auto, tui, linear or ci. Empty uses the config file.
	OutputMode string
	// Filter is the initial view filter. Empty uses the config file.
	Filter string
}

var outputFlags = []string{"", "auto", "tui", "linear", "ci"}

// Shell runs one interactive session over a fresh task list.
// A cancelled context ends the session without error.
func (a *App) Shell(ctx context.Context, opts ShellOptions) error {
	// 1. Load the configuration
	cwd, err := a.workDir()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if c, ok := a.logger.(configurable); ok {
		c.Configure(cfg)
	}

	// 2. Resolve options against the config
	filter := cfg.DefaultFilter
	if opts.Filter != "" {
		filter = domain.Filter(opts.Filter)
		if !filter.IsValid() {
			return zerr.With(domain.ErrInvalidFilter, "filter", opts.Filter)
		}
	}

	if !slices.Contains(outputFlags, opts.OutputMode) {
		return zerr.With(domain.ErrInvalidOutputMode, "output", opts.OutputMode)
	}
	flag := opts.OutputMode
	if flag == "" {
		flag = string(cfg.Output)
	}
	mode := detector.ResolveMode(a.detect(), flag)

	// 3. Run the session
	list := domain.NewTaskList(domain.WithHistoryLimit(cfg.HistoryLimit))
	sessionID := uuid.NewString()
	a.logger.Debug(fmt.Sprintf("session %s started: output=%s filter=%s history.limit=%d",
		sessionID, mode, filter, cfg.HistoryLimit))

	defer func() {
		if shutdownErr := a.tracer.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			a.logger.Warn("failed to flush traces: " + shutdownErr.Error())
		}
	}()

	if mode == domain.OutputTUI {
		model := tui.NewModel(ctx, list, a.tracer, tui.WithSessionID(sessionID), tui.WithFilter(filter))
		err = tui.Run(ctx, model, a.teaOptions...)
	} else {
		m := menu.New(list, linear.NewRenderer(a.stdout), a.tracer,
			menu.WithSessionID(sessionID), menu.WithDefaultFilter(filter))
		err = m.Run(ctx, a.stdin)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			a.logger.Debug(fmt.Sprintf("session %s interrupted", sessionID))
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrSessionFailed.Error()), "session", sessionID)
	}

	a.logger.Debug(fmt.Sprintf("session %s ended with %d task(s)", sessionID, list.Len()))
	return nil
}
