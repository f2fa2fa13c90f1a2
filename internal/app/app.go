package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/lexc/internal/artifactstore"
	"github.com/specialistvlad/lexc/internal/compiler"
	"github.com/specialistvlad/lexc/internal/config"
	"github.com/specialistvlad/lexc/internal/ctxlog"
	"github.com/specialistvlad/lexc/internal/keywords"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	compiler *compiler.Compiler
	store    artifactstore.Store
}

// NewApp is the constructor for the main application. Generated code and
// check results go to outW, logs go to logW. A project that cannot be loaded
// is a fatal startup error and panics.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, cfg, loader)
	if err != nil {
		panic(fmt.Errorf("failed to load project: %w", err))
	}
	logger.Debug("Project loaded into model.", "programs", len(model.Programs))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		model:    model,
		compiler: compiler.New(keywords.Default()),
		store:    artifactstore.New(),
	}
}

// Model returns the loaded project model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Store returns the artifact store of the last run. This is primarily for testing.
func (a *App) Store() artifactstore.Store {
	return a.store
}

// loadModel builds the project model for the configured input mode.
func loadModel(ctx context.Context, cfg *Config, loader config.Loader) (*config.Model, error) {
	switch {
	case cfg.ProjectPath != "":
		if loader == nil {
			return nil, fmt.Errorf("no loader configured for project %s", cfg.ProjectPath)
		}
		return loader.Load(ctx, cfg.ProjectPath)

	case cfg.SourcePath != "":
		name := strings.TrimSuffix(filepath.Base(cfg.SourcePath), filepath.Ext(cfg.SourcePath))
		return &config.Model{Programs: []*config.Program{{
			Name:       name,
			SourceFile: cfg.SourcePath,
			Output:     cfg.OutputPath,
		}}}, nil

	default:
		return &config.Model{Programs: []*config.Program{{
			Name:   "sample",
			Source: SampleProgram,
			Output: cfg.OutputPath,
		}}}, nil
	}
}
