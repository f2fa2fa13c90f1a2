package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/lexc/internal/artifactstore"
	"github.com/specialistvlad/lexc/internal/ctxlog"
	"github.com/specialistvlad/lexc/internal/executor"
	"github.com/specialistvlad/lexc/internal/validator"
)

// ErrRejected is returned by Run when at least one program failed validation.
var ErrRejected = errors.New("one or more programs were rejected")

// Run compiles, or in check mode validates, every program of the model.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.model.Programs) == 0 {
		a.logger.Warn("No programs found, nothing to compile.")
		return nil
	}

	var sink executor.Sink = executor.FileSink{}
	if a.config.Stdout {
		sink = executor.NewWriterSink(a.outW)
	}

	a.store = artifactstore.New()
	exec := executor.New(a.model.Programs, a.compiler, a.store, sink, executor.Options{
		Workers:      a.config.WorkerCount,
		ValidateOnly: a.config.CheckOnly,
	})

	a.logger.Info("Starting compilation.", "programs", len(a.model.Programs), "check_only", a.config.CheckOnly)
	runErr := exec.Run(ctx)

	if err := a.report(ctx); err != nil {
		return err
	}

	if runErr != nil {
		if errors.Is(runErr, validator.ErrRejectedProgram) {
			return fmt.Errorf("%w: %w", ErrRejected, runErr)
		}
		return fmt.Errorf("compilation failed: %w", runErr)
	}

	a.logger.Info("Compilation finished.")
	a.logger.Debug("App.Run method finished.")
	return nil
}

// report logs the final status of every program and, in check mode, prints
// one verdict per program. Rejections are followed by a diagnostic.
func (a *App) report(ctx context.Context) error {
	for _, p := range a.model.Programs {
		status, err := a.store.GetStatus(ctx, p.Name)
		if err != nil {
			return err
		}
		a.logger.Debug("Program result.", "program", p.Name, "status", status.String())

		if !a.config.CheckOnly {
			continue
		}
		if status == artifactstore.StatusCompiled {
			fmt.Fprintf(a.outW, "%s: ok\n", p.Name)
			continue
		}

		programErr, err := a.store.GetError(ctx, p.Name)
		if err != nil {
			return err
		}
		var rejection *validator.RejectionError
		if status == artifactstore.StatusRejected && errors.As(programErr, &rejection) {
			fmt.Fprintf(a.outW, "%s: %s\n\n", p.Name, status)
			if err := writeRejection(a.outW, p, rejection); err != nil {
				return fmt.Errorf("failed to print diagnostic for %q: %w", p.Name, err)
			}
			continue
		}
		fmt.Fprintf(a.outW, "%s: %s: %v\n", p.Name, status, programErr)
	}
	return nil
}
