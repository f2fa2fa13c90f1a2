package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/lexc/internal/artifactstore"
	"github.com/specialistvlad/lexc/internal/config"
	"github.com/specialistvlad/lexc/internal/ctxlog"
	"github.com/specialistvlad/lexc/internal/validator"
)

// worker is the processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, readyChan <-chan *config.Program, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for p := range readyChan {
		workerCtx := ctxlog.With(ctx, "workerID", workerID, "program", p.Name)
		workerLogger := ctxlog.FromContext(workerCtx)

		if ctx.Err() != nil {
			workerLogger.Debug("Context cancelled, skipping program.")
			e.finish(workerCtx, p.Name, artifactstore.StatusSkipped, fmt.Errorf("program %q skipped: %w", p.Name, ctx.Err()))
			continue
		}

		workerLogger.Debug("Worker picked up program.")
		if err := e.store.SetStatus(ctx, p.Name, artifactstore.StatusRunning); err != nil {
			workerLogger.Error("Failed to record program status.", "status", artifactstore.StatusRunning.String(), "error", err)
		}

		status, err := e.process(workerCtx, p)
		if err != nil {
			workerLogger.Warn("Program did not compile.", "status", status.String(), "error", err)
		} else {
			workerLogger.Info("Program processed.", "status", status.String())
		}
		e.finish(workerCtx, p.Name, status, err)
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

// process runs one program through the pipeline and returns its final status.
func (e *Executor) process(ctx context.Context, p *config.Program) (artifactstore.Status, error) {
	source, err := p.ReadSource()
	if err != nil {
		return artifactstore.StatusFailed, err
	}
	// A final newline must not turn into an empty, rejected last line.
	source = strings.TrimRight(source, "\r\n")

	if e.opts.ValidateOnly {
		if err := e.compiler.Validate(ctx, p.Name, source); err != nil {
			return statusFor(err), err
		}
		return artifactstore.StatusCompiled, nil
	}

	res, err := e.compiler.Compile(ctx, p.Name, source)
	if err != nil {
		return statusFor(err), err
	}
	if err := e.store.SetOutput(ctx, p.Name, res.Code); err != nil {
		return artifactstore.StatusFailed, fmt.Errorf("program %q: failed to store output: %w", p.Name, err)
	}

	if err := e.sink.Emit(ctx, p, res.Code); err != nil {
		return artifactstore.StatusFailed, fmt.Errorf("program %q: failed to emit: %w", p.Name, err)
	}
	return artifactstore.StatusCompiled, nil
}

// finish records the final outcome of a program. Store failures are logged
// because the worker has nobody to return them to.
func (e *Executor) finish(ctx context.Context, name string, status artifactstore.Status, err error) {
	logger := ctxlog.FromContext(ctx)
	if err != nil {
		if storeErr := e.store.SetError(ctx, name, err); storeErr != nil {
			logger.Error("Failed to record program error.", "error", storeErr, "program_error", err)
		}
	}
	if storeErr := e.store.SetStatus(ctx, name, status); storeErr != nil {
		logger.Error("Failed to record program status.", "status", status.String(), "error", storeErr)
	}
}

func statusFor(err error) artifactstore.Status {
	if errors.Is(err, validator.ErrRejectedProgram) {
		return artifactstore.StatusRejected
	}
	return artifactstore.StatusFailed
}
