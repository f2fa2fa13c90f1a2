// Package executor compiles every program of a project model on a pool of
// concurrent workers, records the outcome of each in an artifact store and
// hands generated code to a Sink.
package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/specialistvlad/lexc/internal/artifactstore"
	"github.com/specialistvlad/lexc/internal/compiler"
	"github.com/specialistvlad/lexc/internal/config"
	"github.com/specialistvlad/lexc/internal/ctxlog"
)

// Options tunes a run.
type Options struct {
	// Workers is the number of concurrent workers. Values below 1 mean 1.
	Workers int
	// ValidateOnly stops each program after validation; nothing is generated
	// or emitted.
	ValidateOnly bool
}

// Executor orchestrates the compilation of a set of programs.
type Executor struct {
	programs []*config.Program
	compiler *compiler.Compiler
	store    artifactstore.Store
	sink     Sink
	opts     Options
}

// New creates an Executor. sink may be nil when opts.ValidateOnly is set.
func New(programs []*config.Program, c *compiler.Compiler, store artifactstore.Store, sink Sink, opts Options) *Executor {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Executor{
		programs: programs,
		compiler: c,
		store:    store,
		sink:     sink,
		opts:     opts,
	}
}

// Run compiles every program and blocks until all workers finish. A rejected
// or failed program does not stop the others. The returned error joins the
// failure of every program, in model order.
func (e *Executor) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if !e.opts.ValidateOnly && e.sink == nil {
		return errors.New("executor: a sink is required unless running validate-only")
	}

	for _, p := range e.programs {
		if err := e.store.SetStatus(ctx, p.Name, artifactstore.StatusPending); err != nil {
			return fmt.Errorf("failed to initialise status of %q: %w", p.Name, err)
		}
	}

	workers := min(e.opts.Workers, len(e.programs))
	logger.Debug("Executor starting.", "programs", len(e.programs), "workers", workers)

	readyChan := make(chan *config.Program)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 1; i <= workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			e.worker(ctx, readyChan, workerID)
		}(i)
	}

	for _, p := range e.programs {
		readyChan <- p
	}
	close(readyChan)
	wg.Wait()

	var errs []error
	for _, p := range e.programs {
		programErr, err := e.store.GetError(ctx, p.Name)
		if err != nil {
			return err
		}
		if programErr != nil {
			errs = append(errs, programErr)
		}
	}
	logger.Debug("Executor finished.", "failures", len(errs))
	return errors.Join(errs...)
}
