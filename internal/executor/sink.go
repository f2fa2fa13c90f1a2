package executor

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/specialistvlad/lexc/internal/config"
	"github.com/specialistvlad/lexc/internal/ctxlog"
	"github.com/specialistvlad/lexc/internal/fsutil"
)

// Sink receives the generated code of a compiled program.
type Sink interface {
	Emit(ctx context.Context, program *config.Program, code string) error
}

// FileSink writes each program's code to its configured output path.
type FileSink struct{}

// Emit writes code to program.Output.
func (FileSink) Emit(ctx context.Context, program *config.Program, code string) error {
	if program.Output == "" {
		return fmt.Errorf("program %q has no output path", program.Name)
	}
	if err := fsutil.WriteFile(program.Output, []byte(code)); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Artifact written.", "path", program.Output, "bytes", len(code))
	return nil
}

// WriterSink prints generated code to a writer. Concurrent emits are
// serialised so programs never interleave.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes code followed by a newline.
func (s *WriterSink) Emit(ctx context.Context, program *config.Program, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, code)
	return err
}
