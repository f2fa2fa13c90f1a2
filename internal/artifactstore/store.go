package artifactstore

import (
	"context"
	"slices"
	"sync"
)

// Status is the lifecycle state of one program within a run.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompiled
	StatusRejected
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCompiled:
		return "compiled"
	case StatusRejected:
		return "rejected"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "pending"
	}
}

// Store is the interface for recording per-program results.
type Store interface {
	SetStatus(ctx context.Context, program string, status Status) error
	GetStatus(ctx context.Context, program string) (Status, error)
	SetOutput(ctx context.Context, program string, code string) error
	GetOutput(ctx context.Context, program string) (string, bool, error)
	SetError(ctx context.Context, program string, programErr error) error
	GetError(ctx context.Context, program string) (error, error)
	// Names returns every program with a recorded status, sorted.
	Names(ctx context.Context) ([]string, error)
}

// MemoryStore is an in-memory Store backed by sync.Map.
type MemoryStore struct {
	states  sync.Map // program name -> Status
	outputs sync.Map // program name -> string
	errors  sync.Map // program name -> error
}

// New creates a new, empty in-memory store.
func New() *MemoryStore {
	return &MemoryStore{}
}

// SetStatus updates the status of a program.
func (s *MemoryStore) SetStatus(ctx context.Context, program string, status Status) error {
	s.states.Store(program, status)
	return nil
}

// GetStatus returns the status of a program, or StatusPending if none was set.
func (s *MemoryStore) GetStatus(ctx context.Context, program string) (Status, error) {
	status, ok := s.states.Load(program)
	if !ok {
		return StatusPending, nil
	}
	return status.(Status), nil
}

// SetOutput records the generated code of a program.
func (s *MemoryStore) SetOutput(ctx context.Context, program string, code string) error {
	s.outputs.Store(program, code)
	return nil
}

// GetOutput returns the generated code of a program. The boolean is false if
// no code was recorded.
func (s *MemoryStore) GetOutput(ctx context.Context, program string) (string, bool, error) {
	code, ok := s.outputs.Load(program)
	if !ok {
		return "", false, nil
	}
	return code.(string), true, nil
}

// SetError records why a program failed.
func (s *MemoryStore) SetError(ctx context.Context, program string, programErr error) error {
	s.errors.Store(program, programErr)
	return nil
}

// GetError returns the recorded failure of a program, or nil.
func (s *MemoryStore) GetError(ctx context.Context, program string) (error, error) {
	err, ok := s.errors.Load(program)
	if !ok {
		return nil, nil
	}
	return err.(error), nil
}

// Names returns every program with a recorded status, sorted.
func (s *MemoryStore) Names(ctx context.Context) ([]string, error) {
	var names []string
	s.states.Range(func(key, _ any) bool {
		names = append(names, key.(string))
		return true
	})
	slices.Sort(names)
	return names, nil
}
