package app

import (
	"errors"
	"fmt"
)

// DefaultOutputPath is where single-program runs write generated code.
const DefaultOutputPath = "out.cpp"

// Config holds all the necessary configuration for an App instance to run.
// Exactly one of ProjectPath, SourcePath or UseSample selects the input.
type Config struct {
	ProjectPath string // .hcl file or directory
	SourcePath  string // single program file
	UseSample   bool   // compile SampleProgram

	OutputPath string // single-program runs only
	CheckOnly  bool
	Stdout     bool

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	inputs := 0
	for _, set := range []bool{cfg.ProjectPath != "", cfg.SourcePath != "", cfg.UseSample} {
		if set {
			inputs++
		}
	}
	switch {
	case inputs == 0:
		return nil, errors.New("one of a project path, a source path or the sample program is required")
	case inputs > 1:
		return nil, errors.New("a project path, a source path and the sample program are mutually exclusive")
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	return &cfg, nil
}
