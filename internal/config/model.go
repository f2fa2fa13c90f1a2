package config

import (
	"fmt"
	"os"
)

// Model is the unified representation of a project.
type Model struct {
	Programs []*Program
}

// Program is one source program and the destination of its generated code.
type Program struct {
	Name string
	// Source holds inline program text. It is empty when SourceFile is set.
	Source string
	// SourceFile is the path to a file holding the program text.
	SourceFile string
	// Output is the path the generated code is written to.
	Output string
	// DefinedIn is the project file that declared the program, if any.
	DefinedIn string
}

// ReadSource returns the program text, reading SourceFile if needed.
func (p *Program) ReadSource() (string, error) {
	if p.SourceFile == "" {
		return p.Source, nil
	}
	data, err := os.ReadFile(p.SourceFile)
	if err != nil {
		return "", fmt.Errorf("failed to read source of program %q: %w", p.Name, err)
	}
	return string(data), nil
}

// Program returns the program with the given name, or nil.
func (m *Model) Program(name string) *Program {
	for _, p := range m.Programs {
		if p.Name == name {
			return p
		}
	}
	return nil
}
