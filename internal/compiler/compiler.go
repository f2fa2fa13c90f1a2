// Package compiler runs the full translation pipeline for one program:
// lexing, validation as a gate, and code generation.
package compiler

import (
	"context"
	"fmt"

	"github.com/specialistvlad/lexc/internal/codegen"
	"github.com/specialistvlad/lexc/internal/ctxlog"
	"github.com/specialistvlad/lexc/internal/keywords"
	"github.com/specialistvlad/lexc/internal/lexer"
	"github.com/specialistvlad/lexc/internal/validator"
)

// Result is the outcome of a successful compilation.
type Result struct {
	Name     string
	Lexemes  string
	Declared []string
	Code     string
}

// Compiler translates programs using a fixed keyword table.
type Compiler struct {
	tbl *keywords.Table
}

// New returns a Compiler for tbl. A nil table selects keywords.Default().
func New(tbl *keywords.Table) *Compiler {
	if tbl == nil {
		tbl = keywords.Default()
	}
	return &Compiler{tbl: tbl}
}

// Compile lexes, validates and generates source. A program that fails
// validation yields an error wrapping validator.ErrRejectedProgram and no
// code is generated for it. Callers scope the logger in ctx to the program.
func (c *Compiler) Compile(ctx context.Context, name, source string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	lexemes, err := c.check(ctx, name, source)
	if err != nil {
		return nil, err
	}

	code := codegen.Generate(lexemes, c.tbl)
	logger.Debug("Code generated.", "bytes", len(code))

	return &Result{
		Name:     name,
		Lexemes:  lexemes,
		Declared: validator.DeclaredVariables(lexemes).Names(),
		Code:     code,
	}, nil
}

// Validate lexes and validates source without generating code.
func (c *Compiler) Validate(ctx context.Context, name, source string) error {
	_, err := c.check(ctx, name, source)
	return err
}

func (c *Compiler) check(ctx context.Context, name, source string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	lexemes := lexer.Lex(source, c.tbl)
	logger.Debug("Source lexed.", "lexemes", lexemes)

	if err := validator.Check(lexemes, c.tbl); err != nil {
		logger.Debug("Program rejected.", "error", err)
		return "", fmt.Errorf("program %q: %w", name, err)
	}
	logger.Debug("Program validated.")
	return lexemes, nil
}
