package keywords

import (
	"fmt"
	"slices"
	"sync"
)

// Lexemes produced by the lexer or consumed by the code generator.
const (
	Declare   = "#"
	Assign    = "="
	Separator = ";"
	Output    = ">"

	// EndOutput and Power are never produced by the lexer. They only appear in
	// the generation table.
	EndOutput = "|"
	Power     = "^"
)

// Mapping is a single textual substitution.
type Mapping struct {
	From string
	To   string
}

// Table is the immutable set of substitutions and token classes for one
// language definition.
type Table struct {
	keywords  []Mapping
	targets   []Mapping
	operators map[string]struct{}
}

// NewTable builds a Table. The keyword mapping must be injective: no two
// keywords may share a lexeme, and no lexeme or keyword may be empty.
func NewTable(keywords, targets []Mapping, operators []string) (*Table, error) {
	seenKeyword := make(map[string]struct{}, len(keywords))
	seenLexeme := make(map[string]string, len(keywords))
	for _, m := range keywords {
		if m.From == "" || m.To == "" {
			return nil, fmt.Errorf("keyword mapping %q -> %q has an empty side", m.From, m.To)
		}
		if _, dup := seenKeyword[m.From]; dup {
			return nil, fmt.Errorf("keyword %q is mapped more than once", m.From)
		}
		if other, dup := seenLexeme[m.To]; dup {
			return nil, fmt.Errorf("lexeme %q is shared by keywords %q and %q", m.To, other, m.From)
		}
		seenKeyword[m.From] = struct{}{}
		seenLexeme[m.To] = m.From
	}

	seenTarget := make(map[string]struct{}, len(targets))
	for _, m := range targets {
		if m.From == "" {
			return nil, fmt.Errorf("target mapping for %q has an empty lexeme", m.To)
		}
		if _, dup := seenTarget[m.From]; dup {
			return nil, fmt.Errorf("lexeme %q has more than one target", m.From)
		}
		seenTarget[m.From] = struct{}{}
	}

	ops := make(map[string]struct{}, len(operators))
	for _, op := range operators {
		ops[op] = struct{}{}
	}

	return &Table{
		keywords:  slices.Clone(keywords),
		targets:   slices.Clone(targets),
		operators: ops,
	}, nil
}

// Default returns the language definition shared by the whole process. It is
// built on first use and reused afterwards.
var Default = sync.OnceValue(func() *Table {
	t, err := NewTable(
		[]Mapping{
			{From: "def", To: Declare},
			{From: "=", To: Assign},
			{From: "\n", To: Separator},
			{From: "out", To: Output},
		},
		[]Mapping{
			{From: Declare, To: "Number"},
			{From: Assign, To: "="},
			{From: Separator, To: ";\n\t"},
			{From: Output, To: "cout <<"},
			{From: EndOutput, To: "<< endl"},
			{From: Power, To: "%"},
		},
		[]string{"+", "-", "/", "*", Power, Assign},
	)
	if err != nil {
		panic(fmt.Sprintf("keywords: invalid default table: %v", err))
	}
	return t
})

// Keywords returns the source keyword to lexeme substitutions in the order
// the lexer applies them.
func (t *Table) Keywords() []Mapping {
	return slices.Clone(t.keywords)
}

// Targets returns the lexeme to target text substitutions in the order the
// code generator applies them.
func (t *Table) Targets() []Mapping {
	return slices.Clone(t.targets)
}

// IsOperator reports whether tok belongs to the operator set. Note that the
// assign lexeme is also an operator.
func (t *Table) IsOperator(tok string) bool {
	_, ok := t.operators[tok]
	return ok
}

// Operators returns the operator set, sorted.
func (t *Table) Operators() []string {
	ops := make([]string, 0, len(t.operators))
	for op := range t.operators {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}
