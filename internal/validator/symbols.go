package validator

import (
	"strings"

	"github.com/specialistvlad/lexc/internal/keywords"
)

// SymbolTable is the set of declared variable names, in first-seen order.
type SymbolTable struct {
	names map[string]struct{}
	order []string
}

func newSymbolTable(tokens []string) *SymbolTable {
	st := &SymbolTable{names: make(map[string]struct{})}
	for i, tok := range tokens {
		if tok != keywords.Declare || i+1 >= len(tokens) {
			continue
		}
		name := tokens[i+1]
		if _, ok := st.names[name]; ok {
			continue
		}
		st.names[name] = struct{}{}
		st.order = append(st.order, name)
	}
	return st
}

// Declared reports whether name follows a declare lexeme anywhere in the
// program.
func (st *SymbolTable) Declared(name string) bool {
	_, ok := st.names[name]
	return ok
}

// Names returns the declared names in the order they first appear.
func (st *SymbolTable) Names() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

// Len returns the number of distinct declared names.
func (st *SymbolTable) Len() int {
	return len(st.order)
}

// DeclaredVariables returns the symbol table of a lexeme string. The string
// does not have to be valid.
func DeclaredVariables(lexemes string) *SymbolTable {
	return newSymbolTable(programTokens(lexemes))
}

// programTokens flattens the whole program into one token sequence by turning
// separators into spaces.
func programTokens(lexemes string) []string {
	return strings.Split(strings.ReplaceAll(lexemes, keywords.Separator, " "), " ")
}
