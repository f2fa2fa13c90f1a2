// Package lexer rewrites raw source text into a lexeme string.
//
// Lexing is plain substring substitution over the keyword table, applied in
// table order. There is no tokenizer and no word-boundary matching, so a
// keyword that appears inside a variable name is rewritten too: "undefined"
// becomes "un#ined". Such programs are rejected later by the validator.
package lexer

import (
	"strings"

	"github.com/specialistvlad/lexc/internal/keywords"
)

// Lex replaces every occurrence of each keyword in source with its lexeme.
// It never fails; malformed input is rejected downstream.
func Lex(source string, tbl *keywords.Table) string {
	out := source
	for _, m := range tbl.Keywords() {
		out = strings.ReplaceAll(out, m.From, m.To)
	}
	return out
}

// Unlex applies the keyword table in reverse, turning lexemes back into their
// keywords. It is the inverse of Lex for sources that contain no lexeme
// characters of their own.
func Unlex(lexemes string, tbl *keywords.Table) string {
	kws := tbl.Keywords()
	out := lexemes
	for i := len(kws) - 1; i >= 0; i-- {
		out = strings.ReplaceAll(out, kws[i].To, kws[i].From)
	}
	return out
}
