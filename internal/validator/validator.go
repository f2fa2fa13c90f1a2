package validator

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lexc/internal/keywords"
)

// Validate reports whether lexemes is an acceptable program.
func Validate(lexemes string, tbl *keywords.Table) bool {
	return Check(lexemes, tbl) == nil
}

// Check validates lexemes and returns a *RejectionError describing the first
// violation, or nil. Line shapes are checked first, top to bottom; the
// declaration check only runs once every line has a valid shape.
func Check(lexemes string, tbl *keywords.Table) error {
	lines := splitLines(lexemes)
	for _, l := range lines {
		if kind, ok := checkLine(l.words(), tbl); !ok {
			return &RejectionError{
				Line:    l.start.Line,
				Kind:    kind,
				Text:    l.text,
				Subject: l.span(0, len(l.text)),
			}
		}
	}

	symbols := DeclaredVariables(lexemes)
	for _, l := range lines {
		at := 0
		for _, word := range l.words() {
			if tbl.Classify(word) == keywords.KindVariable && !symbols.Declared(word) {
				return &RejectionError{
					Line:    l.start.Line,
					Kind:    UndeclaredVariable,
					Text:    word,
					Subject: l.span(at, at+len(word)),
				}
			}
			at += len(word) + 1
		}
	}
	return nil
}

// checkLine matches one logical line against the three statement shapes. The
// returned Kind is only meaningful when ok is false.
func checkLine(words []string, tbl *keywords.Table) (Kind, bool) {
	kinds := make([]keywords.Kind, len(words))
	for i, w := range words {
		kinds[i] = tbl.Classify(w)
	}

	switch {
	case slices.Contains(kinds, keywords.KindDeclare):
		// # name = digits
		ok := slices.Equal(kinds, []keywords.Kind{
			keywords.KindDeclare,
			keywords.KindVariable,
			keywords.KindAssign,
			keywords.KindNumber,
		})
		return MalformedDeclaration, ok

	case slices.Contains(kinds, keywords.KindAssign):
		// name = operand op operand ...
		ok := kinds[0] == keywords.KindVariable && IsValidOperation(words, tbl)
		return MalformedAssignment, ok

	case slices.Contains(kinds, keywords.KindOutput):
		// > operand op operand ...
		ok := kinds[0] == keywords.KindOutput && IsValidOperation(words, tbl)
		return MalformedOutput, ok
	}
	return UnrecognizedLine, false
}

// IsValidOperation reports whether tokens hold at least one operand and
// exactly one more operand than operators. The assign lexeme counts as an
// operator. Tokens that are neither are ignored, and order is not checked.
func IsValidOperation(tokens []string, tbl *keywords.Table) bool {
	var operators, operands int
	for _, tok := range tokens {
		if tbl.IsOperator(tok) {
			operators++
		} else if tbl.Classify(tok).IsOperand() {
			operands++
		}
	}
	return operands > 0 && operators+1 == operands
}

// logicalLine is one separator-delimited segment of a lexeme string.
type logicalLine struct {
	text  string
	start hcl.Pos
}

func splitLines(lexemes string) []logicalLine {
	var lines []logicalLine
	offset := 0
	for i, text := range strings.Split(lexemes, keywords.Separator) {
		lines = append(lines, logicalLine{
			text:  text,
			start: hcl.Pos{Line: i + 1, Column: 1, Byte: offset},
		})
		offset += len(text) + len(keywords.Separator)
	}
	return lines
}

func (l logicalLine) words() []string {
	return strings.Split(l.text, " ")
}

// span returns the range of l.text[from:to].
func (l logicalLine) span(from, to int) hcl.Range {
	return hcl.Range{
		Start: hcl.Pos{
			Line:   l.start.Line,
			Column: 1 + utf8.RuneCountInString(l.text[:from]),
			Byte:   l.start.Byte + from,
		},
		End: hcl.Pos{
			Line:   l.start.Line,
			Column: 1 + utf8.RuneCountInString(l.text[:to]),
			Byte:   l.start.Byte + to,
		},
	}
}
