// Package codegen turns a validated lexeme string into a C++ program.
package codegen

import (
	"strings"

	"github.com/specialistvlad/lexc/internal/keywords"
)

// Generate translates lexemes into C++ source. The input must already have
// passed validation; the result for any other input is unspecified.
func Generate(lexemes string, tbl *keywords.Table) string {
	body := markOutputEnds(lexemes)
	for _, m := range tbl.Targets() {
		body = strings.ReplaceAll(body, m.From, m.To)
	}

	var sb strings.Builder
	sb.Grow(len(Preamble) + len(body) + len(Postamble) + 2)
	sb.WriteString(Preamble)
	sb.WriteByte(' ')
	sb.WriteString(body)
	sb.WriteByte(' ')
	sb.WriteString(Postamble)
	return sb.String()
}

// markOutputEnds appends the end-of-output marker to every output statement
// so the printed value is followed by endl.
func markOutputEnds(lexemes string) string {
	lines := strings.Split(lexemes, keywords.Separator)
	for i, line := range lines {
		if strings.HasPrefix(line, keywords.Output) {
			lines[i] = line + " " + keywords.EndOutput
		}
	}
	return strings.Join(lines, keywords.Separator)
}
