package app

import (
	"bufio"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lexc/internal/config"
	"github.com/specialistvlad/lexc/internal/validator"
)

// writeRejection prints a rejected program as an HCL diagnostic. The subject
// is moved onto the offending line of the program's source so the writer can
// show it.
func writeRejection(w io.Writer, p *config.Program, rej *validator.RejectionError) error {
	filename := p.SourceFile
	if filename == "" {
		filename = p.Name
	}
	diag := rej.Diagnostic(filename)

	var files map[string]*hcl.File
	if source, err := p.ReadSource(); err == nil {
		src := []byte(source)
		if r, ok := sourceLine(filename, src, rej.Line); ok {
			diag.Subject = &r
			files = map[string]*hcl.File{filename: {Bytes: src}}
		}
	}

	return hcl.NewDiagnosticTextWriter(w, files, 0, false).WriteDiagnostic(diag)
}

// sourceLine returns the range of the 1-based line in src.
func sourceLine(filename string, src []byte, line int) (hcl.Range, bool) {
	sc := hcl.NewRangeScanner(src, filename, bufio.ScanLines)
	for sc.Scan() {
		if r := sc.Range(); r.Start.Line == line {
			return r, true
		}
	}
	return hcl.Range{}, false
}
