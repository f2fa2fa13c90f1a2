package validator

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ErrRejectedProgram is wrapped by every validation failure. Callers that only
// need accept/reject should test for it with errors.Is.
var ErrRejectedProgram = errors.New("program rejected")

// Kind names the rule a rejected program broke.
type Kind int

const (
	UnrecognizedLine Kind = iota
	MalformedDeclaration
	MalformedAssignment
	MalformedOutput
	UndeclaredVariable
)

func (k Kind) String() string {
	switch k {
	case MalformedDeclaration:
		return "malformed declaration"
	case MalformedAssignment:
		return "malformed assignment"
	case MalformedOutput:
		return "malformed output"
	case UndeclaredVariable:
		return "undeclared variable"
	default:
		return "unrecognized line"
	}
}

// RejectionError describes why a program was rejected.
type RejectionError struct {
	// Line is the 1-based index of the offending logical line.
	Line int
	Kind Kind
	// Text is the offending logical line, or the variable name for
	// UndeclaredVariable.
	Text string
	// Subject locates Text within the lexeme string. Filename is empty.
	Subject hcl.Range
}

func (e *RejectionError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s %q", ErrRejectedProgram, e.Kind, e.Text)
	}
	return fmt.Sprintf("%s: line %d: %s %q", ErrRejectedProgram, e.Line, e.Kind, e.Text)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejectedProgram
}

// Diagnostic converts the rejection into an HCL diagnostic whose subject is
// attributed to filename.
func (e *RejectionError) Diagnostic(filename string) *hcl.Diagnostic {
	subject := e.Subject
	subject.Filename = filename

	var summary, detail string
	switch e.Kind {
	case MalformedDeclaration:
		summary = "Malformed declaration"
		detail = "A declaration must have the form \"def NAME = DIGITS\"."
	case MalformedAssignment:
		summary = "Malformed assignment"
		detail = "An assignment must start with a variable and hold one more operand than operators."
	case MalformedOutput:
		summary = "Malformed output statement"
		detail = "An output statement must start with out and hold one more operand than operators."
	case UndeclaredVariable:
		summary = "Undeclared variable"
		detail = fmt.Sprintf("Variable %q is used but never declared with def.", e.Text)
	default:
		summary = "Unrecognized statement"
		detail = "Each line must be a declaration, an assignment or an output statement."
	}

	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  &subject,
	}
}
