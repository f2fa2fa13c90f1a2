package keywords

import "regexp"

// Kind is the syntactic class of a single token.
type Kind int

const (
	KindOther Kind = iota
	KindDeclare
	KindAssign
	KindOutput
	KindOperator
	KindVariable
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindDeclare:
		return "declare"
	case KindAssign:
		return "assign"
	case KindOutput:
		return "output"
	case KindOperator:
		return "operator"
	case KindVariable:
		return "variable"
	case KindNumber:
		return "number"
	default:
		return "other"
	}
}

// IsOperand reports whether k is a variable or a numeric literal.
func (k Kind) IsOperand() bool {
	return k == KindVariable || k == KindNumber
}

var (
	variableRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
	numberRegex   = regexp.MustCompile(`^[0-9]+$`)
)

// IsVariableName reports whether tok is an alphabetic-only name.
func IsVariableName(tok string) bool {
	return variableRegex.MatchString(tok)
}

// IsNumber reports whether tok is a digit-only literal.
func IsNumber(tok string) bool {
	return numberRegex.MatchString(tok)
}


// Classify returns the class of tok. The assign lexeme classifies as
// KindAssign even though it is also in the operator set; callers that count
// operators should use IsOperator.
func (t *Table) Classify(tok string) Kind {
	switch {
	case tok == Declare:
		return KindDeclare
	case tok == Assign:
		return KindAssign
	case tok == Output:
		return KindOutput
	case t.IsOperator(tok):
		return KindOperator
	case IsVariableName(tok):
		return KindVariable
	case IsNumber(tok):
		return KindNumber
	default:
		return KindOther
	}
}
