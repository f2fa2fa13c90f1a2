// Package validator decides whether a lexeme string is a well-formed program.
//
// Validation runs in two steps. First every logical line (a segment between
// separator lexemes) must have one of three shapes: a declaration, an
// assignment or an output statement. Then every variable name used anywhere
// in the program must be declared somewhere in the program. Declarations are
// program-wide, so a use before the declaring line is accepted.
//
// Expression shape is checked by counting only: a token sequence is a valid
// operation when it holds one more operand than operators. Token order is not
// inspected, so a line such as "> + x x" is accepted.
package validator
