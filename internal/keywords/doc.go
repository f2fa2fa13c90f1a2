// Package keywords holds the fixed tables that drive every stage of the
// compiler: the source keyword to lexeme substitution used by the lexer, the
// lexeme to C++ substitution used by the code generator, and the operator set
// and token classes used by the validator.
//
// A Table is built once and never mutated afterwards. Stages receive it by
// pointer and only read from it.
package keywords
