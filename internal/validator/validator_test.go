package validator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lexc/internal/keywords"
	"github.com/specialistvlad/lexc/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexed(src string) string {
	return lexer.Lex(src, keywords.Default())
}

func TestCheck(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		source   string
		wantErr  bool
		wantKind Kind
		wantLine int
		wantText string
	}{
		{
			name:   "sample program",
			source: "def x = 2\ndef y = 3\ny = y ^ x + 1\nout x + y",
		},
		{
			name:   "single declaration",
			source: "def total = 100",
		},
		{
			name:   "use before declaring line is accepted",
			source: "x = x + 1\ndef x = 2",
		},
		{
			name:   "operator order is not checked",
			source: "def x = 1\nout + x x",
		},
		{
			name:   "repeated assign counts as operator",
			source: "def x = 1\nx = x = 1",
		},
		{
			name:   "unknown tokens are ignored by operation counting",
			source: "def x = 1\nout x $",
		},
		{
			name:     "undeclared variable in output",
			source:   "out z",
			wantErr:  true,
			wantKind: UndeclaredVariable,
			wantLine: 1,
			wantText: "z",
		},
		{
			name:     "undeclared variable in well-formed assignment",
			source:   "def x = 2\nx = x + y",
			wantErr:  true,
			wantKind: UndeclaredVariable,
			wantLine: 2,
			wantText: "y",
		},
		{
			name:     "extra assign token in declaration",
			source:   "def x == 2",
			wantErr:  true,
			wantKind: MalformedDeclaration,
			wantLine: 1,
			wantText: "# x == 2",
		},
		{
			name:     "declaration with trailing token",
			source:   "def x = 2 3",
			wantErr:  true,
			wantKind: MalformedDeclaration,
			wantLine: 1,
			wantText: "# x = 2 3",
		},
		{
			name:     "truncated declaration",
			source:   "def x",
			wantErr:  true,
			wantKind: MalformedDeclaration,
			wantLine: 1,
			wantText: "# x",
		},
		{
			name:     "declaration of a number",
			source:   "def 1 = 2",
			wantErr:  true,
			wantKind: MalformedDeclaration,
			wantLine: 1,
			wantText: "# 1 = 2",
		},
		{
			name:     "declaration with variable initializer",
			source:   "def x = 1\ndef y = x",
			wantErr:  true,
			wantKind: MalformedDeclaration,
			wantLine: 2,
			wantText: "# y = x",
		},
		{
			name:     "dangling operator in output",
			source:   "def x = 1\nout x +",
			wantErr:  true,
			wantKind: MalformedOutput,
			wantLine: 2,
			wantText: "> x +",
		},
		{
			name:     "output lexeme not first",
			source:   "def x = 1\nx > 1",
			wantErr:  true,
			wantKind: MalformedOutput,
			wantLine: 2,
			wantText: "x > 1",
		},
		{
			name:     "empty output",
			source:   "out",
			wantErr:  true,
			wantKind: MalformedOutput,
			wantLine: 1,
			wantText: ">",
		},
		{
			name:     "assignment to a number",
			source:   "def x = 1\n1 = x",
			wantErr:  true,
			wantKind: MalformedAssignment,
			wantLine: 2,
			wantText: "1 = x",
		},
		{
			name:     "assignment without value",
			source:   "def x = 1\nx =",
			wantErr:  true,
			wantKind: MalformedAssignment,
			wantLine: 2,
			wantText: "x =",
		},
		{
			name:     "bare expression",
			source:   "def x = 1\nx + 1",
			wantErr:  true,
			wantKind: UnrecognizedLine,
			wantLine: 2,
			wantText: "x + 1",
		},
		{
			name:     "trailing newline leaves an empty line",
			source:   "def x = 1\n",
			wantErr:  true,
			wantKind: UnrecognizedLine,
			wantLine: 2,
			wantText: "",
		},
		{
			name:     "empty program",
			source:   "",
			wantErr:  true,
			wantKind: UnrecognizedLine,
			wantLine: 1,
			wantText: "",
		},
		{
			name:     "shape errors are reported before undeclared names",
			source:   "out z\nfoo",
			wantErr:  true,
			wantKind: UnrecognizedLine,
			wantLine: 2,
			wantText: "foo",
		},
		{
			name:     "keyword inside a name breaks the declaration",
			source:   "def undefined = 1",
			wantErr:  true,
			wantKind: MalformedDeclaration,
			wantLine: 1,
			wantText: "# un#ined = 1",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lexemes := lexed(tc.source)

			err := Check(lexemes, keywords.Default())

			assert.Equal(t, err == nil, Validate(lexemes, keywords.Default()), "Validate must agree with Check")
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrRejectedProgram))

			var rejection *RejectionError
			require.True(t, errors.As(err, &rejection))
			assert.Equal(t, tc.wantKind, rejection.Kind)
			assert.Equal(t, tc.wantLine, rejection.Line)
			assert.Equal(t, tc.wantText, rejection.Text)
		})
	}
}

func TestValidate_DeclarationsAreAccepted(t *testing.T) {
	t.Parallel()

	names := []string{"a", "x", "Total", "abcXYZ"}
	values := []string{"0", "7", "42", "1234567890"}

	for _, name := range names {
		for _, value := range values {
			src := fmt.Sprintf("def %s = %s", name, value)
			assert.True(t, Validate(lexed(src), keywords.Default()), "source %q", src)
		}
	}
}

func TestValidate_UndeclaredAlwaysRejected(t *testing.T) {
	t.Parallel()

	sources := []string{
		"def x = 1\nout q",
		"def x = 1\nx = q",
		"def x = 1\nq = x",
		"def x = 1\nx = x + 1\nout x + q",
	}
	for _, src := range sources {
		err := Check(lexed(src), keywords.Default())
		var rejection *RejectionError
		require.True(t, errors.As(err, &rejection), "source %q", src)
		assert.Equal(t, UndeclaredVariable, rejection.Kind)
		assert.Equal(t, "q", rejection.Text)
	}
}

func TestIsValidOperation(t *testing.T) {
	t.Parallel()
	tbl := keywords.Default()

	testCases := []struct {
		tokens []string
		valid  bool
	}{
		{[]string{"x"}, true},
		{[]string{"1"}, true},
		{[]string{"x", "+", "1"}, true},
		{[]string{"y", "=", "y", "^", "x", "+", "1"}, true},
		{[]string{">", "x", "+", "y"}, true},
		// Counts match, order does not.
		{[]string{"+", "x", "x"}, true},
		{[]string{"x", "x", "+"}, true},
		{[]string{}, false},
		{[]string{">"}, false},
		{[]string{"+"}, false},
		{[]string{"x", "+"}, false},
		{[]string{"x", "y"}, false},
		{[]string{"x", "+", "-", "y"}, false},
		{[]string{"x1", "+", "y"}, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.valid, IsValidOperation(tc.tokens, tbl), "tokens %q", tc.tokens)
	}
}

func TestRejectionError_Message(t *testing.T) {
	t.Parallel()

	lineErr := &RejectionError{Line: 3, Kind: MalformedOutput, Text: "> x +"}
	assert.Equal(t, `program rejected: line 3: malformed output "> x +"`, lineErr.Error())

	programErr := &RejectionError{Kind: UndeclaredVariable, Text: "z"}
	assert.Equal(t, `program rejected: undeclared variable "z"`, programErr.Error())
}

func TestCheck_Subject(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		lexemes string
		want    hcl.Range
	}{
		{
			name:    "whole offending line",
			lexemes: "# x = 1;> x +",
			want: hcl.Range{
				Start: hcl.Pos{Line: 2, Column: 1, Byte: 8},
				End:   hcl.Pos{Line: 2, Column: 6, Byte: 13},
			},
		},
		{
			name:    "undeclared variable token",
			lexemes: "# x = 1;x = x + y",
			want: hcl.Range{
				Start: hcl.Pos{Line: 2, Column: 9, Byte: 16},
				End:   hcl.Pos{Line: 2, Column: 10, Byte: 17},
			},
		},
		{
			name:    "empty last line",
			lexemes: "# x = 1;",
			want: hcl.Range{
				Start: hcl.Pos{Line: 2, Column: 1, Byte: 8},
				End:   hcl.Pos{Line: 2, Column: 1, Byte: 8},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var rejection *RejectionError
			require.True(t, errors.As(Check(tc.lexemes, keywords.Default()), &rejection))
			assert.Equal(t, tc.want, rejection.Subject)
			assert.Equal(t, tc.want.Start.Line, rejection.Line)
		})
	}
}

func TestRejectionError_Diagnostic(t *testing.T) {
	t.Parallel()

	rejection := &RejectionError{
		Line: 2,
		Kind: UndeclaredVariable,
		Text: "y",
		Subject: hcl.Range{
			Start: hcl.Pos{Line: 2, Column: 9, Byte: 16},
			End:   hcl.Pos{Line: 2, Column: 10, Byte: 17},
		},
	}

	diag := rejection.Diagnostic("prog.lexc")

	assert.Equal(t, hcl.DiagError, diag.Severity)
	assert.Equal(t, "Undeclared variable", diag.Summary)
	assert.Contains(t, diag.Detail, `"y"`)
	require.NotNil(t, diag.Subject)
	assert.Equal(t, "prog.lexc", diag.Subject.Filename)
	assert.Equal(t, rejection.Subject.Start, diag.Subject.Start)
	assert.Empty(t, rejection.Subject.Filename, "the rejection itself is not modified")
}
