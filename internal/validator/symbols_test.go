package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclaredVariables(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		lexemes  string
		expected []string
	}{
		{
			name:     "sample program",
			lexemes:  "# x = 2;# y = 3;y = y ^ x + 1;> x + y",
			expected: []string{"x", "y"},
		},
		{
			name:     "redeclaration is recorded once",
			lexemes:  "# x = 2;# y = 3;# x = 4",
			expected: []string{"x", "y"},
		},
		{
			name:     "declare lexeme as last token",
			lexemes:  "# x = 2;#",
			expected: []string{"x"},
		},
		{
			name:     "no declarations",
			lexemes:  "> x",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			st := DeclaredVariables(tc.lexemes)
			assert.Equal(t, tc.expected, st.Names())
			assert.Equal(t, len(tc.expected), st.Len())
			for _, name := range tc.expected {
				assert.True(t, st.Declared(name))
			}
			assert.False(t, st.Declared("nope"))
		})
	}
}
