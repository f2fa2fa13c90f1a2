package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgram_ReadSource(t *testing.T) {
	t.Parallel()

	inline := &Program{Name: "inline", Source: "def x = 1"}
	src, err := inline.ReadSource()
	require.NoError(t, err)
	assert.Equal(t, "def x = 1", src)

	path := filepath.Join(t.TempDir(), "prog.lexc")
	require.NoError(t, os.WriteFile(path, []byte("out x"), 0600))
	fromFile := &Program{Name: "file", SourceFile: path}
	src, err = fromFile.ReadSource()
	require.NoError(t, err)
	assert.Equal(t, "out x", src)

	missing := &Program{Name: "missing", SourceFile: filepath.Join(t.TempDir(), "nope.lexc")}
	_, err = missing.ReadSource()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `program "missing"`)
}

func TestModel_Program(t *testing.T) {
	t.Parallel()
	m := &Model{Programs: []*Program{{Name: "a"}, {Name: "b"}}}

	require.NotNil(t, m.Program("b"))
	assert.Equal(t, "b", m.Program("b").Name)
	assert.Nil(t, m.Program("c"))
}
