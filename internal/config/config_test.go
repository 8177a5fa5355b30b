package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.hcl")
	src := `
conversion "keyword" {
  regex    = "(cc|a)c*"
  alphabet = "abcd"
}

conversion "binary" {
  regex    = "(0|1)*1"
  alphabet = "01"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Conversions, 2)
	assert.Equal(t, "keyword", f.Conversions[0].Name)
	assert.Equal(t, "(cc|a)c*", f.Conversions[0].Regex)
	assert.Equal(t, "abcd", f.Conversions[0].Alphabet)
	assert.Equal(t, "binary", f.Conversions[1].Name)
	assert.Equal(t, "01", f.Conversions[1].Alphabet)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

func TestParseEmptyFile(t *testing.T) {
	f, err := Parse("empty.hcl", nil)
	require.NoError(t, err)
	assert.Empty(t, f.Conversions)
}

func TestParseMissingAttribute(t *testing.T) {
	_, err := Parse("bad.hcl", []byte(`
conversion "keyword" {
  regex = "a*"
}
`))
	assert.Error(t, err)
}

func TestParseDuplicateLabel(t *testing.T) {
	_, err := Parse("dup.hcl", []byte(`
conversion "same" {
  regex    = "a"
  alphabet = "a"
}

conversion "same" {
  regex    = "b"
  alphabet = "b"
}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParseEmptyLabel(t *testing.T) {
	_, err := Parse("empty_label.hcl", []byte(`
conversion "" {
  regex    = "a"
  alphabet = "a"
}
`))
	assert.Error(t, err)
}

func TestParseRejectsUnknownSyntax(t *testing.T) {
	_, err := Parse("garbage.hcl", []byte(`conversion { not hcl`))
	assert.Error(t, err)
}
