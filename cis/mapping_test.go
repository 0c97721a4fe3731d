package cis_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diamondpixel/Chunkis/cis"
)

func TestParseMapping(t *testing.T) {
	m, err := cis.ParseMapping(bytes.NewReader([]byte(`{"stone": 1, "dirt": 2, "oak_log": 300}`)))
	require.NoError(t, err)
	require.Len(t, m, 3)

	name, ok := m.Name(1)
	require.True(t, ok)
	assert.Equal(t, "stone", name)
	name, ok = m.Name(300)
	require.True(t, ok)
	assert.Equal(t, "oak_log", name)
	_, ok = m.Name(4)
	assert.False(t, ok)
}

func TestParseMappingUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"stone": 1}`)...)
	m, err := cis.ParseMapping(bytes.NewReader(input))
	require.NoError(t, err)
	name, ok := m.Name(1)
	require.True(t, ok)
	assert.Equal(t, "stone", name)
}

func TestParseMappingUTF16LE(t *testing.T) {
	text := `{"a": 7}`
	input := []byte{0xFF, 0xFE} // UTF-16LE BOM
	for _, r := range text {
		input = append(input, byte(r), 0)
	}
	m, err := cis.ParseMapping(bytes.NewReader(input))
	require.NoError(t, err)
	name, ok := m.Name(7)
	require.True(t, ok)
	assert.Equal(t, "a", name)
}

func TestParseMappingRejectsWideIDs(t *testing.T) {
	_, err := cis.ParseMapping(bytes.NewReader([]byte(`{"huge": 70000}`)))
	require.Error(t, err)
}

func TestParseMappingRejectsMalformedJSON(t *testing.T) {
	_, err := cis.ParseMapping(bytes.NewReader([]byte(`[1, 2, 3]`)))
	require.Error(t, err)
}

func TestLoadMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "global_ids.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"stone": 1}`), 0o644))

	m, err := cis.LoadMapping(path)
	require.NoError(t, err)
	name, ok := m.Name(1)
	require.True(t, ok)
	assert.Equal(t, "stone", name)

	_, err = cis.LoadMapping(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
