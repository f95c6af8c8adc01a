package fehtpl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/loopcontext/fehtpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	o := mustUnmarshal(t, `{"Alm": {"name": "アルム"}}`)

	for _, atomic := range []bool{false, true} {
		name := "direct"
		if atomic {
			name = "atomic"
		}
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "lang", "ja.json")

			require.NoError(t, fehtpl.Save(path, o, fehtpl.SaveOptions{Atomic: atomic}))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "{\n    \"Alm\": {\n        \"name\": \"アルム\"\n    }\n}\n", string(content))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o644), info.Mode().Perm()&0o644)

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary files left behind")

			loaded, err := fehtpl.LoadFile(path)
			require.NoError(t, err)
			assert.True(t, loaded.Equal(o))
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content than the new one"), 0o644))

	require.NoError(t, fehtpl.Save(path, fehtpl.NewObject(), fehtpl.SaveOptions{Indent: "\t", Atomic: true}))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(content))
}

func TestSaveIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, fehtpl.Save(path, mustUnmarshal(t, `{"a": {"b": ""}}`), fehtpl.SaveOptions{Indent: "\t"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": {\n\t\t\"b\": \"\"\n\t}\n}\n", string(content))
}

func TestSaveIntoFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, nil, 0o644))

	err := fehtpl.Save(filepath.Join(parent, "template.json"), fehtpl.NewObject(), fehtpl.SaveOptions{})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	_, err := fehtpl.LoadFile(filepath.Join(dir, "missing.json"))
	var missing *fehtpl.MissingFileError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, filepath.Join(dir, "missing.json"), missing.Path)

	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": [}`), 0o644))
	_, err = fehtpl.LoadFile(path)
	var malformed *fehtpl.MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, path, malformed.Path)
}
