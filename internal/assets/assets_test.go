package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Embedded(t *testing.T) {
	a, err := New(ModeEmbed, "")
	require.NoError(t, err)

	data, err := fs.ReadFile(a.FS(), "hero.js")
	require.NoError(t, err)
	assert.Contains(t, string(data), "heroVideo")
	assert.Contains(t, string(data), "soundToggle", "the mute preference is read from the swapped button")

	_, err = fs.Stat(a.FS(), "site.css")
	assert.NoError(t, err)
}

func TestNew_Disk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.js"), []byte("one"), 0o644))

	a, err := New(ModeDisk, dir)
	require.NoError(t, err)

	first := a.Path("hero.js")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.js"), []byte("two"), 0o644))
	assert.NotEqual(t, first, a.Path("hero.js"), "disk assets are re-hashed")
}

func TestNew_Errors(t *testing.T) {
	_, err := New("cdn", "")
	assert.Error(t, err)

	_, err = New(ModeDisk, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "site.css", []byte("body{}"), 0o644))
	a := FromFs(mem, true)

	p := a.Path("site.css")
	assert.True(t, strings.HasPrefix(p, "/static/site.css?v="), p)
	assert.Len(t, strings.TrimPrefix(p, "/static/site.css?v="), 10)

	// Cached hashes survive changes to the file.
	require.NoError(t, afero.WriteFile(mem, "site.css", []byte("html{}"), 0o644))
	assert.Equal(t, p, a.Path("site.css"))

	assert.Equal(t, "/static/missing.js", a.Path("missing.js"))
}

func TestFS_IsReadOnly(t *testing.T) {
	a := FromFs(afero.NewMemMapFs(), false)
	assert.Error(t, afero.WriteFile(a.fs, "x", []byte("x"), 0o644))
}
