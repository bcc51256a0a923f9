package content

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "قهرمانان زندگی", s.Brand.Name)
	assert.Len(t, s.About.Cards, 4)
	assert.Len(t, s.Events.Items, 1)
	assert.Equal(t, 2, s.Events.Placeholders)
	assert.Len(t, s.Roadmap.Phases, 3)
	for _, p := range s.Roadmap.Phases {
		assert.Len(t, p.Goals, 3)
		assert.Len(t, p.Metrics, 3)
	}
	assert.Len(t, s.Reviews.Cards, 3)
	assert.Len(t, s.Footer.Links, 4)
	assert.NotEmpty(t, s.Hero.VideoMP4)
	assert.NotEmpty(t, s.Hero.VideoWebM)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	a.Brand.Name = "changed"
	assert.NotEqual(t, a.Brand.Name, b.Brand.Name)
}

func TestParse_OverridesOnTopOfDefault(t *testing.T) {
	s, err := Parse([]byte("brand:\n  tagline: tagline override\nevents:\n  placeholders: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, "tagline override", s.Brand.Tagline)
	assert.Equal(t, "قهرمانان زندگی", s.Brand.Name)
	assert.Equal(t, 0, s.Events.Placeholders)
	assert.Len(t, s.Roadmap.Phases, 3)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "brand: [unclosed"},
		{"empty brand", "brand:\n  name: \"\"\n"},
		{"too many stars", "reviews:\n  cards:\n    - title: x\n      stars: 6\n"},
		{"negative placeholders", "events:\n  placeholders: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestSource_EmbeddedOnly(t *testing.T) {
	src, err := NewSource(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Len(t, src.Current().About.Cards, 4)
}

func TestSource_MissingFile(t *testing.T) {
	_, err := NewSource(afero.NewMemMapFs(), "/content/site.yaml")
	assert.Error(t, err)
}

func TestSource_Reload(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/content/site.yaml"
	require.NoError(t, afero.WriteFile(fs, path, []byte("brand:\n  tagline: first\n"), 0o644))

	src, err := NewSource(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "first", src.Current().Brand.Tagline)

	var reloads atomic.Int32
	src.OnReload(func(*Site) { reloads.Add(1) })

	require.NoError(t, afero.WriteFile(fs, path, []byte("brand:\n  tagline: second\n"), 0o644))
	require.NoError(t, src.Reload())
	assert.Equal(t, "second", src.Current().Brand.Tagline)
	assert.Equal(t, int32(1), reloads.Load())

	require.NoError(t, afero.WriteFile(fs, path, []byte("brand: [broken"), 0o644))
	assert.Error(t, src.Reload())
	assert.Equal(t, "second", src.Current().Brand.Tagline, "failed reload keeps the previous content")
	assert.Equal(t, int32(1), reloads.Load())
}

func TestSource_WatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand:\n  tagline: before\n"), 0o644))

	src, err := NewSource(afero.NewOsFs(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Watch(ctx))
	require.NoError(t, src.Watch(ctx), "second call is a no-op")

	require.NoError(t, os.WriteFile(path, []byte("brand:\n  tagline: after\n"), 0o644))
	assert.Eventually(t, func() bool {
		return src.Current().Brand.Tagline == "after"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSource_WatchWithoutFile(t *testing.T) {
	src, err := NewSource(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.NoError(t, src.Watch(context.Background()))
}
