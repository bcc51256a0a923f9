// Package assets exposes the site's static files as an afero filesystem, either
// from the binary or from disk during development.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"sync"

	"github.com/spf13/afero"

	"github.com/nfrund/lifeheroes/web"
)

// Modes accepted by New.
const (
	ModeEmbed = "embed"
	ModeDisk  = "disk"
)

// URLPrefix is where the assets are served.
const URLPrefix = "/static"

// Assets is a read-only view of the static files.
type Assets struct {
	fs afero.Fs

	mu       sync.Mutex
	versions map[string]string
	cache    bool
}

// New returns the embedded assets, or the files under dir when mode is ModeDisk.
// Disk assets are re-hashed on every call to Path so edits show up without a restart.
func New(mode, dir string) (*Assets, error) {
	switch mode {
	case "", ModeEmbed:
		sub, err := fs.Sub(web.FS, "static")
		if err != nil {
			return nil, fmt.Errorf("open embedded assets: %w", err)
		}
		return FromFs(afero.FromIOFS{FS: sub}, true), nil
	case ModeDisk:
		base := afero.NewBasePathFs(afero.NewOsFs(), dir)
		if _, err := base.Stat("/"); err != nil {
			return nil, fmt.Errorf("open assets dir %s: %w", dir, err)
		}
		return FromFs(base, false), nil
	default:
		return nil, fmt.Errorf("unknown assets mode %q", mode)
	}
}

// FromFs wraps an arbitrary filesystem. When cache is true, content hashes are
// computed once per file.
func FromFs(fsys afero.Fs, cache bool) *Assets {
	return &Assets{
		fs:       afero.NewReadOnlyFs(fsys),
		versions: make(map[string]string),
		cache:    cache,
	}
}

// FS returns the files for serving.
func (a *Assets) FS() fs.FS {
	return afero.NewIOFS(a.fs)
}

// Path returns the public URL of name with a content hash query for cache busting.
// Unknown files get a plain URL.
func (a *Assets) Path(name string) string {
	url := URLPrefix + "/" + name
	v, err := a.version(name)
	if err != nil {
		return url
	}
	return url + "?v=" + v
}

func (a *Assets) version(name string) (string, error) {
	if a.cache {
		a.mu.Lock()
		v, ok := a.versions[name]
		a.mu.Unlock()
		if ok {
			return v, nil
		}
	}

	data, err := afero.ReadFile(a.fs, name)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	v := hex.EncodeToString(sum[:])[:10]

	if a.cache {
		a.mu.Lock()
		a.versions[name] = v
		a.mu.Unlock()
	}
	return v, nil
}
