package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed data
var bundled embed.FS

// FSProvider loads assets from a file system laid out as
// sprites/<name>.txt and sounds/<name>.wav.
type FSProvider struct {
	fsys fs.FS
}

// NewFSProvider returns a provider reading from fsys.
func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{fsys: fsys}
}

// Embedded returns a provider over the assets compiled into the binary.
func Embedded() *FSProvider {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		// data is always embedded, Sub only fails on an invalid path.
		panic(err)
	}
	return NewFSProvider(sub)
}

// Dir returns a provider reading from a directory on disk.
func Dir(dir string) (*FSProvider, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	return NewFSProvider(os.DirFS(dir)), nil
}

// LoadImage loads sprites/<name>.txt.
func (p *FSProvider) LoadImage(name string) (*Sprite, error) {
	data, err := p.read(path.Join("sprites", name+".txt"))
	if err != nil {
		return nil, err
	}
	return ParseSprite(name, string(data))
}

// LoadSound loads and decodes sounds/<name>.wav.
func (p *FSProvider) LoadSound(name string) (*Sound, error) {
	f, err := p.fsys.Open(path.Join("sounds", name+".wav"))
	if err != nil {
		return nil, notFound(name, err)
	}
	defer f.Close()
	return DecodeWAV(name, f)
}

func (p *FSProvider) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, notFound(name, err)
	}
	return data, nil
}

func notFound(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrAssetMissing, name)
	}
	return fmt.Errorf("assets: %s: %w", name, err)
}

// Layered tries each provider in order and returns the first hit.
// It lets a user directory override single files of the bundled set.
type Layered []Provider

// LoadImage implements Provider.
func (l Layered) LoadImage(name string) (*Sprite, error) {
	for _, p := range l {
		s, err := p.LoadImage(name)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrAssetMissing) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAssetMissing, name)
}

// LoadSound implements Provider.
func (l Layered) LoadSound(name string) (*Sound, error) {
	for _, p := range l {
		s, err := p.LoadSound(name)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrAssetMissing) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAssetMissing, name)
}
