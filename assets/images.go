// Package assets loads images and sounds for the ebiten frontend. Files
// are read from an fs.FS so the game runs from a checkout or a bundle.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Images caches decoded images by path. It satisfies engine.ImageCache,
// so the core only animates frames that actually loaded.
type Images struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImages(fsys fs.FS) *Images {
	return &Images{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Preload decodes every path up front. Missing files are counted and
// skipped; any other failure is logged.
func (l *Images) Preload(paths []string) (missing int) {
	for _, p := range paths {
		if _, err := l.load(p); err != nil {
			missing++
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("Warning: %v", err)
			}
		}
	}
	return missing
}

func (l *Images) load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Get returns a loaded image, or nil when path was never loaded.
func (l *Images) Get(path string) *ebiten.Image {
	return l.cache[path]
}

func (l *Images) Has(path string) bool {
	_, ok := l.cache[path]
	return ok
}
