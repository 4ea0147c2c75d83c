package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	imagesMu sync.RWMutex
	images   = map[string]*ebiten.Image{}
)

// RegisterImage stores an image by key, replacing any previous one.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	imagesMu.Lock()
	defer imagesMu.Unlock()
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	imagesMu.RLock()
	defer imagesMu.RUnlock()
	return images[key]
}

// ForgetImage drops a cached image so the next load decodes it again.
func ForgetImage(key string) {
	imagesMu.Lock()
	defer imagesMu.Unlock()
	delete(images, key)
}
