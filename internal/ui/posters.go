package ui

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/jellyreel/internal/cache"
)

// Posters uploads images from the image cache as GPU textures. Loads finish
// on background goroutines; textures are only created from Get, which runs
// on the game goroutine.
type Posters struct {
	cache *cache.ImageCache

	mu    sync.Mutex
	ready map[string]image.Image
	tex   map[string]*ebiten.Image
}

func NewPosters(c *cache.ImageCache) *Posters {
	return &Posters{
		cache: c,
		ready: make(map[string]image.Image),
		tex:   make(map[string]*ebiten.Image),
	}
}

// Request starts loading src unless it is loaded, pending or failed.
func (p *Posters) Request(src string) {
	if p == nil || src == "" {
		return
	}
	p.mu.Lock()
	_, done := p.tex[src]
	_, waiting := p.ready[src]
	p.mu.Unlock()
	if done || waiting {
		return
	}
	p.cache.LoadAsync(src, func(img image.Image) {
		p.mu.Lock()
		if _, ok := p.tex[src]; !ok {
			p.ready[src] = img
		}
		p.mu.Unlock()
	})
}

// Get returns the texture for src, or nil while it is still loading.
func (p *Posters) Get(src string) *ebiten.Image {
	if p == nil || src == "" {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tex[src]; ok {
		return t
	}
	img, ok := p.ready[src]
	if !ok {
		return nil
	}
	delete(p.ready, src)
	t := ebiten.NewImageFromImage(img)
	p.tex[src] = t
	return t
}

// Failed reports whether src can not be shown.
func (p *Posters) Failed(src string) bool {
	return p != nil && src != "" && p.cache.Failed(src)
}
