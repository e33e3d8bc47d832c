package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// maxConcurrentLoads bounds parallel downloads and decodes.
const maxConcurrentLoads = 6

// ImageCache loads poster images from URLs or local paths, scales them to
// fit a card and keeps the result in memory. Downloads are also kept on disk.
// It is safe for concurrent use.
type ImageCache struct {
	cacheDir string
	maxW     int
	maxH     int
	memory   sync.Map // src -> image.Image
	loading  sync.Map // src -> *loadEntry (in-flight dedup with waiters)
	failed   sync.Map // src -> error
	sem      chan struct{}
}

// loadEntry tracks in-flight loads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(image.Image)
}

// NewImageCache creates a cache writing downloads under cacheDir. Loaded
// images are scaled down to fit maxW x maxH; zero keeps the source size.
func NewImageCache(cacheDir string, maxW, maxH int) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		maxW:     maxW,
		maxH:     maxH,
		sem:      make(chan struct{}, maxConcurrentLoads),
	}, nil
}

// Get returns a loaded image, or nil.
func (ic *ImageCache) Get(src string) image.Image {
	if v, ok := ic.memory.Load(src); ok {
		return v.(image.Image)
	}
	return nil
}

// Failed reports whether src could not be loaded. Failed sources are not
// retried until Clear.
func (ic *ImageCache) Failed(src string) bool {
	_, ok := ic.failed.Load(src)
	return ok
}

// LoadAsync starts loading src in the background. The callback runs on a
// background goroutine once the image is ready; it is never called when
// loading fails.
func (ic *ImageCache) LoadAsync(src string, callback func(image.Image)) {
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(image.Image))
		return
	}
	if ic.Failed(src) {
		return
	}

	entry := &loadEntry{callbacks: []func(image.Image){callback}}
	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		e := existing.(*loadEntry)
		e.mu.Lock()
		e.callbacks = append(e.callbacks, callback)
		e.mu.Unlock()
		return
	}

	go func() {
		defer ic.loading.Delete(src)

		ic.sem <- struct{}{}
		defer func() { <-ic.sem }()

		img, err := ic.Load(src)
		if err != nil {
			log.Printf("poster %s: %v", src, err)
			ic.failed.Store(src, err)
			return
		}

		entry.mu.Lock()
		cbs := make([]func(image.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(img)
		}
	}()
}

// Load loads, scales and memoizes src synchronously.
func (ic *ImageCache) Load(src string) (image.Image, error) {
	if v, ok := ic.memory.Load(src); ok {
		return v.(image.Image), nil
	}
	var (
		img image.Image
		err error
	)
	if isRemote(src) {
		img, err = ic.download(src)
	} else {
		img, err = decodeFile(src)
	}
	if err != nil {
		return nil, err
	}
	img = Fit(img, ic.maxW, ic.maxH)
	ic.memory.Store(src, img)
	return img, nil
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func (ic *ImageCache) download(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	if img, err := decodeFile(diskPath); err == nil {
		return img, nil
	} else if !os.IsNotExist(err) {
		// Corrupt cache file, fetch again.
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(io.TeeReader(resp.Body, f))
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}
	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// Clear drops loaded images and forgets failures.
func (ic *ImageCache) Clear() {
	ic.memory.Clear()
	ic.failed.Clear()
}

// ClearDisk removes all downloaded images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
