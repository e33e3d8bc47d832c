package cache

import (
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"already fits", 100, 150, 200, 300, 100, 150},
		{"width bound", 400, 600, 200, 400, 200, 300},
		{"height bound", 400, 600, 300, 300, 200, 300},
		{"no bound", 400, 600, 0, 0, 400, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			b := Fit(img, tt.maxW, tt.maxH).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Fit = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestAverageColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 60))
	for y := range 60 {
		for x := range 40 {
			img.SetRGBA(x, y, color.RGBA{200, 40, 10, 255})
		}
	}
	got := AverageColor(img)
	if got != (color.RGBA{200, 40, 10, 255}) {
		t.Errorf("AverageColor = %v", got)
	}
}

func TestLoad_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poster.png")
	writePNG(t, path, 300, 450, color.RGBA{0, 0, 255, 255})

	ic, err := NewImageCache(filepath.Join(dir, "cache"), 100, 150)
	if err != nil {
		t.Fatal(err)
	}
	img, err := ic.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 150 {
		t.Errorf("scaled to %dx%d, want 100x150", b.Dx(), b.Dy())
	}
	if ic.Get(path) == nil {
		t.Error("loaded image not memoized")
	}
}

func TestLoadAsync_DedupsAndCachesToDisk(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	writePNG(t, src, 20, 30, color.White)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(20 * time.Millisecond)
		http.ServeFile(w, r, src)
	}))
	defer srv.Close()

	ic, err := NewImageCache(filepath.Join(dir, "cache"), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	url := srv.URL + "/Items/x/Images/Primary"

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		ic.LoadAsync(url, func(image.Image) { wg.Done() })
	}
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callbacks not delivered")
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("%d downloads for one url, want 1", n)
	}
	if _, err := os.Stat(ic.diskPath(url)); err != nil {
		t.Errorf("download not written to disk: %v", err)
	}

	// A fresh memory cache is served from disk.
	ic.Clear()
	if _, err := ic.Load(url); err != nil {
		t.Fatalf("Load from disk: %v", err)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("disk cache missed: %d downloads", n)
	}
}

func TestLoadAsync_FailureIsRemembered(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	ic, err := NewImageCache(t.TempDir(), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	url := srv.URL + "/missing"
	called := false
	ic.LoadAsync(url, func(image.Image) { called = true })

	deadline := time.Now().Add(5 * time.Second)
	for !ic.Failed(url) {
		if time.Now().After(deadline) {
			t.Fatal("failure not recorded")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if called {
		t.Error("callback ran for a failed load")
	}
}
