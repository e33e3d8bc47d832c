// Package library describes the items a reel shows and where they come from.
package library

import (
	"fmt"
	"time"
)

// Item is one entry on a shelf.
type Item struct {
	ID       string
	Name     string
	Year     int
	Overview string
	Runtime  time.Duration
	Rating   float32
	// Poster is an http(s) URL or a local file path. Empty means the card
	// draws a placeholder.
	Poster string
	// Backdrop is optional wide artwork for the detail screen.
	Backdrop string
}

// Shelf is a named group of items, shown as one reel.
type Shelf struct {
	ID   string
	Name string
}

// Source lists shelves and their items.
type Source interface {
	Name() string
	Shelves() ([]Shelf, error)
	Items(shelf Shelf, limit int) ([]Item, error)
}

// Subtitle formats the secondary line under an item title.
func (it Item) Subtitle() string {
	s := ""
	if it.Year > 0 {
		s = fmt.Sprintf("%d", it.Year)
	}
	if it.Runtime > 0 {
		if s != "" {
			s += "  ·  "
		}
		s += FormatRuntime(it.Runtime)
	}
	return s
}

// FormatRuntime renders a duration as "1h 42m" or "38m".
func FormatRuntime(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}

// FindShelf returns the index of the shelf whose ID or name matches key, or
// 0 when none does.
func FindShelf(shelves []Shelf, key string) int {
	for i, s := range shelves {
		if s.ID == key || s.Name == key {
			return i
		}
	}
	return 0
}
