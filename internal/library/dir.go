package library

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var posterExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// yearSuffix matches a trailing "(1999)" in a file name.
var yearSuffix = regexp.MustCompile(`\s*\((\d{4})\)\s*$`)

// DirSource reads posters from a folder. Images directly in Root form one
// shelf; every subdirectory holding images forms another.
type DirSource struct {
	Root string
}

func (s DirSource) Name() string { return "dir:" + s.Root }

func (s DirSource) Shelves() ([]Shelf, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("read poster dir: %w", err)
	}
	var shelves []Shelf
	if hasPosters(entries) {
		shelves = append(shelves, Shelf{ID: ".", Name: filepath.Base(s.Root)})
	}
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		sub, err := os.ReadDir(filepath.Join(s.Root, e.Name()))
		if err != nil {
			continue
		}
		if hasPosters(sub) {
			shelves = append(shelves, Shelf{ID: e.Name(), Name: e.Name()})
		}
	}
	if len(shelves) == 0 {
		return nil, fmt.Errorf("no posters under %s", s.Root)
	}
	return shelves, nil
}

func (s DirSource) Items(shelf Shelf, limit int) ([]Item, error) {
	dir := filepath.Join(s.Root, shelf.ID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read shelf %s: %w", shelf.Name, err)
	}
	var items []Item
	for _, e := range entries {
		if e.IsDir() || !isPoster(e.Name()) {
			continue
		}
		items = append(items, itemFromFile(dir, e.Name()))
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items, nil
}

func itemFromFile(dir, file string) Item {
	base := strings.TrimSuffix(file, filepath.Ext(file))
	it := Item{
		ID:     filepath.Join(dir, file),
		Poster: filepath.Join(dir, file),
	}
	if m := yearSuffix.FindStringSubmatch(base); m != nil {
		it.Year, _ = strconv.Atoi(m[1])
		base = base[:len(base)-len(m[0])]
	}
	it.Name = strings.TrimSpace(strings.NewReplacer("_", " ", ".", " ").Replace(base))
	return it
}

func isPoster(name string) bool {
	return posterExts[strings.ToLower(filepath.Ext(name))]
}

func hasPosters(entries []os.DirEntry) bool {
	return slices.ContainsFunc(entries, func(e os.DirEntry) bool {
		return !e.IsDir() && isPoster(e.Name())
	})
}
