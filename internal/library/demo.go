package library

import (
	"fmt"
	"time"
)

var demoWords = []string{
	"Silent", "Harbor", "Crimson", "Echo", "Atlas", "Winter", "Glass",
	"Orbit", "Paper", "Signal", "Hollow", "Neon", "Drift", "Ember",
	"Meridian", "Static", "Lantern", "Cinder", "Tide", "Vantage",
}

var demoShelves = []struct {
	shelf Shelf
	count int
}{
	{Shelf{ID: "movies", Name: "Movies"}, 48},
	{Shelf{ID: "shows", Name: "Shows"}, 21},
	{Shelf{ID: "shorts", Name: "Shorts"}, 7},
}

// DemoSource generates a fixed library without artwork. It is used when no
// server or poster folder is configured.
type DemoSource struct{}

func (DemoSource) Name() string { return "demo" }

func (DemoSource) Shelves() ([]Shelf, error) {
	shelves := make([]Shelf, len(demoShelves))
	for i, d := range demoShelves {
		shelves[i] = d.shelf
	}
	return shelves, nil
}

func (DemoSource) Items(shelf Shelf, limit int) ([]Item, error) {
	for si, d := range demoShelves {
		if d.shelf.ID != shelf.ID {
			continue
		}
		n := d.count
		if limit > 0 && limit < n {
			n = limit
		}
		items := make([]Item, n)
		for i := range items {
			w1 := demoWords[(i*7+si*3)%len(demoWords)]
			w2 := demoWords[(i*3+si*11+5)%len(demoWords)]
			items[i] = Item{
				ID:       fmt.Sprintf("%s-%03d", shelf.ID, i),
				Name:     fmt.Sprintf("%s %s", w1, w2),
				Year:     1970 + (i*13+si*5)%55,
				Overview: fmt.Sprintf("Entry %d of the %s shelf.", i+1, shelf.Name),
				Runtime:  time.Duration(20+(i*17)%130) * time.Minute,
				Rating:   float32(50+(i*23)%50) / 10,
			}
		}
		return items, nil
	}
	return nil, fmt.Errorf("demo: unknown shelf %q", shelf.ID)
}
