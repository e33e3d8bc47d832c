package gallery

// FrameCache remembers the last frame laid out for each item index. Entries
// live until the cache is cleared; layout never depends on a hit.
type FrameCache struct {
	frames map[int]Rect
}

// NewFrameCache returns an empty cache.
func NewFrameCache() *FrameCache {
	return &FrameCache{frames: make(map[int]Rect)}
}

// Get returns the cached frame for index.
func (fc *FrameCache) Get(index int) (Rect, bool) {
	r, ok := fc.frames[index]
	return r, ok
}

// Put inserts or overwrites the frame for index.
func (fc *FrameCache) Put(index int, r Rect) {
	fc.frames[index] = r
}

func (fc *FrameCache) Len() int {
	return len(fc.frames)
}

// Clear drops every entry.
func (fc *FrameCache) Clear() {
	clear(fc.frames)
}
