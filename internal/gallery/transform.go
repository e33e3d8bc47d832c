package gallery

import "math"

// ItemTransformer adjusts an attached view from its distance to the
// viewport center. fraction is -1 a full item extent before the center, 0
// at the center and 1 a full extent after it.
type ItemTransformer interface {
	TransformItem(lm *LayoutManager, v View, fraction float64)
}

// TransformFunc adapts a function to ItemTransformer.
type TransformFunc func(lm *LayoutManager, v View, fraction float64)

func (f TransformFunc) TransformItem(lm *LayoutManager, v View, fraction float64) {
	f(lm, v, fraction)
}

// Scalable is implemented by views that can draw themselves scaled.
type Scalable interface {
	SetScale(scale float64)
}

// ScaleTransformer shrinks items linearly from full size at the center to
// MinScale one item away from it.
type ScaleTransformer struct {
	MinScale float64
}

func (t ScaleTransformer) TransformItem(_ *LayoutManager, v View, fraction float64) {
	if s, ok := v.(Scalable); ok {
		s.SetScale(t.Scale(fraction))
	}
}

// Scale returns the scale for a center fraction.
func (t ScaleTransformer) Scale(fraction float64) float64 {
	return 1 - (1-t.MinScale)*math.Abs(fraction)
}
