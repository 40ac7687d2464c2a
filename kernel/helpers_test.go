package kernel

import (
	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// grays builds a materialized pixel view from a row-major gray ramp,
// one value per pixel, alpha 200.
func grays(w, h int, values ...uint8) *lens.Materialized[pixel.Pixel] {
	data := make([]pixel.Pixel, len(values))
	for i, v := range values {
		data[i] = pixel.RGBA(v, v, v, 200)
	}
	m, err := lens.FromSlice(primitive.MustSize(w, h), data)
	if err != nil {
		panic(err)
	}
	return m
}

func scalars[T any](w, h int, values ...T) *lens.Materialized[T] {
	m, err := lens.FromSlice(primitive.MustSize(w, h), values)
	if err != nil {
		panic(err)
	}
	return m
}
