package filter

import (
	"fmt"

	"github.com/gogpu/img/kernel"
	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// DefaultKuwaharaRadius is the radius used when none is given.
const DefaultKuwaharaRadius = 5

// Kuwahara smooths src while keeping edges.
//
// For every pixel the four (r+1)² quadrants of its window are compared by
// the standard deviation of their HSV value, and the pixel becomes the mean
// color of the calmest quadrant. The source is extended by r with its edge
// pixels and snapshotted according to e, so the output has the size of src.
func Kuwahara(src lens.View[pixel.Pixel], radius int, e Exec) (lens.View[pixel.Pixel], error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: kuwahara radius %d", ErrRadiusZero, radius)
	}
	sel, err := kernel.NewQuadrantSelection(radius)
	if err != nil {
		return nil, err
	}
	mean, err := kernel.NewQuadrantMean(radius)
	if err != nil {
		return nil, err
	}
	m, err := primitive.UniformMargin(radius)
	if err != nil {
		return nil, err
	}
	ext, err := lens.Border[pixel.Pixel](src, m, lens.ClampEdge[pixel.Pixel]{})
	if err != nil {
		return nil, err
	}
	snap := Materialize(e, ext)

	// The selection is padded back by r so that it lines up with snap;
	// the ring is never used as an anchor by the mean stage.
	var selErr error
	pairs := lens.Split2(snap,
		func(s lens.View[pixel.Pixel]) lens.View[kernel.Quadrant] {
			q, err := lens.ApplyKernel[float32, kernel.Quadrant](lens.Map(s, pixel.Value), sel)
			if err == nil {
				q, err = lens.Border[kernel.Quadrant](q, m, lens.PickPoint[kernel.Quadrant]{})
			}
			if err != nil {
				selErr = err
				return lens.Value(s.Size(), kernel.TopLeft)
			}
			return q
		},
		func(s lens.View[pixel.Pixel]) lens.View[pixel.Pixel] { return s },
	)
	if selErr != nil {
		return nil, selErr
	}
	return lens.ApplyKernel[lens.Pair[kernel.Quadrant, pixel.Pixel], pixel.Pixel](pairs, mean)
}
