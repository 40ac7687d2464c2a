package lens

import "github.com/gogpu/img/primitive"

// Pair is the item of a Split2 view.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the item of a Split3 view.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is the item of a Split4 view.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// minSize returns the componentwise minimum of sizes.
func minSize(sizes ...primitive.Size) primitive.Size {
	s := sizes[0]
	for _, o := range sizes[1:] {
		s = s.Min(o)
	}
	return s
}

type split2View[A, B any] struct {
	a    View[A]
	b    View[B]
	size primitive.Size
}

// Split2 builds two branches over one shared snapshot and pairs their items.
//
// Each factory receives src and returns a branch view; both branches read the
// same already computed items. The resulting domain is the intersection of
// the branch domains.
func Split2[S, A, B any](src *Materialized[S], fa func(View[S]) View[A], fb func(View[S]) View[B]) View[Pair[A, B]] {
	a, b := fa(src), fb(src)
	return &split2View[A, B]{a: a, b: b, size: minSize(a.Size(), b.Size())}
}

func (v *split2View[A, B]) Size() primitive.Size { return v.size }

func (v *split2View[A, B]) Look(p primitive.Point) (Pair[A, B], error) {
	if !v.size.Contains(p) {
		return Pair[A, B]{}, outOfBounds(p, v.size)
	}
	a, err := v.a.Look(p)
	if err != nil {
		return Pair[A, B]{}, err
	}
	b, err := v.b.Look(p)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{a, b}, nil
}

type split3View[A, B, C any] struct {
	a    View[A]
	b    View[B]
	c    View[C]
	size primitive.Size
}

// Split3 is Split2 with three branches.
func Split3[S, A, B, C any](src *Materialized[S], fa func(View[S]) View[A], fb func(View[S]) View[B], fc func(View[S]) View[C]) View[Triple[A, B, C]] {
	a, b, c := fa(src), fb(src), fc(src)
	return &split3View[A, B, C]{a: a, b: b, c: c, size: minSize(a.Size(), b.Size(), c.Size())}
}

func (v *split3View[A, B, C]) Size() primitive.Size { return v.size }

func (v *split3View[A, B, C]) Look(p primitive.Point) (Triple[A, B, C], error) {
	var t Triple[A, B, C]
	if !v.size.Contains(p) {
		return t, outOfBounds(p, v.size)
	}
	var err error
	if t.First, err = v.a.Look(p); err != nil {
		return Triple[A, B, C]{}, err
	}
	if t.Second, err = v.b.Look(p); err != nil {
		return Triple[A, B, C]{}, err
	}
	if t.Third, err = v.c.Look(p); err != nil {
		return Triple[A, B, C]{}, err
	}
	return t, nil
}

type split4View[A, B, C, D any] struct {
	a    View[A]
	b    View[B]
	c    View[C]
	d    View[D]
	size primitive.Size
}

// Split4 is Split2 with four branches. It is how a pixel view is decomposed
// into per-channel pipelines and recombined; see Channels.
func Split4[S, A, B, C, D any](src *Materialized[S], fa func(View[S]) View[A], fb func(View[S]) View[B], fc func(View[S]) View[C], fd func(View[S]) View[D]) View[Quad[A, B, C, D]] {
	a, b, c, d := fa(src), fb(src), fc(src), fd(src)
	return &split4View[A, B, C, D]{a: a, b: b, c: c, d: d, size: minSize(a.Size(), b.Size(), c.Size(), d.Size())}
}

func (v *split4View[A, B, C, D]) Size() primitive.Size { return v.size }

func (v *split4View[A, B, C, D]) Look(p primitive.Point) (Quad[A, B, C, D], error) {
	var q Quad[A, B, C, D]
	if !v.size.Contains(p) {
		return q, outOfBounds(p, v.size)
	}
	var err error
	if q.First, err = v.a.Look(p); err != nil {
		return Quad[A, B, C, D]{}, err
	}
	if q.Second, err = v.b.Look(p); err != nil {
		return Quad[A, B, C, D]{}, err
	}
	if q.Third, err = v.c.Look(p); err != nil {
		return Quad[A, B, C, D]{}, err
	}
	if q.Fourth, err = v.d.Look(p); err != nil {
		return Quad[A, B, C, D]{}, err
	}
	return q, nil
}
