// Package lens implements lazily evaluated 2D views and the combinators that
// compose them.
//
// A [View] has a fixed domain, its [View.Size], and produces one item per
// point of that domain on demand. Every view in this package, and every view
// a caller builds with it, must satisfy one contract:
//
//	Look(p) succeeds if and only if Size().Contains(p)
//
// Combinators rely on this to skip redundant bounds checks: a kernel may read
// anywhere inside its declared margin, and a remap may read any point it
// computed from its own domain. A view that fails inside its domain is a
// programming error; [Materialize] and [MaterializePar] panic with an error
// wrapping [ErrInvariant] when they observe one.
//
// Views are cheap, short-lived values. A chain is usually built per
// operation, forced once with [Materialize] or [MaterializePar], and dropped.
// A [*Materialized] view is an immutable snapshot that may be shared by any
// number of downstream branches and goroutines.
//
// # Kernels
//
// A [Kernel] is a local-neighborhood operator with a declared [primitive.Margin].
// [ApplyKernel] evaluates it against a source view; the resulting view's
// domain is the source's domain shrunk by the margin, so the kernel never
// sees a window that falls outside its source.
package lens
