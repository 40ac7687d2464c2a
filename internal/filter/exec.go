package filter

import "github.com/gogpu/img/lens"

// Exec selects how chains are evaluated.
//
// Workers == 1 evaluates on the calling goroutine. Any other value fans out
// through lens.MaterializePar, with 0 or less meaning GOMAXPROCS.
type Exec struct {
	Workers int
}

// Sequential reports whether e evaluates on the calling goroutine.
func (e Exec) Sequential() bool { return e.Workers == 1 }

// Materialize evaluates v according to e.
func Materialize[T any](e Exec, v lens.View[T]) *lens.Materialized[T] {
	if e.Sequential() {
		return lens.Materialize(v)
	}
	return lens.MaterializePar(v, e.Workers)
}
