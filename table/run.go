package table

import "iter"

// Run is an (element, repeat-count) pair standing for count consecutive
// identical logical elements.
type Run[T any] struct {
	Elem  T
	Count int
}

// runs is a run-length compressed sequence with positional access. Logical
// positions beyond the last run are implicitly empty (the zero value of T).
//
// Invariant: distinct runs never share an element when cloneFn is set; a
// single run with Count > 1 shares its element across all logical positions
// it stands for, so in-place mutation of an element requires splitting its
// run first.
type runs[T any] struct {
	list    []Run[T]
	size    int
	cloneFn func(T) T
}

func newRuns[T any](cloneFn func(T) T) runs[T] {
	return runs[T]{cloneFn: cloneFn}
}

// Size returns the total logical length.
func (r *runs[T]) Size() int { return r.size }

// locate returns the index of the run covering logical position i and the
// offset of i within that run. Cost is proportional to the number of runs
// walked, not to i.
func (r *runs[T]) locate(i int) (idx, off int) {
	pos := 0
	for idx = range r.list {
		n := r.list[idx].Count
		if i < pos+n {
			return idx, i - pos
		}
		pos += n
	}
	return -1, 0
}

// Get returns the element at logical position i. The second result is false
// when i is beyond the last run.
func (r *runs[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= r.size {
		return zero, false
	}
	idx, _ := r.locate(i)
	return r.list[idx].Elem, true
}

func (r *runs[T]) cloneElem(v T) T {
	if r.cloneFn == nil {
		return v
	}
	return r.cloneFn(v)
}

// Set places v at logical position i, splitting the covering run into up to
// three runs. If i is beyond the last run, the sequence is padded with fill
// up to i. Adjacent-run merging is deferred to [runs.Fold].
func (r *runs[T]) Set(i int, v T, fill T) {
	if i >= r.size {
		if i > r.size {
			r.Append(fill, i-r.size)
		}
		r.Append(v, 1)
		return
	}
	idx, off := r.locate(i)
	old := r.list[idx]
	before := off
	after := old.Count - off - 1

	repl := make([]Run[T], 0, 3)
	if before > 0 {
		repl = append(repl, Run[T]{Elem: old.Elem, Count: before})
	}
	repl = append(repl, Run[T]{Elem: v, Count: 1})
	if after > 0 {
		elem := old.Elem
		if before > 0 {
			// both remnants survive, keep them from sharing one element
			elem = r.cloneElem(elem)
		}
		repl = append(repl, Run[T]{Elem: elem, Count: after})
	}
	r.list = append(r.list[:idx], append(repl, r.list[idx+1:]...)...)
}

// Append adds count copies of v at the end.
func (r *runs[T]) Append(v T, count int) {
	if count <= 0 {
		return
	}
	r.list = append(r.list, Run[T]{Elem: v, Count: count})
	r.size += count
}

// InsertRun inserts count copies of v at logical position i, shifting all
// following positions by count. If i is beyond the last run, the sequence is
// padded with fill up to i.
func (r *runs[T]) InsertRun(i int, v T, count int, fill T) {
	if count <= 0 {
		return
	}
	if i >= r.size {
		if i > r.size {
			r.Append(fill, i-r.size)
		}
		r.Append(v, count)
		return
	}
	idx, off := r.locate(i)
	old := r.list[idx]
	repl := make([]Run[T], 0, 3)
	if off > 0 {
		repl = append(repl, Run[T]{Elem: old.Elem, Count: off})
	}
	repl = append(repl, Run[T]{Elem: v, Count: count})
	if old.Count-off > 0 {
		elem := old.Elem
		if off > 0 {
			elem = r.cloneElem(elem)
		}
		repl = append(repl, Run[T]{Elem: elem, Count: old.Count - off})
	}
	r.list = append(r.list[:idx], append(repl, r.list[idx+1:]...)...)
	r.size += count
}

// DeleteRange removes count logical positions starting at i, shifting all
// following positions back by count.
func (r *runs[T]) DeleteRange(i, count int) {
	if i < 0 || i >= r.size || count <= 0 {
		return
	}
	if i+count > r.size {
		count = r.size - i
	}
	out := make([]Run[T], 0, len(r.list)+1)
	pos := 0
	end := i + count
	for _, run := range r.list {
		runStart, runEnd := pos, pos+run.Count
		pos = runEnd
		// kept prefix
		if runStart < i {
			keep := min(runEnd, i) - runStart
			out = append(out, Run[T]{Elem: run.Elem, Count: keep})
		}
		// kept suffix
		if runEnd > end {
			keep := runEnd - max(runStart, end)
			elem := run.Elem
			if runStart < i && keep < run.Count {
				// run was split around the deleted range
				elem = r.cloneElem(elem)
			}
			if keep == run.Count {
				out = append(out, run)
			} else {
				out = append(out, Run[T]{Elem: elem, Count: keep})
			}
		}
	}
	r.list = out
	r.size -= count
}

// Truncate keeps only the first n logical positions.
func (r *runs[T]) Truncate(n int) {
	if n >= r.size {
		return
	}
	if n <= 0 {
		r.list = nil
		r.size = 0
		return
	}
	r.DeleteRange(n, r.size-n)
}

// All returns a lazy, restartable sequence of (index, element), unfolding
// runs one logical position at a time.
func (r *runs[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for _, run := range r.list {
			for k := 0; k < run.Count; k++ {
				if !yield(i, run.Elem) {
					return
				}
				i++
			}
		}
	}
}

// Runs returns a lazy sequence of (element, count) pairs in order.
func (r *runs[T]) Runs() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for _, run := range r.list {
			if !yield(run.Elem, run.Count) {
				return
			}
		}
	}
}

// Elems yields each run's element exactly once, in order.
func (r *runs[T]) Elems() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, run := range r.list {
			if !yield(run.Elem) {
				return
			}
		}
	}
}

// Fold merges consecutive runs whose elements compare equal. This is the
// opportunistic compression deferred by [runs.Set].
func (r *runs[T]) Fold(eq func(a, b T) bool) {
	if len(r.list) < 2 {
		return
	}
	out := r.list[:1]
	for _, run := range r.list[1:] {
		last := &out[len(out)-1]
		if eq(last.Elem, run.Elem) {
			last.Count += run.Count
		} else {
			out = append(out, run)
		}
	}
	r.list = out
}

// Clone returns a deep copy when a clone function is set, otherwise the runs
// share elements with the original.
func (r *runs[T]) Clone() runs[T] {
	out := runs[T]{
		list:    make([]Run[T], len(r.list)),
		size:    r.size,
		cloneFn: r.cloneFn,
	}
	for i, run := range r.list {
		out.list[i] = Run[T]{Elem: r.cloneElem(run.Elem), Count: run.Count}
	}
	return out
}
