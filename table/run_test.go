package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intEq(a, b int) bool { return a == b }

func collect(r *runs[int]) []int {
	out := make([]int, 0, r.Size())
	for _, v := range r.All() {
		out = append(out, v)
	}
	return out
}

func runCount(r *runs[int]) int { return len(r.list) }

func TestRunsSetSplitsCoveringRun(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(7, 5)
	r.Set(2, 9, 0)

	assert.Equal(t, []int{7, 7, 9, 7, 7}, collect(&r))
	assert.Equal(t, 3, runCount(&r), "split into before / modified / after")
	assert.Equal(t, 5, r.Size(), "total logical width preserved")
}

func TestRunsSetEdges(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(7, 3)
	r.Set(0, 1, 0)
	r.Set(2, 2, 0)
	assert.Equal(t, []int{1, 7, 2}, collect(&r))
}

func TestRunsSetBeyondPads(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(1, 2)
	r.Set(5, 9, 0)
	assert.Equal(t, []int{1, 1, 0, 0, 0, 9}, collect(&r))
	assert.Equal(t, 6, r.Size())
}

func TestRunsGet(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(1, 2)
	r.Append(2, 3)

	v, ok := r.Get(0)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Get(4)
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = r.Get(5)
	assert.False(t, ok)
	_, ok = r.Get(-1)
	assert.False(t, ok)
}

func TestRunsInsertRun(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(1, 4)
	r.InsertRun(2, 5, 2, 0)
	assert.Equal(t, []int{1, 1, 5, 5, 1, 1}, collect(&r))
	assert.Equal(t, 6, r.Size())

	r2 := newRuns[int](nil)
	r2.Append(1, 2)
	r2.InsertRun(4, 9, 1, 0)
	assert.Equal(t, []int{1, 1, 0, 0, 9}, collect(&r2))
}

func TestRunsDeleteRange(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(1, 3)
	r.Append(2, 3)
	r.DeleteRange(2, 2)
	assert.Equal(t, []int{1, 1, 2, 2}, collect(&r))
	assert.Equal(t, 4, r.Size())

	// interior deletion splits a run
	r2 := newRuns[int](nil)
	r2.Append(1, 5)
	r2.DeleteRange(1, 2)
	assert.Equal(t, []int{1, 1, 1}, collect(&r2))

	// deletion past the end clamps
	r3 := newRuns[int](nil)
	r3.Append(1, 3)
	r3.DeleteRange(2, 10)
	assert.Equal(t, []int{1, 1}, collect(&r3))
}

func TestRunsFold(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(7, 2)
	r.Set(1, 7, 0) // splits, same value
	r.Append(7, 1)
	r.Append(8, 1)
	before := collect(&r)
	r.Fold(intEq)
	assert.Equal(t, before, collect(&r), "folding must not change logical content")
	assert.Equal(t, 2, runCount(&r))
}

func TestRunsIterRestartable(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(3, 2)
	first := collect(&r)
	second := collect(&r)
	assert.Equal(t, first, second)

	// early break works
	n := 0
	for range r.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestRunsTruncate(t *testing.T) {
	r := newRuns[int](nil)
	r.Append(1, 3)
	r.Append(2, 3)
	r.Truncate(4)
	assert.Equal(t, []int{1, 1, 1, 2}, collect(&r))
	r.Truncate(0)
	assert.Equal(t, 0, r.Size())
}

func TestRunsSplitClonesSharedElem(t *testing.T) {
	type box struct{ v int }
	r := newRuns[*box](func(b *box) *box {
		if b == nil {
			return nil
		}
		out := *b
		return &out
	})
	shared := &box{v: 1}
	r.Append(shared, 5)
	r.Set(2, &box{v: 9}, nil)

	before, _ := r.Get(0)
	after, _ := r.Get(4)
	require.NotNil(t, before)
	require.NotNil(t, after)
	assert.NotSame(t, before, after, "split remnants must not share one element")
	assert.Equal(t, before.v, after.v)
}
