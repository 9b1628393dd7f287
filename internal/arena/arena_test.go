package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseRunsInReverseOrder(t *testing.T) {
	var order []int
	a := New()
	a.Defer(func() { order = append(order, 1) })
	a.Defer(func() { order = append(order, 2) })
	a.Defer(func() { order = append(order, 3) })
	a.Release()
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestReleaseIsIdempotent(t *testing.T) {
	calls := 0
	a := New()
	a.Defer(func() { calls++ })
	a.Release()
	a.Release()
	assert.Equal(t, 1, calls)
}
