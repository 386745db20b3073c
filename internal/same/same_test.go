package same_test

import (
	"testing"

	"github.com/delaneyj/jumpgate/internal/same"
	"github.com/stretchr/testify/assert"
)

type props struct {
	label   string
	onClick func()
	items   []any
}

func TestEqual(t *testing.T) {
	onClick := func() {}
	other := func() {}
	x, y := 1, 1

	assert.True(t, same.Equal(nil, nil))
	assert.False(t, same.Equal(nil, 1))
	assert.True(t, same.Equal("a", "a"))
	assert.False(t, same.Equal("a", "b"))
	assert.False(t, same.Equal(1, int64(1)), "different types")

	assert.True(t, same.Equal(onClick, onClick), "a func is equal to itself")
	assert.False(t, same.Equal(onClick, other))

	assert.True(t, same.Equal(&x, &x))
	assert.False(t, same.Equal(&x, &y), "pointers compare by identity")

	assert.True(t, same.Equal(
		props{"a", onClick, []any{onClick, "x"}},
		props{"a", onClick, []any{onClick, "x"}},
	))
	assert.False(t, same.Equal(
		props{"a", onClick, nil},
		props{"a", other, nil},
	))
	assert.False(t, same.Equal([]any{1}, []any{1, 2}))
	assert.False(t, same.Equal([]any(nil), []any{}))
	assert.True(t, same.Equal([2]int{1, 2}, [2]int{1, 2}))

	m := map[string]int{}
	assert.True(t, same.Equal(m, m))
	assert.False(t, same.Equal(m, map[string]int{}))
}

func TestAll(t *testing.T) {
	onClick := func() {}
	assert.True(t, same.All([]any{onClick, "a"}, []any{onClick, "a"}))
	assert.False(t, same.All([]any{onClick}, []any{onClick, "a"}))
	assert.True(t, same.All(nil, []any{}))
}
