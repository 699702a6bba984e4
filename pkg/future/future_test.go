package future

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThenBeforeResolveRunsInOrder(t *testing.T) {
	f := New[string]()
	var got []string
	f.Then(func(v string) { got = append(got, "a:"+v) })
	f.Then(func(v string) { got = append(got, "b:"+v) })
	require.Empty(t, got)
	assert.Equal(t, 2, f.Pending())

	require.True(t, f.Resolve("x"))
	assert.Equal(t, []string{"a:x", "b:x"}, got)
	assert.Zero(t, f.Pending())
}

func TestThenAfterResolveRunsImmediately(t *testing.T) {
	f := Resolved(7)
	ran := false
	f.Then(func(v int) { ran = v == 7 })
	assert.True(t, ran)
}

func TestResolveTwiceKeepsFirstValue(t *testing.T) {
	f := New[int]()
	require.True(t, f.Resolve(1))
	assert.False(t, f.Resolve(2))
	assert.False(t, f.Discard())
	v, ok := f.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestDiscardDropsContinuations(t *testing.T) {
	f := New[int]()
	called := false
	f.Then(func(int) { called = true })
	require.True(t, f.Discard())
	f.Then(func(int) { called = true })

	assert.False(t, called)
	assert.True(t, f.Done())
	_, ok := f.Value()
	assert.False(t, ok)
	assert.Equal(t, 0, f.Pending())
	assert.False(t, f.Resolve(3))
}

func TestThenDuringDrainKeepsOrder(t *testing.T) {
	f := New[int]()
	var got []string
	f.Then(func(int) {
		got = append(got, "first")
		f.Then(func(int) { got = append(got, "nested") })
	})
	f.Then(func(int) { got = append(got, "second") })

	f.Resolve(0)
	assert.Equal(t, []string{"first", "second", "nested"}, got)
}

func TestEmptyFuture(t *testing.T) {
	f := Empty[int]()
	assert.True(t, f.Done())
	f.Then(func(int) { t.Fatal("continuation on empty future") })
}

func TestNilContinuationIgnored(t *testing.T) {
	f := New[int]()
	f.Then(nil)
	assert.Zero(t, f.Pending())
}
