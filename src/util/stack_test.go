package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStackPushPopOrder verifies LIFO ordering of Push/Pop.
func TestStackPushPopOrder(t *testing.T) {
	var s Stack
	s.Push(1)
	s.Push(2)
	s.Push(3)

	require.Equal(t, 3, s.Size())
	require.Equal(t, 3, s.Pop())
	require.Equal(t, 2, s.Pop())
	require.Equal(t, 1, s.Pop())
	require.Equal(t, 0, s.Size())
	require.Nil(t, s.Pop())
}

// TestStackPeekDoesNotRemove checks Peek leaves the stack untouched.
func TestStackPeekDoesNotRemove(t *testing.T) {
	var s Stack
	s.Push("a")
	s.Push("b")

	require.Equal(t, "b", s.Peek())
	require.Equal(t, 2, s.Size())
}

// TestStackIgnoresNil checks that pushing a nil value is a no-op, matching
// the "does not store <nil> values" contract.
func TestStackIgnoresNil(t *testing.T) {
	var s Stack
	s.Push(nil)
	require.Equal(t, 0, s.Size())
}

// TestStackGet checks 1-indexed, top-down Get semantics.
func TestStackGet(t *testing.T) {
	var s Stack
	s.Push("bottom")
	s.Push("middle")
	s.Push("top")

	require.Equal(t, "top", s.Get(1))
	require.Equal(t, "middle", s.Get(2))
	require.Equal(t, "bottom", s.Get(3))
	require.Nil(t, s.Get(0))
	require.Nil(t, s.Get(4))
	require.Nil(t, s.Get(-1))
}
