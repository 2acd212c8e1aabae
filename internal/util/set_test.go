package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet_BasicOps(t *testing.T) {
	assert := assert.New(t)

	s := NewStringSet("a", "b")
	assert.True(s.Has("a"))
	assert.False(s.Has("c"))
	assert.Equal(2, s.Len())

	s.Add("c")
	assert.Equal([]string{"a", "b", "c"}, s.Sorted())

	s.Remove("b")
	assert.False(s.Has("b"))
	assert.Equal(2, s.Len())
}

func TestStringSet_Equal(t *testing.T) {
	assert := assert.New(t)

	a := NewStringSet("x", "y")
	b := NewStringSet("y", "x")
	c := NewStringSet("x")

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
}

func TestSVSet_KeysAreOrderIndependent(t *testing.T) {
	assert := assert.New(t)

	s1 := NewSVSet[int]()
	s1.Set("b", 2)
	s1.Set("a", 1)

	s2 := NewSVSet[int]()
	s2.Set("a", 1)
	s2.Set("b", 2)

	assert.Equal(s1.StringOrdered(), s2.StringOrdered())
}

func TestStack_PushPopPeek(t *testing.T) {
	assert := assert.New(t)

	var st Stack[int]
	st.Push(1)
	st.Push(2)
	st.Push(3)

	assert.Equal(3, st.Peek())
	assert.Equal(3, st.Len())

	assert.Equal(3, st.Pop())
	assert.Equal(2, st.Pop())
	assert.Equal(1, st.Len())
	assert.False(st.Empty())

	st.Pop()
	assert.True(st.Empty())
}
