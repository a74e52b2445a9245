package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanFrom(t *testing.T) {
	start := SpanNew(1, 1, 5, 8)
	start.Source = "a.mc"
	end := SpanNew(3, 4, 2, 9)

	joined := SpanFrom(start, end)
	assert.Equal(t, uint32(1), joined.LineStart)
	assert.Equal(t, uint32(4), joined.LineEnd)
	assert.Equal(t, uint32(5), joined.ColumnStart)
	assert.Equal(t, uint32(9), joined.ColumnEnd)
	assert.Equal(t, "a.mc", joined.Source)
}

func TestSpanString(t *testing.T) {
	assert.Equal(t, "2:5-2:9", SpanNew(2, 2, 5, 9).String())
}

func TestToRangeIsZeroBased(t *testing.T) {
	r := SpanNew(2, 2, 5, 9).ToRange()
	assert.Equal(t, uint32(1), r.Start.Line)
	assert.Equal(t, uint32(4), r.Start.Character)
	assert.Equal(t, uint32(1), r.End.Line)
	assert.Equal(t, uint32(9), r.End.Character)

	// 1:1 never underflows
	r = SpanDefault().ToRange()
	assert.Equal(t, uint32(0), r.Start.Line)
	assert.Equal(t, uint32(0), r.Start.Character)
}

func TestStack(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.Empty())

	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, top)
	assert.Equal(t, 2, s.Len())

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, _ = s.Pop()
	assert.Equal(t, 1, v)
	assert.True(t, s.Empty())
}
