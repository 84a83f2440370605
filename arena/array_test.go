package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArray_Basics(t *testing.T) {
	s := newTestStack(t, 4*KB, PolicyDefault)

	p := NewArray[int64](s, 8)
	require.Equal(t, 8, p.Len())
	require.False(t, p.IsNil())

	for i := range p.Len() {
		*p.At(i) = int64(i * i)
	}
	sl := p.Slice()
	for i := range sl {
		assert.Equal(t, int64(i*i), sl[i])
	}

	DeleteArray(s, p)
	assert.Zero(t, s.UsedSize())
}

func TestNewArray_ZeroesElements(t *testing.T) {
	s := newTestStack(t, 4*KB, PolicyDefault)

	// Dirty the region first, then reuse it.
	b := s.AllocBuffer(256, 8)
	for i := range b.data {
		b.data[i] = 0xAB
	}
	s.Reset()

	p := NewArray[uint32](s, 32)
	for i := range p.Len() {
		require.Zero(t, *p.At(i), "element %d should be zeroed", i)
	}
}

// TestDeleteArray_FinalizerOrder: every element is finalized exactly
// once, strictly from the last index down to the first.
func TestDeleteArray_FinalizerOrder(t *testing.T) {
	const n = 16
	s := newTestStack(t, 4*KB, PolicyDefault)

	var log []int
	p := NewArray[finalizeRecorder](s, n)
	for i := range p.Len() {
		p.At(i).log = &log
		p.At(i).idx = i
	}

	DeleteArray(s, p)

	require.Len(t, log, n, "every element finalized exactly once")
	for i, idx := range log {
		assert.Equal(t, n-1-i, idx, "finalization must run last index to first")
	}
	assert.Zero(t, s.UsedSize())
}

func TestDeleteArrayRaw_FinalizerOrder(t *testing.T) {
	const n = 5
	s := newTestStack(t, 4*KB, PolicyDefault)

	var log []int
	sl := NewArrayRaw[finalizeRecorder](s, n)
	for i := range sl {
		sl[i].log = &log
		sl[i].idx = i
	}

	DeleteArrayRaw(s, sl)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, log)
	assert.Zero(t, s.UsedSize())
}

func TestNewArrayRaw_InbandHeader(t *testing.T) {
	s := newTestStack(t, 4*KB, PolicyDefault)

	sl := NewArrayRaw[int64](s, 6)
	require.Len(t, sl, 6)

	// Header [start u32][count u32] sits immediately before the payload.
	// Base is 64-byte aligned: 8-byte header occupies one stride, so the
	// payload starts at offset 8.
	assert.Equal(t, 0, getOffset(s.region, 0), "stored start offset")
	assert.Equal(t, 6, getOffset(s.region, offsetEncSize), "stored count")
	assert.Equal(t, 8+6*8, s.UsedSize())

	DeleteArrayRaw(s, sl)
	assert.Zero(t, s.UsedSize())
}

func TestNewArray_OrderAcrossArrays(t *testing.T) {
	s := newTestStack(t, 4*KB, PolicyDefault)

	a := NewArray[int32](s, 4)
	b := NewArray[int32](s, 4)

	catchFault(t, ErrBadOrder, func() { DeleteArray(s, a) })
	DeleteArray(s, b)
	DeleteArray(s, a)
	assert.Zero(t, s.UsedSize())
}

func TestNewArray_SizeOverflow(t *testing.T) {
	s := newTestStack(t, 4*KB, PolicyDefault)

	catchFault(t, ErrInvalidArgument, func() { NewArray[int64](s, math.MaxInt/8+1) })
}

func TestView_Delegation(t *testing.T) {
	s := newTestStack(t, 4*KB, PolicyDefault)
	v := NewView[vec3](s)

	require.Same(t, s, v.Stack())
	assert.Equal(t, s.TotalSize(), v.TotalSize())
	assert.Equal(t, s.DebugName(), v.DebugName())

	p := v.NewValue(vec3{X: 1})
	assert.Equal(t, 1.0, p.Get().X)
	assert.Equal(t, s.UsedSize(), v.UsedSize())

	arr := v.NewArray(3)
	assert.Equal(t, 3, arr.Len())

	v.DeleteArray(arr)
	v.Delete(p)
	assert.Zero(t, v.UsedSize())

	q := v.New()
	assert.Equal(t, vec3{}, *q.Get())
	v.Reset()
	assert.Zero(t, v.UsedSize())
}
