package Trees

import (
	"bytes"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpLoad(t *testing.T) {
	tree := New[int](uint32(0))
	for range tAddN {
		tree.Update(rg.Intn(tAddValRange))
	}
	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	got, err := Load[int, uint32](&buf)
	require.NoError(t, err)
	assert.Equal(t, tree.Size(), got.Size())
	assert.Equal(t, tree.Height(), got.Height())
	assert.Equal(t, tree.all(), got.all())
	assert.False(t, got.Corrupt())
}
func TestDumpLoad_FullWidth(t *testing.T) {
	// 255 nodes is every index S=uint8 can address.
	a := make([]int, 255)
	for i := range a {
		a[i] = i * 3
	}
	tree := From[int, uint8](a, true)
	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	got, err := Load[int, uint8](&buf)
	require.NoError(t, err)
	assert.Equal(t, uint(255), got.Size())
	assert.Equal(t, a, got.all())
	assert.False(t, got.Corrupt())
}
func TestDumpLoad_Empty(t *testing.T) {
	tree := New[int](uint8(0))
	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	assert.Equal(t, int(unsafe.Sizeof(uint8(0))), buf.Len())
	got, err := Load[int, uint8](&buf)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	require.NoError(t, got.Insert(1))
	assert.True(t, got.Has(1))
}
func TestDump_Layout(t *testing.T) {
	tree := From[int16, uint16]([]int16{1, 2, 3}, true)
	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	b := buf.Bytes()
	require.Len(t, b, 2+12+6)
	assert.EqualValues(t, 3, *(*uint16)(unsafe.Pointer(&b[0])))
	hdr := unsafe.Slice((*uint16)(unsafe.Pointer(&b[2])), 6)
	assert.Equal(t, []uint16{2, 3, 0, 0, 0, 0}, slices.Clone(hdr))
	vals := unsafe.Slice((*int16)(unsafe.Pointer(&b[14])), 3)
	assert.Equal(t, []int16{2, 1, 3}, slices.Clone(vals))
}

// raw builds a dump image from already encoded header words and
// values.
func raw(words []uint16, vals []int16) *bytes.Buffer {
	var buf bytes.Buffer
	buf.Write(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), 2*len(words)))
	buf.Write(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vals))), 2*len(vals)))
	return &buf
}

func TestLoad_BadHeader(t *testing.T) {
	for name, buf := range map[string]*bytes.Buffer{
		"backward":    raw([]uint16{2, 1, 0, 0, 0}, []int16{7, 8}),
		"self":        raw([]uint16{2, 0, 2, 2, 0}, []int16{7, 8}),
		"outOfRange":  raw([]uint16{1, 2, 0}, []int16{7}),
		"usedTwice":   raw([]uint16{3, 2, 2, 0, 0, 0, 0}, []int16{7, 8, 9}),
		"unreachable": raw([]uint16{2, 0, 0, 0, 0}, []int16{7, 8}),
	} {
		_, err := Load[int16, uint16](buf)
		assert.ErrorIs(t, err, ErrBadDump, name)
	}
}
func TestLoad_Truncated(t *testing.T) {
	tree := From[int16, uint16]([]int16{1, 2, 3, 4, 5}, true)
	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	half := bytes.NewReader(buf.Bytes()[:buf.Len()/2])
	_, err := Load[int16, uint16](half)
	assert.Error(t, err)
}

type pt struct {
	x, y int32
}

func (p pt) LessThan(o pt) bool {
	return p.x < o.x
}
func (p pt) Equals(o pt) bool {
	return p.x == o.x
}

func TestDumpLoadCustom(t *testing.T) {
	tree := NewCustom[pt](uint8(0))
	for i := int32(0); i < 50; i++ {
		require.NoError(t, tree.Insert(pt{x: i, y: -i}))
	}
	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	got, err := LoadCustom[pt, uint8](&buf)
	require.NoError(t, err)
	assert.Equal(t, tree.Size(), got.Size())
	assert.False(t, got.Corrupt())
	if p := got.Get(pt{x: 7}); assert.NotNil(t, p) {
		assert.EqualValues(t, -7, p.y)
	}
}
