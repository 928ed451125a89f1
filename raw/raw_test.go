package raw

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/safemem/testutil"
)

// padded has 3 bytes of padding after A on every supported platform.
type padded struct {
	A uint8
	B uint32
}

type withPointer struct {
	N    int
	Next *withPointer
}

// paddedPointer has padding between B and C.
type paddedPointer struct {
	P *int
	B byte
	C int64
}

// dirtyPadding sets every padding byte of v to 0xFF and returns their count.
func dirtyPadding(v *paddedPointer) int {
	img := Image(v)
	n := 0
	for i := unsafe.Offsetof(v.B) + 1; i < unsafe.Offsetof(v.C); i++ {
		img[i] = 0xFF
		n++
	}
	return n
}

type fakeOwner[T any] struct {
	v     *T
	valid bool
}

func (o *fakeOwner[T]) Valid() bool { return o.valid }
func (o *fakeOwner[T]) Mut() *T     { return o.v }

func TestFill_Exact(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 8, 63, 64, 65, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			buf := make([]byte, n+16)
			FillSlice(buf, 0x11)

			got := Fill(unsafe.Pointer(&buf[8]), 0xAB, uintptr(n))
			assert.Equal(t, uintptr(n), got)

			for i, b := range buf {
				if i >= 8 && i < 8+n {
					require.Equal(t, byte(0xAB), b, "inside range at %d", i)
				} else {
					require.Equal(t, byte(0x11), b, "outside range at %d", i)
				}
			}
		})
	}
}

func TestFill_RandomSpans(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 200 {
		buf := rng.Bytes(128)
		before := append([]byte(nil), buf...)
		off, n := rng.Span(len(buf))
		b := rng.Byte()

		var p unsafe.Pointer
		if off < len(buf) {
			p = unsafe.Pointer(&buf[off])
		}
		require.Equal(t, uintptr(n), Fill(p, b, uintptr(n)))

		for i := range buf {
			if i >= off && i < off+n {
				require.Equal(t, b, buf[i])
			} else {
				require.Equal(t, before[i], buf[i])
			}
		}
	}
}

func TestFill_ZeroLengthNilPointer(t *testing.T) {
	assert.Equal(t, uintptr(0), Fill(nil, 0xFF, 0))
}

func TestFillSlice(t *testing.T) {
	assert.Equal(t, 0, FillSlice(nil, 1))

	buf := []byte{1, 2, 3, 4, 5}
	assert.Equal(t, 5, FillSlice(buf, 0))
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)

	assert.Equal(t, 5, FillSlice(buf, 9))
	assert.Equal(t, []byte{9, 9, 9, 9, 9}, buf)
}

func TestFillValue_WholeImageIncludingPadding(t *testing.T) {
	var v padded
	n := FillValue(&v, 0xFF)
	assert.Equal(t, unsafe.Sizeof(v), n)

	for _, b := range Image(&v) {
		assert.Equal(t, byte(0xFF), b)
	}
	assert.Equal(t, uint8(0xFF), v.A)
	assert.Equal(t, uint32(0xFFFFFFFF), v.B)
}

func TestZero(t *testing.T) {
	v := padded{A: 1, B: 2}
	FillValue(&v, 0x5A) // dirty the padding too

	assert.Equal(t, unsafe.Sizeof(v), Zero(&v))
	assert.Equal(t, padded{}, v)
	for _, b := range Image(&v) {
		assert.Zero(t, b)
	}
}

func TestZero_PointerTypeClearsPadding(t *testing.T) {
	v := paddedPointer{P: new(int), B: 1, C: 2}
	require.Positive(t, dirtyPadding(&v))

	assert.Equal(t, unsafe.Sizeof(v), Zero(&v))
	assert.Equal(t, paddedPointer{}, v)
	for i, b := range Image(&v) {
		assert.Zero(t, b, "byte %d", i)
	}
}

func TestFillMany_PointerTypeClearsPadding(t *testing.T) {
	s := []paddedPointer{{P: new(int), B: 1}, {P: new(int), C: 3}}
	for i := range s {
		dirtyPadding(&s[i])
	}

	assert.Equal(t, 2*unsafe.Sizeof(s[0]), FillMany(s, 0))
	for i := range s {
		assert.Equal(t, paddedPointer{}, s[i])
		for j, b := range Image(&s[i]) {
			assert.Zero(t, b, "element %d byte %d", i, j)
		}
	}
}

func TestZero_Idempotent(t *testing.T) {
	v := [4]uint64{1, 2, 3, 4}

	Zero(&v)
	once := append([]byte(nil), Image(&v)...)
	Zero(&v)
	assert.Equal(t, once, Image(&v))
}

func TestZeroBytes(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	assert.Equal(t, uintptr(2), ZeroBytes(unsafe.Pointer(&buf[1]), 2))
	assert.Equal(t, []byte{1, 0, 0, 4}, buf)
}

func TestFillValue_PointerTypes(t *testing.T) {
	v := withPointer{N: 3, Next: &withPointer{}}

	assert.PanicsWithError(t, ErrPointerType.Error()+": raw.withPointer", func() {
		FillValue(&v, 1)
	})
	assert.NotNil(t, v.Next, "a rejected fill must not write")

	assert.Equal(t, unsafe.Sizeof(v), Zero(&v))
	assert.Equal(t, withPointer{}, v)
}

func TestFillMany(t *testing.T) {
	s := []uint16{1, 2, 3}
	assert.Equal(t, uintptr(6), FillMany(s, 0x01))
	assert.Equal(t, []uint16{0x0101, 0x0101, 0x0101}, s)

	assert.Equal(t, uintptr(0), FillMany[uint16](nil, 1))

	ptrs := []*int{new(int), new(int)}
	assert.Panics(t, func() { FillMany(ptrs, 1) })
	assert.Equal(t, uintptr(2)*unsafe.Sizeof(ptrs[0]), FillMany(ptrs, 0))
	assert.Equal(t, []*int{nil, nil}, ptrs)
}

func TestFillOwned(t *testing.T) {
	v := int32(42)
	o := &fakeOwner[int32]{v: &v, valid: true}

	assert.Equal(t, uintptr(4), FillOwned[int32](o, 0))
	assert.Equal(t, int32(0), v)

	assert.Equal(t, uintptr(4), FillOwned[int32](o, 0xFF))
	assert.Equal(t, int32(-1), v)
}

func TestFillOwned_Invalid(t *testing.T) {
	o := &fakeOwner[int32]{}
	assert.Equal(t, uintptr(0), FillOwned[int32](o, 0xFF))
}

func TestImage(t *testing.T) {
	v := uint32(0)
	img := Image(&v)
	require.Len(t, img, 4)

	// The image aliases the value.
	FillSlice(img, 0x7F)
	assert.Equal(t, uint32(0x7F7F7F7F), v)

	var empty struct{}
	assert.Nil(t, Image(&empty))
}

func BenchmarkFillSlice(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			buf := make([]byte, size)
			b.ReportAllocs()
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				FillSlice(buf, 0xAB)
			}
		})
	}
}
