package layout

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

type plain struct {
	A int32
	B [4]float64
	C struct{ D uint8 }
}

type withString struct {
	ID   int
	Name string
}

type nested struct {
	Inner [2]withString
}

func TestHasPointers(t *testing.T) {
	assert.False(t, HasPointers[int32]())
	assert.False(t, HasPointers[complex128]())
	assert.False(t, HasPointers[plain]())
	assert.False(t, HasPointers[[0]*int]())
	assert.False(t, HasPointers[struct{}]())

	assert.True(t, HasPointers[*int]())
	assert.True(t, HasPointers[string]())
	assert.True(t, HasPointers[[]byte]())
	assert.True(t, HasPointers[map[int]int]())
	assert.True(t, HasPointers[any]())
	assert.True(t, HasPointers[unsafe.Pointer]())
	assert.True(t, HasPointers[func()]())
	assert.True(t, HasPointers[withString]())
	assert.True(t, HasPointers[nested]())
}

func TestHasPointers_Cached(t *testing.T) {
	first := HasPointers[nested]()
	second := HasPointers[nested]()
	assert.Equal(t, first, second)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int32", TypeName[int32]())
	assert.Equal(t, "layout.plain", TypeName[plain]())
}
