package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrNegative is returned for negative counts.
	ErrNegative = errors.New("conv: negative value")
	// ErrOverflow is returned when a result does not fit the target type.
	ErrOverflow = errors.New("conv: integer overflow")
)

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d cannot be converted to int64", ErrOverflow, v)
	}
	return int64(v), nil
}

// MulSize returns count*size as a byte length.
// It fails for a negative count or when the product overflows uintptr.
func MulSize(count int, size uintptr) (uintptr, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: count %d", ErrNegative, count)
	}
	hi, lo := bits.Mul64(uint64(count), uint64(size))
	if hi != 0 || lo > uint64(^uintptr(0)) {
		return 0, fmt.Errorf("%w: %d * %d bytes", ErrOverflow, count, size)
	}
	return uintptr(lo), nil
}
