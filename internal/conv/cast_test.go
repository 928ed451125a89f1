package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64ToInt64(t *testing.T) {
	got, err := Uint64ToInt64(math.MaxInt64)
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	_, err = Uint64ToInt64(math.MaxInt64 + 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMulSize(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		size    uintptr
		want    uintptr
		wantErr error
	}{
		{name: "zero count", count: 0, size: 8, want: 0},
		{name: "zero size", count: 10, size: 0, want: 0},
		{name: "simple", count: 10, size: 4, want: 40},
		{name: "negative", count: -1, size: 4, wantErr: ErrNegative},
		{name: "overflow", count: math.MaxInt, size: 4, wantErr: ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MulSize(tt.count, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
