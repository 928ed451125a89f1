package inspect

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// BytesPerRow is the number of bytes Dump prints per line.
const BytesPerRow = 5

// ErrOutOfRange is returned for an index outside the viewed bytes.
var ErrOutOfRange = errors.New("inspect: index out of range")

// View is a read-write window over a byte image.
type View struct {
	name string
	data []byte
}

// Of views the storage of *p.
func Of[T any](p *T) View {
	size := unsafe.Sizeof(*p)
	var data []byte
	if size > 0 {
		data = unsafe.Slice((*byte)(unsafe.Pointer(p)), size)
	}
	return View{
		name: reflect.TypeFor[T]().String(),
		data: data,
	}
}

// FromBytes views b under the given name.
func FromBytes(name string, b []byte) View {
	return View{name: name, data: b}
}

// Name returns the name the view was created with.
func (v View) Name() string {
	return v.name
}

// Size returns the number of viewed bytes.
func (v View) Size() int {
	return len(v.data)
}

// At returns the byte at index i.
func (v View) At(i int) (byte, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(v.data))
	}
	return v.data[i], nil
}

// Set overwrites the byte at index i.
func (v View) Set(i int, b byte) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(v.data))
	}
	v.data[i] = b
	return nil
}

// Dump writes a header line followed by the bytes in hex, BytesPerRow per
// line, each line prefixed with the address of its first byte.
func (v View) Dump(w io.Writer) error {
	_, err := io.WriteString(w, v.format(true))
	return err
}

// String is Dump without addresses, stable across runs.
func (v View) String() string {
	return v.format(false)
}

func (v View) format(addresses bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "memory view for %s (%s)\n", v.name, humanize.IBytes(uint64(len(v.data))))

	for row := 0; row < len(v.data); row += BytesPerRow {
		end := min(row+BytesPerRow, len(v.data))
		if addresses {
			fmt.Fprintf(&sb, "%p: ", &v.data[row])
		} else {
			fmt.Fprintf(&sb, "%04d: ", row)
		}
		for i, b := range v.data[row:end] {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02x", b)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// AddressInfo describes where a value lives.
type AddressInfo struct {
	Address uintptr
	Text    string
	// Wide reports a textual address longer than 10 characters, i.e. one
	// that does not fit a 32-bit "0x" form.
	Wide bool
}

// AddressOf returns the address of *p.
func AddressOf[T any](p *T) AddressInfo {
	text := fmt.Sprintf("%p", p)
	return AddressInfo{
		Address: uintptr(unsafe.Pointer(p)),
		Text:    text,
		Wide:    len(text) > 10,
	}
}
