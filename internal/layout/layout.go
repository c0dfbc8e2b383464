// Package layout describes packed EEPROM structures as explicit field tables
// and provides the byte order normalization driven by those tables.
package layout

import (
	"fmt"
	"math/bits"
	"sort"
)

// Field describes one field of a packed structure. Arrays are described by
// a single field with a Count greater than one, arrays of structures by one
// field per member using Stride to step between the array elements.
type Field struct {
	Name   string
	Offset int // byte offset of the first element
	Width  int // element width in bytes: 1, 2 or 4
	Count  int // number of elements, 0 is treated as 1
	Stride int // distance in bytes between elements, 0 means Width
}

// Layout is the description of a packed EEPROM structure.
type Layout struct {
	Name   string
	Size   int // total structure size in bytes
	Fields []Field
}

// span describes a single byte range occupied by a field element.
type span struct {
	name  string
	start int
	end   int
	width int
}

func (f Field) count() int {
	if f.Count == 0 {
		return 1
	}
	return f.Count
}

func (f Field) stride() int {
	if f.Stride == 0 {
		return f.Width
	}
	return f.Stride
}

// Elements returns the byte offsets of all elements of the field.
func (f Field) Elements() []int {
	n := f.count()
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = f.Offset + i*f.stride()
	}
	return offsets
}

// Field returns the field with the given name.
func (l Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Check verifies that the fields tile the whole structure without gaps or
// overlaps and that all element widths are supported.
func (l Layout) Check() error {
	if l.Size <= 0 || l.Size%2 != 0 {
		return fmt.Errorf("%w: layout %s has size %d", ErrOddSize, l.Name, l.Size)
	}

	var spans []span
	for _, f := range l.Fields {
		switch f.Width {
		case 1, 2, 4:
		default:
			return fmt.Errorf("%w: field %s has width %d", ErrInvalidField, f.Name, f.Width)
		}
		if f.Count < 0 || f.Stride < 0 || (f.Stride != 0 && f.Stride < f.Width) {
			return fmt.Errorf("%w: field %s has count %d and stride %d", ErrInvalidField, f.Name, f.Count, f.Stride)
		}
		for _, offset := range f.Elements() {
			if f.Width > 1 && offset%2 != 0 {
				return fmt.Errorf("%w: field %s element at %d is not word aligned", ErrInvalidField, f.Name, offset)
			}
			spans = append(spans, span{name: f.Name, start: offset, end: offset + f.Width, width: f.Width})
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	next := 0
	for _, s := range spans {
		switch {
		case s.start > next:
			return fmt.Errorf("%w: %d bytes before field %s at %d", ErrGap, s.start-next, s.name, s.start)
		case s.start < next:
			return fmt.Errorf("%w: field %s at %d", ErrOverlap, s.name, s.start)
		}
		next = s.end
	}
	if next != l.Size {
		return fmt.Errorf("%w: fields end at %d, structure size is %d", ErrGap, next, l.Size)
	}
	return nil
}

// SwapWords reverses the two bytes of every 16-bit word of the buffer in place.
func SwapWords(data []byte) {
	for i := 0; i+1 < len(data); i += 2 {
		data[i], data[i+1] = data[i+1], data[i]
	}
}

// SwapWide exchanges the two 16-bit words of every 32-bit element described
// by the layout in place. After SwapWords this completes the conversion of
// a structure written through a word interface of the opposite byte order.
// Applying SwapWide twice restores the original buffer.
func (l Layout) SwapWide(data []byte) {
	for _, f := range l.Fields {
		if f.Width != 4 {
			continue
		}
		for _, offset := range f.Elements() {
			if offset+4 > len(data) {
				continue
			}
			w := data[offset : offset+4]
			w[0], w[1], w[2], w[3] = w[2], w[3], w[0], w[1]
		}
	}
}

// Swap16 returns the 16-bit value with its two bytes exchanged.
func Swap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}
