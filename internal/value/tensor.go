package value

import (
	"fmt"
	"strings"
)

// Tensor is an n-dimensional rectangular array of Values with per-
// dimension strides, shared by handle and copied on assignment into a
// binding (spec.md §3).
type Tensor struct {
	Dims    []int
	Strides []int
	Data    []Value
}

// NewTensor allocates a tensor of the given shape, filled with Null.
func NewTensor(dims []int) *Tensor {
	size := 1
	strides := make([]int, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = size
		size *= dims[i]
	}
	data := make([]Value, size)
	for i := range data {
		data[i] = Null
	}
	return &Tensor{Dims: append([]int(nil), dims...), Strides: strides, Data: data}
}

// Clone deep-copies a tensor, including every element, so assignment
// never aliases (spec.md §3 copy semantics).
func (t *Tensor) Clone() *Tensor {
	if t == nil {
		return nil
	}
	data := make([]Value, len(t.Data))
	for i, v := range t.Data {
		data[i] = v.DeepCopy()
	}
	return &Tensor{
		Dims:    append([]int(nil), t.Dims...),
		Strides: append([]int(nil), t.Strides...),
		Data:    data,
	}
}

// Offset computes the flat data index for a set of per-dimension
// indices.
func (t *Tensor) Offset(idx []int) (int, error) {
	if len(idx) != len(t.Dims) {
		return 0, fmt.Errorf("tensor has %d dimensions, got %d indices", len(t.Dims), len(idx))
	}
	off := 0
	for i, ix := range idx {
		if ix < 0 || ix >= t.Dims[i] {
			return 0, fmt.Errorf("index %d out of range [0,%d) in dimension %d", ix, t.Dims[i], i)
		}
		off += ix * t.Strides[i]
	}
	return off, nil
}

// Get reads the element at idx.
func (t *Tensor) Get(idx []int) (Value, error) {
	off, err := t.Offset(idx)
	if err != nil {
		return Value{}, err
	}
	return t.Data[off], nil
}

// Set writes the element at idx.
func (t *Tensor) Set(idx []int, v Value) error {
	off, err := t.Offset(idx)
	if err != nil {
		return err
	}
	t.Data[off] = v
	return nil
}

// String renders a tensor for display, e.g. "[3](1, 10, 11)".
func (t *Tensor) String() string {
	var dims []string
	for _, d := range t.Dims {
		dims = append(dims, fmt.Sprintf("%d", d))
	}
	var elems []string
	for _, v := range t.Data {
		elems = append(elems, v.String())
	}
	return fmt.Sprintf("[%s](%s)", strings.Join(dims, "x"), strings.Join(elems, ", "))
}
