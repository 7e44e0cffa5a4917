// tensor.go
package qnull

// Interface selects the array backend a result is materialized in.
type Interface string

const (
	// NumericInterface is the default dense numeric backend.
	NumericInterface Interface = "numeric"

	// AutogradInterface is the gradient-tracking backend. Values built
	// for it must stay distinguishable per call, so it never shares
	// cached arrays.
	AutogradInterface Interface = "autograd"
)

// Tracking reports whether the backend tracks references for gradient
// bookkeeping.
func (i Interface) Tracking() bool {
	return i == AutogradInterface
}

// DType is a tensor element type.
type DType int

const (
	Float64 DType = iota
	Complex128
	Int64
	Int8
)

/*
Tensor is a dense n-dimensional array. Exactly one of the backing slices
is non-nil, matching DType. A nil Shape means a scalar.
*/
type Tensor struct {
	Shape     []int
	DType     DType
	Like      Interface
	Floats    []float64
	Complexes []complex128
	Ints      []int64
	Bytes     []int8
}

func shapeSize(shape []int) int {
	size := 1
	for _, d := range shape {
		size *= d
	}
	return size
}

// Zeros builds an all-zero tensor of the given shape and element type.
func Zeros(shape []int, dtype DType, like Interface) *Tensor {
	t := &Tensor{Shape: shape, DType: dtype, Like: like}
	size := shapeSize(shape)
	switch dtype {
	case Complex128:
		t.Complexes = make([]complex128, size)
	case Int64:
		t.Ints = make([]int64, size)
	case Int8:
		t.Bytes = make([]int8, size)
	default:
		t.Floats = make([]float64, size)
	}
	return t
}

// Scalar wraps a plain number as a zero-dimensional tensor.
func Scalar(v float64, like Interface) *Tensor {
	return &Tensor{Shape: []int{}, DType: Float64, Like: like, Floats: []float64{v}}
}

// BasisState is the all-zero computational basis state over numWires
// wires: amplitude 1 on index 0, 0 elsewhere.
func BasisState(numWires int, like Interface) *Tensor {
	t := Zeros([]int{1 << numWires}, Float64, like)
	t.Floats[0] = 1
	return t
}

// Size is the total element count.
func (t *Tensor) Size() int {
	return shapeSize(t.Shape)
}

// ZerosLike builds a fresh zero value structurally matching v. Tensors map
// to new zero tensors, histograms to zero-valued histograms, sequences are
// handled elementwise.
func ZerosLike(v any) any {
	switch t := v.(type) {
	case *Tensor:
		return Zeros(t.Shape, t.DType, t.Like)
	case map[string]int:
		out := make(map[string]int, len(t))
		for k := range t {
			out[k] = 0
		}
		return out
	case []map[string]int:
		out := make([]map[string]int, len(t))
		for i, m := range t {
			out[i] = ZerosLike(m).(map[string]int)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = ZerosLike(e)
		}
		return out
	default:
		return v
	}
}
