// basisrotation.go
package qnull

import (
	"fmt"
	"math"
	"math/cmplx"
)

const unitaryTolerance = 1e-4

/*
BasisRotation performs the single-particle basis change described by a
unitary transformation matrix, decomposed into phase shifts and two-wire
Givens rotations.
*/
type BasisRotation struct {
	wires   Wires
	unitary [][]complex128
}

/*
NewBasisRotation validates and builds the template. The matrix must be
square and, when check is set, unitary within a small tolerance; at least
two wires are required. All validation happens at construction time.
*/
func NewBasisRotation(wires Wires, unitary [][]complex128, check bool) (*BasisRotation, error) {
	rows := len(unitary)
	for _, row := range unitary {
		if len(row) != rows {
			return nil, fmt.Errorf("the unitary matrix should be of shape NxN, got (%d, %d)", rows, len(row))
		}
	}

	if check && !isUnitary(unitary) {
		return nil, fmt.Errorf("the provided transformation matrix should be unitary")
	}

	if wires.Len() < 2 {
		return nil, fmt.Errorf("this template requires at least two wires, got %d", wires.Len())
	}

	return &BasisRotation{wires: wires, unitary: unitary}, nil
}

func (b *BasisRotation) Name() string { return "BasisRotation" }
func (b *BasisRotation) Wires() Wires { return b.wires }

func (b *BasisRotation) HasDecomposition() bool { return true }

/*
Decomposition expands the rotation into one phase shift per wire plus one
two-wire excitation per Givens rotation, with a trailing phase shift
whenever a rotation carries a residual phase.
*/
func (b *BasisRotation) Decomposition() []Operation {
	phases, rotations := givensDecomposition(b.unitary)

	var ops []Operation
	for i, phase := range phases {
		ops = append(ops, NewGate("PhaseShift", Wires{b.wires[i]}, cmplx.Phase(phase)))
	}
	for _, g := range rotations {
		theta := math.Acos(clamp(real(g.mat[1][1])))
		phi := cmplx.Phase(g.mat[0][0])

		ops = append(ops, NewGate("SingleExcitation",
			Wires{b.wires[g.row], b.wires[g.col]}, 2*theta))
		if math.Abs(phi) > 1e-9 {
			ops = append(ops, NewGate("PhaseShift", Wires{b.wires[g.row]}, phi))
		}
	}
	return ops
}

func isUnitary(m [][]complex128) bool {
	n := len(m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum complex128
			for k := 0; k < n; k++ {
				sum += m[i][k] * cmplx.Conj(m[j][k])
			}
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(sum-want) > unitaryTolerance {
				return false
			}
		}
	}
	return true
}

// givensRotation is a 2x2 rotation acting on the (row, col) plane.
type givensRotation struct {
	mat      [2][2]complex128
	row, col int
}

/*
givensDecomposition factors a unitary into n diagonal phases and
n(n-1)/2 Givens rotations by eliminating the subdiagonal column by
column. Rotations with zero angle are still emitted so the decomposition
size is a pure function of the dimension.
*/
func givensDecomposition(u [][]complex128) ([]complex128, []givensRotation) {
	n := len(u)
	m := make([][]complex128, n)
	for i := range m {
		m[i] = make([]complex128, n)
		copy(m[i], u[i])
	}

	var rotations []givensRotation
	for j := 0; j < n-1; j++ {
		for i := n - 1; i > j; i-- {
			a := m[i-1][j]
			b := m[i][j]
			r := math.Hypot(cmplx.Abs(a), cmplx.Abs(b))

			var c, s complex128 = 1, 0
			if r > 1e-12 {
				c = a / complex(r, 0)
				s = b / complex(r, 0)
			}

			// Apply [[c*, s*], [-s, c]] to rows i-1 and i, zeroing m[i][j].
			for k := j; k < n; k++ {
				top := cmplx.Conj(c)*m[i-1][k] + cmplx.Conj(s)*m[i][k]
				bot := -s*m[i-1][k] + c*m[i][k]
				m[i-1][k] = top
				m[i][k] = bot
			}
			rotations = append(rotations, givensRotation{
				mat: [2][2]complex128{
					{cmplx.Conj(c), cmplx.Conj(s)},
					{-s, c},
				},
				row: i - 1,
				col: i,
			})
		}
	}

	phases := make([]complex128, n)
	for i := 0; i < n; i++ {
		phases[i] = m[i][i]
	}
	return phases, rotations
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

var _ Decomposer = (*BasisRotation)(nil)
