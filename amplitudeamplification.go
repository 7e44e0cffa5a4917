// amplitudeamplification.go
package qnull

import (
	"errors"
	"math"
	"math/cmplx"
)

/*
Reflection reflects the state about the subspace prepared by u, rotated
by the angle alpha. It is carried as a single named operation; expanding
it into elementary gates is outside the scope of this library.
*/
type Reflection struct {
	u     Operation
	alpha float64
	wires Wires
}

func NewReflection(u Operation, alpha float64, reflectionWires Wires) Reflection {
	if reflectionWires == nil {
		reflectionWires = u.Wires()
	}
	return Reflection{u: u, alpha: alpha, wires: reflectionWires}
}

func (r Reflection) Name() string   { return "Reflection" }
func (r Reflection) Wires() Wires   { return r.wires }
func (r Reflection) Alpha() float64 { return r.alpha }

/*
AmplitudeAmplification amplifies the amplitude of the state marked by the
oracle o inside the superposition prepared by u. With fixed-point mode
enabled, the amplification uses the phase angles of fixed-point quantum
search and an auxiliary work wire.
*/
type AmplitudeAmplification struct {
	u, o            Operation
	iters           int
	fixedPoint      bool
	workWire        string
	pMin            float64
	reflectionWires Wires
	wires           Wires
}

// AmplificationOption configures the template.
type AmplificationOption func(*AmplitudeAmplification)

// WithIterations sets the number of amplification rounds.
func WithIterations(iters int) AmplificationOption {
	return func(a *AmplitudeAmplification) { a.iters = iters }
}

// WithFixedPoint enables fixed-point quantum search. A work wire must be
// supplied with WithWorkWire.
func WithFixedPoint() AmplificationOption {
	return func(a *AmplitudeAmplification) { a.fixedPoint = true }
}

// WithWorkWire names the auxiliary wire used by fixed-point search.
func WithWorkWire(wire string) AmplificationOption {
	return func(a *AmplitudeAmplification) { a.workWire = wire }
}

// WithPMin sets the minimal success probability of fixed-point search.
func WithPMin(pMin float64) AmplificationOption {
	return func(a *AmplitudeAmplification) { a.pMin = pMin }
}

// WithReflectionWires restricts the reflection to a subset of u's wires.
func WithReflectionWires(wires Wires) AmplificationOption {
	return func(a *AmplitudeAmplification) { a.reflectionWires = wires }
}

/*
NewAmplitudeAmplification validates and builds the template. Validation
happens here, never at execution time: fixed-point search without a work
wire, or a work wire overlapping the oracle's wires, are caller-authoring
mistakes and rejected immediately.
*/
func NewAmplitudeAmplification(u, o Operation, opts ...AmplificationOption) (*AmplitudeAmplification, error) {
	a := &AmplitudeAmplification{u: u, o: o, iters: 1, pMin: 0.9}
	for _, opt := range opts {
		opt(a)
	}

	if a.fixedPoint && a.workWire == "" {
		return nil, errors.New("work wire must be specified if fixed-point search is enabled")
	}
	if a.fixedPoint && o.Wires().Contains(a.workWire) {
		return nil, errors.New("work wire must be different from the wires of the oracle")
	}

	if a.reflectionWires == nil {
		a.reflectionWires = u.Wires()
	}
	a.wires = u.Wires()
	if a.fixedPoint {
		a.wires = a.wires.Union(Wires{a.workWire})
	}
	return a, nil
}

func (a *AmplitudeAmplification) Name() string { return "AmplitudeAmplification" }
func (a *AmplitudeAmplification) Wires() Wires { return a.wires }

func (a *AmplitudeAmplification) HasDecomposition() bool { return true }

// Decomposition expands the template into oracle applications and
// reflections, alternating per round.
func (a *AmplitudeAmplification) Decomposition() []Operation {
	var ops []Operation

	if a.fixedPoint {
		alphas, betas := fixedPointAngles(a.iters, a.pMin)
		work := Wires{a.workWire}
		for i := 0; i < a.iters/2; i++ {
			ops = append(ops,
				NewGate("Hadamard", work),
				NewControlled(a.o, work),
				NewGate("Hadamard", work),
				NewGate("PhaseShift", work, betas[i]),
				NewGate("Hadamard", work),
				NewControlled(a.o, work),
				NewGate("Hadamard", work),
				NewReflection(a.u, -alphas[i], a.reflectionWires),
			)
		}
		return ops
	}

	for i := 0; i < a.iters; i++ {
		ops = append(ops, a.o, NewReflection(a.u, math.Pi, a.reflectionWires))
	}
	return ops
}

/*
fixedPointAngles returns the phase angles of fixed-point amplitude
amplification, computed from equation (11) of arXiv:1409.3305. The
intermediate gamma is complex because 1/delta exceeds 1.
*/
func fixedPointAngles(iters int, pMin float64) (alphas, betas []float64) {
	delta := math.Sqrt(1 - pMin)
	gamma := 1 / cmplx.Cos(cmplx.Acos(complex(1/delta, 0))/complex(float64(iters), 0))
	root := cmplx.Sqrt(1 - gamma*gamma)

	n := iters / 2
	alphas = make([]float64, n)
	for j := 1; j <= n; j++ {
		tan := cmplx.Tan(complex(2*math.Pi*float64(j)/float64(iters), 0))
		alphas[j-1] = real(2 * cmplx.Atan(1/(tan*root)))
	}
	betas = make([]float64, n)
	for j := 1; j <= n; j++ {
		betas[j-1] = -alphas[n-j]
	}
	return alphas, betas
}

var _ Decomposer = (*AmplitudeAmplification)(nil)
