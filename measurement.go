// measurement.go
package qnull

// MeasurementKind tags the variant of a measurement specification.
type MeasurementKind int

const (
	ExpectationKind MeasurementKind = iota
	VarianceKind
	SampleKind
	ProbabilityKind
	StateKind
	DensityMatrixKind
	CountsKind
	ClassicalShadowKind
)

// Observable is a named operator with a known eigenvalue enumeration.
type Observable struct {
	Name    string
	Wires   Wires
	Eigvals []float64
}

// PauliZObs is the single-wire PauliZ observable with eigenvalues ±1.
func PauliZObs(wire string) Observable {
	return Observable{Name: "PauliZ", Wires: Wires{wire}, Eigvals: []float64{1, -1}}
}

/*
Measurement is a tagged measurement specification. Each kind defines a
shape function over (shots, wire count) and a numeric type; the counts
kind additionally carries an optional observable, an all-outcomes flag and
a mid-circuit measurement marker.
*/
type Measurement struct {
	kind        MeasurementKind
	wires       Wires
	obs         *Observable
	allOutcomes bool
	midMeasure  bool
}

// MeasurementOption configures optional measurement fields.
type MeasurementOption func(*Measurement)

// WithObservable attaches an observable to the measurement.
func WithObservable(obs Observable) MeasurementOption {
	return func(m *Measurement) {
		m.obs = &obs
		if len(m.wires) == 0 {
			m.wires = obs.Wires
		}
	}
}

// WithAllOutcomes requests that every possible outcome appear in a counts
// histogram, including outcomes that were never observed.
func WithAllOutcomes() MeasurementOption {
	return func(m *Measurement) { m.allOutcomes = true }
}

// WithMidMeasure marks the measurement as sourced from a mid-circuit
// measurement value.
func WithMidMeasure() MeasurementOption {
	return func(m *Measurement) { m.midMeasure = true }
}

// Expval measures the expectation value of an observable.
func Expval(obs Observable) Measurement {
	return Measurement{kind: ExpectationKind, wires: obs.Wires, obs: &obs}
}

// Variance measures the variance of an observable.
func Variance(obs Observable) Measurement {
	return Measurement{kind: VarianceKind, wires: obs.Wires, obs: &obs}
}

// Probs measures computational-basis probabilities, optionally restricted
// to a subset of wires.
func Probs(wires ...string) Measurement {
	return Measurement{kind: ProbabilityKind, wires: Wires(wires)}
}

// StateMeasurement returns the full state vector.
func StateMeasurement() Measurement {
	return Measurement{kind: StateKind}
}

// DensityMatrixOf returns the reduced density matrix over the given wires.
func DensityMatrixOf(wires ...string) Measurement {
	return Measurement{kind: DensityMatrixKind, wires: Wires(wires)}
}

// SampleOf draws computational-basis samples, optionally restricted.
func SampleOf(wires ...string) Measurement {
	return Measurement{kind: SampleKind, wires: Wires(wires)}
}

// CountsOf builds a shot histogram measurement.
func CountsOf(opts ...MeasurementOption) Measurement {
	m := Measurement{kind: CountsKind}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Shadow measures a classical shadow over the given wires.
func Shadow(wires ...string) Measurement {
	return Measurement{kind: ClassicalShadowKind, wires: Wires(wires)}
}

func (m Measurement) Kind() MeasurementKind   { return m.kind }
func (m Measurement) Wires() Wires            { return m.wires }
func (m Measurement) Observable() *Observable { return m.obs }
func (m Measurement) AllOutcomes() bool       { return m.allOutcomes }
func (m Measurement) OnMidMeasure() bool      { return m.midMeasure }

// EffectiveWires is the measurement's own wire count when explicitly
// restricted, else the device-wide wire count.
func (m Measurement) EffectiveWires(numDeviceWires int) int {
	if len(m.wires) > 0 {
		return len(m.wires)
	}
	return numDeviceWires
}

// NumericType is the element type a real simulation would produce.
func (m Measurement) NumericType() DType {
	switch m.kind {
	case StateKind, DensityMatrixKind:
		return Complex128
	case ClassicalShadowKind:
		return Int8
	case SampleKind:
		if m.obs == nil {
			return Int64
		}
		return Float64
	case CountsKind:
		return Int64
	default:
		return Float64
	}
}

// Shape is the result shape for the given shot count and wire count.
// Counts measurements have no array shape and report nil.
func (m Measurement) Shape(shots, numWires int) []int {
	switch m.kind {
	case ExpectationKind, VarianceKind:
		return []int{}
	case ProbabilityKind, StateKind:
		return []int{1 << numWires}
	case DensityMatrixKind:
		return []int{1 << numWires, 1 << numWires}
	case SampleKind:
		if m.obs != nil {
			return []int{shots}
		}
		return []int{shots, numWires}
	case ClassicalShadowKind:
		return []int{2, shots, numWires}
	default:
		return nil
	}
}

// MeasurementShape computes the exact output dims a real simulation would
// produce, prepending the batch dimension when broadcasting.
func MeasurementShape(m Measurement, numDeviceWires, shots, batchSize int) []int {
	dims := m.Shape(shots, m.EffectiveWires(numDeviceWires))
	if batchSize > 0 {
		dims = append([]int{batchSize}, dims...)
	}
	return dims
}
