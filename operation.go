// operation.go
package qnull

// Operation is a named action over a subset of wires. Concrete variants
// are Gate, Controlled, Adjoint, Barrier and the named composites built by
// CNOT, CZ and Toffoli.
type Operation interface {
	Name() string
	Wires() Wires
}

// Decomposer is implemented by operations that can expand into a sequence
// of more elementary operations.
type Decomposer interface {
	HasDecomposition() bool
	Decomposition() []Operation
}

func hasDecomposition(op Operation) bool {
	d, ok := op.(Decomposer)
	return ok && d.HasDecomposition()
}

// Gate is a plain named gate with optional rotation parameters.
type Gate struct {
	name   string
	wires  Wires
	params []float64
}

func NewGate(name string, wires Wires, params ...float64) Gate {
	return Gate{name: name, wires: wires, params: params}
}

func (g Gate) Name() string      { return g.name }
func (g Gate) Wires() Wires      { return g.wires }
func (g Gate) Params() []float64 { return g.params }

/*
Controlled conditions an inner operation on one or more control wires.
The wrapped operation keeps its identity; the modifier only adds
control semantics on top of it.
*/
type Controlled struct {
	base         Operation
	controlWires Wires
}

func NewControlled(base Operation, controlWires Wires) Controlled {
	return Controlled{base: base, controlWires: controlWires}
}

func (c Controlled) Name() string        { return "C(" + c.base.Name() + ")" }
func (c Controlled) Wires() Wires        { return c.controlWires.Union(c.base.Wires()) }
func (c Controlled) Base() Operation     { return c.base }
func (c Controlled) ControlWires() Wires { return c.controlWires }

// Adjoint wraps an operation with inverse semantics.
type Adjoint struct {
	base Operation
}

func NewAdjoint(base Operation) Adjoint {
	return Adjoint{base: base}
}

func (a Adjoint) Name() string    { return "Adj(" + a.base.Name() + ")" }
func (a Adjoint) Wires() Wires    { return a.base.Wires() }
func (a Adjoint) Base() Operation { return a.base }

// Barrier is a zero-cost structural marker. It consumes no resources and
// is skipped entirely by resource accounting.
type Barrier struct {
	wires Wires
}

func NewBarrier(wires Wires) Barrier {
	return Barrier{wires: wires}
}

func (b Barrier) Name() string { return "Barrier" }
func (b Barrier) Wires() Wires { return b.wires }

/*
composite is a named multi-wire gate that is represented internally via
modifier composition but must be treated atomically. It exposes a base for
decomposition purposes, yet the resource accountant stops unwrapping at it
so the gate is counted under its own name.
*/
type composite struct {
	name  string
	base  Operation
	wires Wires
}

func (c composite) Name() string            { return c.name }
func (c composite) Wires() Wires            { return c.wires }
func (c composite) Base() Operation         { return c.base }
func (c composite) HasDecomposition() bool  { return true }
func (c composite) Decomposition() []Operation {
	return []Operation{c.base}
}

// CNOT is a controlled PauliX counted as a single two-wire gate.
func CNOT(control, target string) Operation {
	return composite{
		name:  "CNOT",
		base:  NewControlled(NewGate("PauliX", Wires{target}), Wires{control}),
		wires: Wires{control, target},
	}
}

// CZ is a controlled PauliZ counted as a single two-wire gate.
func CZ(control, target string) Operation {
	return composite{
		name:  "CZ",
		base:  NewControlled(NewGate("PauliZ", Wires{target}), Wires{control}),
		wires: Wires{control, target},
	}
}

// Toffoli is a doubly-controlled PauliX counted as a single three-wire gate.
func Toffoli(control1, control2, target string) Operation {
	return composite{
		name:  "Toffoli",
		base:  NewControlled(NewGate("PauliX", Wires{target}), Wires{control1, control2}),
		wires: Wires{control1, control2, target},
	}
}
