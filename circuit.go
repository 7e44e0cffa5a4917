// circuit.go
package qnull

/*
Circuit is an immutable record of operations and measurement
specifications over a set of wires. Circuits are owned by the caller; the
device only reads them.
*/
type Circuit struct {
	operations   []Operation
	measurements []Measurement
	wires        Wires
	shots        Shots
	batchSize    int
	trainable    int
}

// CircuitOption configures optional circuit fields.
type CircuitOption func(*Circuit)

// WithCircuitWires fixes the circuit's wire set explicitly instead of
// inferring it from operations and measurements.
func WithCircuitWires(wires Wires) CircuitOption {
	return func(c *Circuit) { c.wires = wires }
}

// WithCircuitShots sets the circuit's shot specification.
func WithCircuitShots(shots Shots) CircuitOption {
	return func(c *Circuit) { c.shots = shots }
}

// WithBatchSize requests parameter-broadcasted execution over n parameter
// sets.
func WithBatchSize(n int) CircuitOption {
	return func(c *Circuit) { c.batchSize = n }
}

// WithTrainableParams records how many parameters are trainable.
func WithTrainableParams(n int) CircuitOption {
	return func(c *Circuit) { c.trainable = n }
}

// NewCircuit builds a circuit. Unless fixed by WithCircuitWires, the wire
// set is the union of all operation and measurement wires in first-seen
// order.
func NewCircuit(operations []Operation, measurements []Measurement, opts ...CircuitOption) *Circuit {
	c := &Circuit{operations: operations, measurements: measurements}
	for _, opt := range opts {
		opt(c)
	}
	if c.wires == nil {
		wires := Wires{}
		for _, op := range operations {
			wires = wires.Union(op.Wires())
		}
		for _, m := range measurements {
			wires = wires.Union(m.Wires())
		}
		c.wires = wires
	}
	return c
}

func (c *Circuit) Operations() []Operation     { return c.operations }
func (c *Circuit) Measurements() []Measurement { return c.measurements }
func (c *Circuit) Wires() Wires                { return c.wires }
func (c *Circuit) Shots() Shots                { return c.shots }

// BatchSize is the parameter-broadcasting degree, zero when absent.
func (c *Circuit) BatchSize() int { return c.batchSize }

// TrainableParams is the count of trainable parameters.
func (c *Circuit) TrainableParams() int { return c.trainable }

// withOperations derives a copy of the circuit with a different operation
// list, keeping every other field.
func (c *Circuit) withOperations(operations []Operation) *Circuit {
	out := *c
	out.operations = operations
	return &out
}
