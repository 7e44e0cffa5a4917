// resources.go
package qnull

import (
	"encoding/json"
	"strconv"
)

// ResourcesFilePrefix prefixes every persisted resource report. The full
// name embeds the nanosecond timestamp of when execution began.
const ResourcesFilePrefix = "__qnull_resources_data_"

/*
Resources summarizes the gates a circuit would consume on real hardware:
the wire count, the total gate count, a histogram of gate names and a
histogram of gate arities. Reports are created fresh per circuit and never
mutated once written.
*/
type Resources struct {
	NumWires  int
	NumGates  int
	GateTypes map[string]int
	GateSizes map[int]int
}

// MarshalJSON emits the report's wire format: num_wires, num_gates and
// gate_types, plus gate_sizes when any were recorded.
func (r *Resources) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NumWires  int            `json:"num_wires"`
		NumGates  int            `json:"num_gates"`
		GateTypes map[string]int `json:"gate_types"`
		GateSizes map[int]int    `json:"gate_sizes,omitempty"`
	}{
		NumWires:  r.NumWires,
		NumGates:  r.NumGates,
		GateTypes: r.GateTypes,
		GateSizes: r.GateSizes,
	})
}

/*
SimulateResourceUse walks the circuit's operations in order and aggregates
a resource report without simulating anything.

Modifier layers are unwrapped before counting: control layers accumulate
their control-wire count, adjoint layers toggle an inversion flag, and the
walk stops at the first operation that is neither. Named composites such
as CNOT expose a base but are deliberately not unwrapped, so they count
atomically under their own name. Barriers consume nothing and are skipped.
*/
func SimulateResourceUse(c *Circuit) *Resources {
	report := &Resources{
		NumWires:  c.Wires().Len(),
		GateTypes: map[string]int{},
		GateSizes: map[int]int{},
	}

	for _, op := range c.Operations() {
		controls := 0
		adj := false

	unwrap:
		for {
			switch t := op.(type) {
			case Controlled:
				controls += t.ControlWires().Len()
				op = t.Base()
			case Adjoint:
				adj = !adj
				op = t.Base()
			default:
				break unwrap
			}
		}

		if op.Name() == "Barrier" {
			continue
		}

		name := op.Name()
		if controls > 0 {
			prefix := ""
			if controls > 1 {
				prefix = strconv.Itoa(controls)
			}
			name = prefix + "C(" + name + ")"
		}
		if adj {
			name = "Adj(" + name + ")"
		}

		report.GateTypes[name]++
		report.GateSizes[controls+op.Wires().Len()]++
		report.NumGates++
	}
	return report
}
