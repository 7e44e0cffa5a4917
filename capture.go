// capture.go
package qnull

/*
CapturedVariable is one typed output of a traced program. Outputs tagged
as abstract measurements carry the measurement itself; plain array outputs
carry their declared shape and element type directly.
*/
type CapturedVariable struct {
	Measurement *Measurement
	Shape       []int
	DType       DType
}

// CapturedProgram is a traced-program representation with typed outputs.
type CapturedProgram struct {
	Outputs []CapturedVariable
}

/*
EvalCaptured produces one zero value per program output. Measurement
outputs resolve their shape against the device's own wires and shots;
plain array outputs are zero-filled from their declared shape. Values are
built in the tracking backend, which tracing always runs under, so the
memo is bypassed.
*/
func (d *Device) EvalCaptured(p *CapturedProgram) []any {
	out := make([]any, len(p.Outputs))
	for i, v := range p.Outputs {
		if v.Measurement != nil {
			m := *v.Measurement
			dims := MeasurementShape(m, d.wires.Len(), d.shots.Total(), 0)
			out[i] = Zeros(dims, m.NumericType(), AutogradInterface)
			continue
		}
		out[i] = Zeros(v.Shape, v.DType, AutogradInterface)
	}
	return out
}
