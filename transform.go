// transform.go
package qnull

import "fmt"

const maxDecompositionDepth = 64

// StoppingCondition decides whether an operation is terminal for
// decomposition purposes.
type StoppingCondition func(Operation) bool

/*
Transform is one step of a preprocessing program. Apply rewrites a circuit
into an equivalent one; the decompose transform consults its stopping
conditions, which the device patches before execution.
*/
type Transform struct {
	Name                   string
	StoppingCondition      StoppingCondition
	StoppingConditionShots StoppingCondition
	Apply                  func(*Circuit) (*Circuit, error)
}

// TransformProgram is an ordered preprocessing pipeline.
type TransformProgram []*Transform

// Run applies every transform, in order, to every circuit.
func (p TransformProgram) Run(circuits []*Circuit) ([]*Circuit, error) {
	out := make([]*Circuit, len(circuits))
	copy(out, circuits)
	for _, t := range p {
		for i, c := range out {
			next, err := t.Apply(c)
			if err != nil {
				return nil, fmt.Errorf("transform %s: %w", t.Name, err)
			}
			out[i] = next
		}
	}
	return out, nil
}

// defaultStopping accepts plain gates, barriers and named composites as
// terminal; everything else is a candidate for decomposition.
func defaultStopping(op Operation) bool {
	switch op.(type) {
	case Gate, Barrier, composite:
		return true
	}
	return false
}

// newDecomposeTransform builds the baseline decomposition step. Its Apply
// reads the stopping conditions through the Transform pointer so patches
// made after construction take effect.
func newDecomposeTransform() *Transform {
	t := &Transform{
		Name:                   "decompose",
		StoppingCondition:      defaultStopping,
		StoppingConditionShots: defaultStopping,
	}
	t.Apply = func(c *Circuit) (*Circuit, error) {
		stop := t.StoppingCondition
		if !c.Shots().Analytic() && t.StoppingConditionShots != nil {
			stop = t.StoppingConditionShots
		}
		ops, err := expandOperations(c.Operations(), stop, 0)
		if err != nil {
			return nil, err
		}
		return c.withOperations(ops), nil
	}
	return t
}

func expandOperations(ops []Operation, stop StoppingCondition, depth int) ([]Operation, error) {
	if depth > maxDecompositionDepth {
		return nil, fmt.Errorf("decomposition did not terminate within %d levels", maxDecompositionDepth)
	}
	out := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if stop(op) {
			out = append(out, op)
			continue
		}
		d, ok := op.(Decomposer)
		if !ok || !d.HasDecomposition() {
			return nil, fmt.Errorf("operation %s has no decomposition", op.Name())
		}
		expanded, err := expandOperations(d.Decomposition(), stop, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// DefaultTransformProgram is the baseline preprocessing pipeline a
// simulating device would run.
func DefaultTransformProgram() TransformProgram {
	return TransformProgram{newDecomposeTransform()}
}

/*
patchStoppingConditions rewrites the decompose step so that any operation
declaring it has no decomposition is treated as already terminal, OR-ed
with the original predicate. The shots-specific condition is only wrapped
when the baseline program carries one; when absent the patch is skipped
silently.
*/
func patchStoppingConditions(program TransformProgram) {
	for _, t := range program {
		if t.Name != "decompose" {
			continue
		}
		orig := t.StoppingCondition
		t.StoppingCondition = func(op Operation) bool {
			return !hasDecomposition(op) || orig(op)
		}
		if origShots := t.StoppingConditionShots; origShots != nil {
			t.StoppingConditionShots = func(op Operation) bool {
				return !hasDecomposition(op) || origShots(op)
			}
		}
	}
}
