package qnull

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// opaqueOp is an operation with no decomposition that the baseline
// stopping condition does not recognize as terminal.
type opaqueOp struct {
	wires Wires
}

func (o opaqueOp) Name() string { return "Opaque" }
func (o opaqueOp) Wires() Wires { return o.wires }

func TestTransformProgram(t *testing.T) {
	Convey("Given the preprocessing pipeline", t, func() {
		dev := NewDevice()

		Convey("It should fail on undecomposable operations when unpatched", func() {
			program := DefaultTransformProgram()
			c := NewCircuit([]Operation{opaqueOp{wires: Wires{"0"}}}, nil)

			_, err := program.Run([]*Circuit{c})

			So(err, ShouldNotBeNil)
		})

		Convey("It should treat undecomposable operations as terminal once patched", func() {
			program, _ := dev.Preprocess(nil)
			c := NewCircuit([]Operation{opaqueOp{wires: Wires{"0"}}}, nil)

			out, err := program.Run([]*Circuit{c})

			So(err, ShouldBeNil)
			So(len(out[0].Operations()), ShouldEqual, 1)
			So(out[0].Operations()[0].Name(), ShouldEqual, "Opaque")
		})

		Convey("It should still expand templates after patching", func() {
			amp, err := NewAmplitudeAmplification(
				NewGate("U", Wires{"0", "1"}),
				NewGate("Oracle", Wires{"0", "1"}),
				WithIterations(2),
			)
			So(err, ShouldBeNil)

			program, _ := dev.Preprocess(nil)
			out, err := program.Run([]*Circuit{NewCircuit([]Operation{amp}, nil)})

			So(err, ShouldBeNil)
			names := []string{}
			for _, op := range out[0].Operations() {
				names = append(names, op.Name())
			}
			So(names, ShouldResemble, []string{"Oracle", "Reflection", "Oracle", "Reflection"})
		})

		Convey("It should leave an absent shots condition absent", func() {
			program := TransformProgram{{
				Name:              "decompose",
				StoppingCondition: defaultStopping,
			}}

			patchStoppingConditions(program)

			So(program[0].StoppingConditionShots, ShouldBeNil)
		})

		Convey("It should normalize the execution configuration", func() {
			_, config := dev.Preprocess(&ExecutionConfig{GradientMethod: GradientAdjoint})

			So(config.GradientMethod, ShouldEqual, GradientDevice)
		})
	})
}
