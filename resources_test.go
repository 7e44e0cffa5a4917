package qnull

import (
	"encoding/json"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSimulateResourceUse(t *testing.T) {
	Convey("Given the resource accountant", t, func() {
		Convey("It should count a plain gate under its own name", func() {
			c := NewCircuit([]Operation{NewGate("X", Wires{"0"})}, nil)

			report := SimulateResourceUse(c)

			So(report.NumWires, ShouldEqual, 1)
			So(report.NumGates, ShouldEqual, 1)
			So(report.GateTypes, ShouldResemble, map[string]int{"X": 1})
		})

		Convey("It should fold control layers into a count prefix", func() {
			op := NewControlled(NewGate("X", Wires{"0"}), Wires{"1", "2"})
			c := NewCircuit([]Operation{op}, nil)

			report := SimulateResourceUse(c)

			So(report.NumWires, ShouldEqual, 3)
			So(report.GateTypes, ShouldResemble, map[string]int{"2C(X)": 1})
			So(report.GateSizes, ShouldResemble, map[int]int{3: 1})
		})

		Convey("It should omit the prefix for a single control wire", func() {
			op := NewControlled(NewGate("X", Wires{"0"}), Wires{"1"})
			c := NewCircuit([]Operation{op}, nil)

			So(SimulateResourceUse(c).GateTypes, ShouldResemble, map[string]int{"C(X)": 1})
		})

		Convey("It should wrap adjoint outermost", func() {
			op := NewAdjoint(NewControlled(NewGate("X", Wires{"0"}), Wires{"1", "2"}))
			c := NewCircuit([]Operation{op}, nil)

			So(SimulateResourceUse(c).GateTypes, ShouldResemble, map[string]int{"Adj(2C(X))": 1})
		})

		Convey("It should cancel paired adjoint layers", func() {
			op := NewAdjoint(NewAdjoint(NewGate("RX", Wires{"0"}, 0.5)))
			c := NewCircuit([]Operation{op}, nil)

			So(SimulateResourceUse(c).GateTypes, ShouldResemble, map[string]int{"RX": 1})
		})

		Convey("It should count named composites atomically", func() {
			c := NewCircuit([]Operation{CNOT("0", "1"), Toffoli("0", "1", "2")}, nil)

			report := SimulateResourceUse(c)
			spew.Dump(report)

			So(report.GateTypes, ShouldResemble, map[string]int{"CNOT": 1, "Toffoli": 1})
			So(report.GateSizes, ShouldResemble, map[int]int{2: 1, 3: 1})
		})

		Convey("It should skip barriers entirely", func() {
			c := NewCircuit([]Operation{
				NewGate("X", Wires{"0"}),
				NewBarrier(Wires{"0", "1"}),
				NewGate("X", Wires{"1"}),
			}, nil)

			report := SimulateResourceUse(c)

			So(report.NumGates, ShouldEqual, 2)
			So(report.GateTypes, ShouldResemble, map[string]int{"X": 2})
		})

		Convey("It should serialize exactly the report wire format", func() {
			c := NewCircuit([]Operation{NewGate("X", Wires{"0"})}, nil)

			raw, err := json.Marshal(SimulateResourceUse(c))
			So(err, ShouldBeNil)

			var decoded map[string]json.RawMessage
			So(json.Unmarshal(raw, &decoded), ShouldBeNil)
			So(decoded, ShouldContainKey, "num_wires")
			So(decoded, ShouldContainKey, "num_gates")
			So(decoded, ShouldContainKey, "gate_types")
		})

		Convey("It should emit an empty histogram for a barrier-only circuit", func() {
			c := NewCircuit([]Operation{NewBarrier(Wires{"0"})}, nil)

			raw, err := json.Marshal(SimulateResourceUse(c))
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, `"gate_types":{}`)
			So(string(raw), ShouldNotContainSubstring, "gate_sizes")
		})
	})
}

func TestFsSink(t *testing.T) {
	Convey("Given a filesystem report sink", t, func() {
		fs := afero.NewMemMapFs()
		sink := NewFsSink(fs, "")

		Convey("It should create a fresh report file", func() {
			f, err := sink.Create(resourcesFileName(42))

			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			exists, err := afero.Exists(fs, resourcesFileName(42))
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("It should refuse to overwrite an existing report", func() {
			f, err := sink.Create(resourcesFileName(7))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			_, err = sink.Create(resourcesFileName(7))
			So(err, ShouldNotBeNil)
		})
	})
}
