package qnull

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func validKUpCCGSDWeights(k, terms int) [][]float64 {
	weights := make([][]float64, k)
	for i := range weights {
		weights[i] = make([]float64, terms)
	}
	return weights
}

func TestKUpCCGSDValidation(t *testing.T) {
	Convey("Given the k-UpCCGSD ansatz", t, func() {
		Convey("It should require at least four wires", func() {
			_, err := NewKUpCCGSD(nil, WireRange(2), 1, 0, []int{0, 0})

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "at least four wires")
		})

		Convey("It should require an even number of wires", func() {
			_, err := NewKUpCCGSD(nil, WireRange(5), 1, 0, []int{0, 0, 0, 0, 0})

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "even number of wires")
		})

		Convey("It should require at least one layer", func() {
			_, err := NewKUpCCGSD(nil, WireRange(4), 0, 0, []int{1, 1, 0, 0})

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "k to be at least 1")
		})

		Convey("It should restrict the selection rule", func() {
			_, err := NewKUpCCGSD(nil, WireRange(4), 1, 2, []int{1, 1, 0, 0})

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "delta_sz")
		})

		Convey("It should validate the weights shape", func() {
			weights := validKUpCCGSDWeights(1, 3)

			_, err := NewKUpCCGSD(weights, WireRange(4), 1, 0, []int{1, 1, 0, 0})

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "excitation term")
		})

		Convey("It should validate the reference state length", func() {
			weights := validKUpCCGSDWeights(1, 6)

			_, err := NewKUpCCGSD(weights, WireRange(4), 1, 0, []int{1, 1})

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "occupation per wire")
		})
	})
}

func TestKUpCCGSDTerms(t *testing.T) {
	Convey("Given excitation term enumeration over four wires", t, func() {
		wires := WireRange(4)

		Convey("It should find four spin-preserving singles", func() {
			singles := GeneralizedSingles(wires, 0)

			So(len(singles), ShouldEqual, 4)
			So(singles[0], ShouldResemble, Wires{"0", "1", "2"})
		})

		Convey("It should find four spin-raising singles", func() {
			So(len(GeneralizedSingles(wires, 1)), ShouldEqual, 4)
		})

		Convey("It should find two pair doubles", func() {
			doubles := GeneralizedPairDoubles(wires)

			So(len(doubles), ShouldEqual, 2)
			So(doubles[0], ShouldResemble, [2]Wires{{"0", "1"}, {"2", "3"}})
			So(doubles[1], ShouldResemble, [2]Wires{{"2", "3"}, {"0", "1"}})
		})

		Convey("It should report the weights shape", func() {
			shape, err := KUpCCGSDShape(2, 4, 0)

			So(err, ShouldBeNil)
			So(shape, ShouldResemble, [2]int{2, 6})
		})

		Convey("It should reject invalid wire counts in the shape helper", func() {
			_, err := KUpCCGSDShape(1, 3, 0)
			So(err, ShouldNotBeNil)

			_, err = KUpCCGSDShape(1, 5, 0)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestKUpCCGSDDecomposition(t *testing.T) {
	Convey("Given a valid two-layer ansatz", t, func() {
		weights := validKUpCCGSDWeights(2, 6)
		ansatz, err := NewKUpCCGSD(weights, WireRange(4), 2, 0, []int{1, 1, 0, 0})
		So(err, ShouldBeNil)

		ops := ansatz.Decomposition()

		Convey("It should embed the reference state first", func() {
			So(ops[0].Name(), ShouldEqual, "BasisEmbedding")
			So(ops[0].Wires(), ShouldResemble, WireRange(4))
		})

		Convey("It should apply all terms once per layer", func() {
			// One embedding plus two layers of two doubles and four singles.
			So(len(ops), ShouldEqual, 13)

			doubles, singles := 0, 0
			for _, op := range ops[1:] {
				switch op.Name() {
				case "FermionicDoubleExcitation":
					doubles++
				case "FermionicSingleExcitation":
					singles++
				}
			}
			So(doubles, ShouldEqual, 4)
			So(singles, ShouldEqual, 8)
		})
	})
}
