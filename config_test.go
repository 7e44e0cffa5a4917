package qnull

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExecutionConfigDefaults(t *testing.T) {
	Convey("Given configuration normalization", t, func() {
		Convey("It should force best and adjoint to the device method", func() {
			for _, method := range []GradientMethod{GradientBest, GradientAdjoint} {
				out := ExecutionConfig{GradientMethod: method}.WithDefaults()

				So(out.GradientMethod, ShouldEqual, GradientDevice)
				So(*out.UseDeviceGradient, ShouldBeTrue)
				So(*out.UseDeviceJacobianProduct, ShouldBeTrue)
				So(*out.GradOnExecution, ShouldBeTrue)
			}
		})

		Convey("It should keep backprop and derive its booleans", func() {
			out := ExecutionConfig{GradientMethod: GradientBackprop}.WithDefaults()

			So(out.GradientMethod, ShouldEqual, GradientBackprop)
			So(*out.UseDeviceGradient, ShouldBeTrue)
			So(*out.UseDeviceJacobianProduct, ShouldBeFalse)
			So(*out.GradOnExecution, ShouldBeFalse)
		})

		Convey("It should leave an unset method fully disabled", func() {
			out := ExecutionConfig{}.WithDefaults()

			So(out.GradientMethod, ShouldEqual, GradientNone)
			So(*out.UseDeviceGradient, ShouldBeFalse)
		})

		Convey("It should respect booleans the caller already set", func() {
			in := ExecutionConfig{GradientMethod: GradientDevice, GradOnExecution: boolPtr(false)}

			out := in.WithDefaults()

			So(*out.GradOnExecution, ShouldBeFalse)
		})

		Convey("It should never mutate the caller's configuration", func() {
			in := ExecutionConfig{GradientMethod: GradientBest}

			_ = in.WithDefaults()

			So(in.GradientMethod, ShouldEqual, GradientBest)
			So(in.UseDeviceGradient, ShouldBeNil)
		})
	})
}

func TestExecutionInterface(t *testing.T) {
	Convey("Given interface resolution", t, func() {
		Convey("It should use the configured interface only for backprop", func() {
			backprop := &ExecutionConfig{GradientMethod: GradientBackprop, Interface: AutogradInterface}
			So(backprop.executionInterface(), ShouldEqual, AutogradInterface)

			device := &ExecutionConfig{GradientMethod: GradientDevice, Interface: AutogradInterface}
			So(device.executionInterface(), ShouldEqual, NumericInterface)
		})

		Convey("It should default to the numeric backend without a configuration", func() {
			var config *ExecutionConfig
			So(config.executionInterface(), ShouldEqual, NumericInterface)
		})
	})
}
