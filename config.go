// config.go
package qnull

// GradientMethod tags how derivatives are computed.
type GradientMethod string

const (
	GradientNone     GradientMethod = ""
	GradientBest     GradientMethod = "best"
	GradientDevice   GradientMethod = "device"
	GradientAdjoint  GradientMethod = "adjoint"
	GradientBackprop GradientMethod = "backprop"
)

/*
ExecutionConfig selects the gradient method and array backend for a batch
of executions. Configurations are immutable values; WithDefaults derives a
normalized copy and never mutates the receiver. The tri-state booleans are
nil until the caller or normalization sets them.
*/
type ExecutionConfig struct {
	GradientMethod           GradientMethod
	Interface                Interface
	UseDeviceGradient        *bool
	UseDeviceJacobianProduct *bool
	GradOnExecution          *bool
}

// DefaultExecutionConfig is the configuration used when the caller
// supplies none.
var DefaultExecutionConfig = &ExecutionConfig{Interface: NumericInterface}

/*
WithDefaults fills unset fields with device-appropriate values: "best" and
"adjoint" gradient requests are forced to the device-native method, and
the unset booleans are derived from the forced method. The result is a new
configuration value.
*/
func (c ExecutionConfig) WithDefaults() ExecutionConfig {
	out := c
	if out.GradientMethod == GradientBest || out.GradientMethod == GradientAdjoint {
		out.GradientMethod = GradientDevice
	}
	if out.UseDeviceGradient == nil {
		out.UseDeviceGradient = boolPtr(
			out.GradientMethod == GradientDevice || out.GradientMethod == GradientBackprop)
	}
	if out.UseDeviceJacobianProduct == nil {
		out.UseDeviceJacobianProduct = boolPtr(out.GradientMethod == GradientDevice)
	}
	if out.GradOnExecution == nil {
		out.GradOnExecution = boolPtr(out.GradientMethod == GradientDevice)
	}
	return out
}

// executionInterface resolves the array backend results are built in:
// backprop executions use the configured interface, everything else uses
// the default numeric backend.
func (c *ExecutionConfig) executionInterface() Interface {
	if c != nil && c.GradientMethod == GradientBackprop && c.Interface != "" {
		return c.Interface
	}
	return NumericInterface
}

// supportsGradients reports whether the device can serve gradient
// requests for the configuration. A nil configuration is supported.
func supportsGradients(c *ExecutionConfig) bool {
	if c == nil {
		return true
	}
	switch c.GradientMethod {
	case GradientDevice, GradientBackprop, GradientAdjoint:
		return true
	}
	return false
}

func boolPtr(v bool) *bool {
	return &v
}
