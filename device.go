// device.go
package qnull

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/spf13/afero"
	"github.com/theapemachine/errnie"
)

/*
Device is a no-op execution backend. It performs none of the numerical
work a simulator would, returning correctly-shaped zero-valued results
instead, so the time spent in an execution is dominated by the
infrastructure around it.

Key features:
  - Exact result shapes for every measurement kind
  - Trivial zero derivatives, vector-Jacobian and Jacobian-vector products
  - Optional resource accounting persisted as JSON reports
  - A bounded memo of shared zero arrays for non-tracking backends
*/
type Device struct {
	wires          Wires
	shots          Shots
	trackResources bool
	sink           ReportSink
	cache          *ZeroCache
	tracker        *Tracker
}

// DeviceOption configures a device at construction time.
type DeviceOption func(*Device)

// WithWires fixes the device-wide wire set. Without it, each circuit's
// own wires are used.
func WithWires(wires Wires) DeviceOption {
	return func(d *Device) { d.wires = wires }
}

// WithShots sets the default shot specification for traced programs.
func WithShots(shots Shots) DeviceOption {
	return func(d *Device) { d.shots = shots }
}

// WithResourceTracking makes every execution write one resource report.
func WithResourceTracking() DeviceOption {
	return func(d *Device) { d.trackResources = true }
}

// WithReportSink substitutes the sink reports are persisted to.
func WithReportSink(sink ReportSink) DeviceOption {
	return func(d *Device) { d.sink = sink }
}

// WithTracker attaches an execution statistics tracker.
func WithTracker(tracker *Tracker) DeviceOption {
	return func(d *Device) { d.tracker = tracker }
}

// WithZeroCache substitutes the zero-array memo, mainly for tests.
func WithZeroCache(cache *ZeroCache) DeviceOption {
	return func(d *Device) { d.cache = cache }
}

// NewDevice creates a null device. Reports default to the working
// directory of the real filesystem.
func NewDevice(opts ...DeviceOption) *Device {
	d := &Device{
		sink:  NewFsSink(afero.NewOsFs(), "."),
		cache: NewZeroCache(zeroCacheCapacity),
	}
	for _, opt := range opts {
		opt(d)
	}
	errnie.Info(
		"NewDevice - wires %v, shots %v, trackResources %v",
		d.wires,
		d.shots,
		d.trackResources,
	)
	return d
}

// Name identifies the device.
func (d *Device) Name() string { return "null.qubit" }

func (d *Device) numDeviceWires(c *Circuit) int {
	if d.wires.Len() > 0 {
		return d.wires.Len()
	}
	return c.Wires().Len()
}

/*
Preprocess returns the baseline transform program with the decompose
stopping conditions patched so that operations without a decomposition
are treated as terminal, plus the normalized execution configuration.
*/
func (d *Device) Preprocess(config *ExecutionConfig) (TransformProgram, ExecutionConfig) {
	if config == nil {
		config = DefaultExecutionConfig
	}
	program := DefaultTransformProgram()
	patchStoppingConditions(program)
	return program, config.WithDefaults()
}

// simulate produces the zero-valued result of one circuit, writing a
// resource report first when tracking is enabled.
func (d *Device) simulate(c *Circuit, like Interface) (any, error) {
	if d.trackResources {
		report := SimulateResourceUse(c)
		d.tracker.recordResources(report)

		name := resourcesFileName(time.Now().UnixNano())
		f, err := d.sink.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating resource report: %w", err)
		}
		if err := json.NewEncoder(f).Encode(report); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing resource report: %w", err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("closing resource report: %w", err)
		}
		log.Printf("Wrote resource report %s", name)
	}

	numDeviceWires := d.numDeviceWires(c)
	measurements := c.Measurements()
	results := make([]any, 0, len(c.Shots().ExecutionPartitions()))

	for _, shots := range c.Shots().ExecutionPartitions() {
		vals := make([]any, len(measurements))
		for i, m := range measurements {
			v, err := zeroMeasurement(m, numDeviceWires, shots, c.BatchSize(), like, d.cache)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		if len(vals) == 1 {
			results = append(results, vals[0])
		} else {
			results = append(results, vals)
		}
	}

	if c.Shots().HasPartitionedShots() {
		return results, nil
	}
	return results[0], nil
}

/*
Execute produces one zero-valued result per circuit, in input order. A
failing circuit aborts the whole batch; no partial result sequence is
returned.
*/
func (d *Device) Execute(circuits []*Circuit, config *ExecutionConfig) ([]any, error) {
	like := config.executionInterface()
	out := make([]any, len(circuits))
	for i, c := range circuits {
		r, err := d.simulate(c, like)
		if err != nil {
			return nil, err
		}
		out[i] = r
		d.tracker.record("shots", c.Shots().Total())
	}
	d.tracker.record("batches", 1)
	d.tracker.record("executions", len(circuits))
	d.tracker.record("simulations", len(circuits))
	return out, nil
}

// derivatives builds, per measurement, a tuple of one zero value per
// trainable parameter, unwrapping singleton tuples and singleton
// measurement lists.
func (d *Device) derivatives(c *Circuit, like Interface) (any, error) {
	numDeviceWires := d.numDeviceWires(c)
	n := c.TrainableParams()
	measurements := c.Measurements()

	ders := make([]any, len(measurements))
	for i, m := range measurements {
		zv, err := zeroMeasurement(m, numDeviceWires, c.Shots().Total(), c.BatchSize(), like, d.cache)
		if err != nil {
			return nil, err
		}
		zero := ZerosLike(zv)
		if n == 1 {
			ders[i] = zero
			continue
		}
		tuple := make([]any, n)
		for j := range tuple {
			tuple[j] = zero
		}
		ders[i] = tuple
	}
	if len(ders) == 1 {
		return ders[0], nil
	}
	return ders, nil
}

// vjp is the trivial vector-Jacobian product: a zero vector sized by the
// trainable-parameter count and batch size.
func (d *Device) vjp(c *Circuit, like Interface) any {
	n := c.TrainableParams()
	shape := []int{n}
	if c.BatchSize() > 0 {
		shape = []int{n, c.BatchSize()}
	}
	return Zeros(shape, Float64, like)
}

// jvp is the trivial Jacobian-vector product: one zero scalar per
// measurement.
func (d *Device) jvp(c *Circuit, like Interface) any {
	measurements := c.Measurements()
	if len(measurements) == 1 {
		return Scalar(0, like)
	}
	out := make([]any, len(measurements))
	for i := range out {
		out[i] = Scalar(0, like)
	}
	return out
}

// ComputeDerivatives returns the trivial zero jacobian of every circuit.
func (d *Device) ComputeDerivatives(circuits []*Circuit, config *ExecutionConfig) ([]any, error) {
	like := config.executionInterface()
	out := make([]any, len(circuits))
	for i, c := range circuits {
		der, err := d.derivatives(c, like)
		if err != nil {
			return nil, err
		}
		out[i] = der
	}
	d.tracker.record("derivative_batches", 1)
	d.tracker.record("derivatives", len(circuits))
	return out, nil
}

// ExecuteAndComputeDerivatives runs two independent full passes and
// returns both outcomes.
func (d *Device) ExecuteAndComputeDerivatives(circuits []*Circuit, config *ExecutionConfig) ([]any, []any, error) {
	results, err := d.Execute(circuits, config)
	if err != nil {
		return nil, nil, err
	}
	jacs, err := d.ComputeDerivatives(circuits, config)
	if err != nil {
		return nil, nil, err
	}
	d.tracker.record("execute_and_derivative_batches", 1)
	return results, jacs, nil
}

// ComputeVJP returns trivial zero vector-Jacobian products. The cotangent
// values are ignored entirely.
func (d *Device) ComputeVJP(circuits []*Circuit, cotangents []any, config *ExecutionConfig) ([]any, error) {
	_ = cotangents
	like := config.executionInterface()
	out := make([]any, len(circuits))
	for i, c := range circuits {
		out[i] = d.vjp(c, like)
	}
	d.tracker.record("vjp_batches", 1)
	d.tracker.record("vjps", len(circuits))
	return out, nil
}

// ExecuteAndComputeVJP runs two independent full passes.
func (d *Device) ExecuteAndComputeVJP(circuits []*Circuit, cotangents []any, config *ExecutionConfig) ([]any, []any, error) {
	results, err := d.Execute(circuits, config)
	if err != nil {
		return nil, nil, err
	}
	vjps, err := d.ComputeVJP(circuits, cotangents, config)
	if err != nil {
		return nil, nil, err
	}
	return results, vjps, nil
}

// ComputeJVP returns trivial zero Jacobian-vector products. The tangent
// values are ignored entirely.
func (d *Device) ComputeJVP(circuits []*Circuit, tangents []any, config *ExecutionConfig) ([]any, error) {
	_ = tangents
	like := config.executionInterface()
	out := make([]any, len(circuits))
	for i, c := range circuits {
		out[i] = d.jvp(c, like)
	}
	d.tracker.record("jvp_batches", 1)
	d.tracker.record("jvps", len(circuits))
	return out, nil
}

// ExecuteAndComputeJVP runs two independent full passes.
func (d *Device) ExecuteAndComputeJVP(circuits []*Circuit, tangents []any, config *ExecutionConfig) ([]any, []any, error) {
	results, err := d.Execute(circuits, config)
	if err != nil {
		return nil, nil, err
	}
	jvps, err := d.ComputeJVP(circuits, tangents, config)
	if err != nil {
		return nil, nil, err
	}
	return results, jvps, nil
}

// SupportsDerivatives reports whether the device can serve derivative
// requests under the configuration.
func (d *Device) SupportsDerivatives(config *ExecutionConfig) bool {
	return supportsGradients(config)
}

// SupportsVJP reports whether the device can serve vector-Jacobian
// product requests under the configuration.
func (d *Device) SupportsVJP(config *ExecutionConfig) bool {
	return supportsGradients(config)
}

// SupportsJVP reports whether the device can serve Jacobian-vector
// product requests under the configuration.
func (d *Device) SupportsJVP(config *ExecutionConfig) bool {
	return supportsGradients(config)
}
