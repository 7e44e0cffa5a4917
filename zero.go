// zero.go
package qnull

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// ErrShadowBroadcast rejects the one unsupported measurement/broadcast
// combination instead of silently degrading it.
var ErrShadowBroadcast = errors.New(
	"parameter broadcasting is not supported with classical shadow measurements")

/*
ZeroProducer builds the correctly-shaped trivial result for one
measurement kind. The shot count is zero for analytic execution and
batchSize is zero when no parameter broadcasting was requested. The cache
may be nil, in which case every call allocates fresh.
*/
type ZeroProducer func(m Measurement, numDeviceWires, shots, batchSize int, like Interface, cache *ZeroCache) (any, error)

var (
	zeroMu        sync.RWMutex
	zeroProducers = map[MeasurementKind]ZeroProducer{}
)

// RegisterZeroProducer installs the producer for a measurement kind. New
// kinds register their own producer; kinds without one fall back to the
// generic zero-array rule.
func RegisterZeroProducer(kind MeasurementKind, produce ZeroProducer) {
	zeroMu.Lock()
	defer zeroMu.Unlock()
	zeroProducers[kind] = produce
}

func init() {
	RegisterZeroProducer(StateKind, stateZero)
	RegisterZeroProducer(ProbabilityKind, stateZero)
	RegisterZeroProducer(CountsKind, countsZero)
	RegisterZeroProducer(ClassicalShadowKind, shadowZero)
}

// zeroMeasurement dispatches to the producer registered for the
// measurement's kind, defaulting to the generic zero-array rule.
func zeroMeasurement(m Measurement, numDeviceWires, shots, batchSize int, like Interface, cache *ZeroCache) (any, error) {
	zeroMu.RLock()
	produce, ok := zeroProducers[m.Kind()]
	zeroMu.RUnlock()
	if !ok {
		produce = defaultZero
	}
	return produce(m, numDeviceWires, shots, batchSize, like, cache)
}

// defaultZero builds an all-zero array of the oracle shape and declared
// numeric type. Non-tracking backends share one cached array per
// (shape, backend, dtype) since the value is pure; the tracking backend
// always allocates freshly.
func defaultZero(m Measurement, numDeviceWires, shots, batchSize int, like Interface, cache *ZeroCache) (any, error) {
	dims := MeasurementShape(m, numDeviceWires, shots, batchSize)
	if like.Tracking() || cache == nil {
		return Zeros(dims, m.NumericType(), like), nil
	}
	return cache.Get(dims, m.NumericType(), like), nil
}

// stateZero is the exact result for state and probability measurements:
// the all-zero basis state has amplitude and probability 1 on index 0.
func stateZero(m Measurement, numDeviceWires, _, batchSize int, like Interface, _ *ZeroCache) (any, error) {
	numWires := m.EffectiveWires(numDeviceWires)
	if batchSize == 0 {
		return BasisState(numWires, like), nil
	}
	dim := 1 << numWires
	t := Zeros([]int{batchSize, dim}, Float64, like)
	for b := 0; b < batchSize; b++ {
		t.Floats[b*dim] = 1
	}
	return t, nil
}

func countsZero(m Measurement, numDeviceWires, shots, batchSize int, _ Interface, _ *ZeroCache) (any, error) {
	results := map[string]int{}
	var remaining []string

	if m.Observable() == nil && !m.OnMidMeasure() {
		state := fmt.Sprintf("%0*b", numDeviceWires, 0)
		results[state] = shots
		if m.AllOutcomes() {
			for x := 1; x < 1<<numDeviceWires; x++ {
				remaining = append(remaining, fmt.Sprintf("%0*b", numDeviceWires, x))
			}
		}
	} else {
		// Shots are always assigned to the smallest eigenvalue.
		eigvals := countsEigvals(m)
		sort.Float64s(eigvals)
		results[formatEigval(eigvals[0])] = shots
		if m.AllOutcomes() {
			for _, v := range eigvals[1:] {
				remaining = append(remaining, formatEigval(v))
			}
		}
	}

	for _, key := range remaining {
		results[key] = 0
	}

	if batchSize > 0 {
		out := make([]map[string]int, batchSize)
		for i := range out {
			out[i] = results
		}
		return out, nil
	}
	return results, nil
}

func countsEigvals(m Measurement) []float64 {
	if obs := m.Observable(); obs != nil {
		eigvals := make([]float64, len(obs.Eigvals))
		copy(eigvals, obs.Eigvals)
		return eigvals
	}
	// A mid-circuit measurement value takes outcomes 0 and 1.
	return []float64{0, 1}
}

func formatEigval(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// shadowZero builds the all-zero integer shadow of the measurement's own
// shape. Broadcasting is unsupported for this kind and rejected eagerly.
func shadowZero(m Measurement, numDeviceWires, shots, batchSize int, like Interface, _ *ZeroCache) (any, error) {
	if batchSize > 0 {
		return nil, ErrShadowBroadcast
	}
	dims := m.Shape(shots, m.EffectiveWires(numDeviceWires))
	return Zeros(dims, Int8, like), nil
}
