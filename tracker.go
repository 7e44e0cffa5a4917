// tracker.go
package qnull

import "sync"

/*
Tracker accumulates execution statistics for a device: how many circuits
were executed, how many batches of each entry point were served, how many
shots were requested and which resource reports were produced. A nil
tracker records nothing, so the device can call it unconditionally.
*/
type Tracker struct {
	mu        sync.Mutex
	totals    map[string]int
	resources []*Resources
}

func NewTracker() *Tracker {
	return &Tracker{totals: make(map[string]int)}
}

func (t *Tracker) record(key string, n int) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals[key] += n
}

func (t *Tracker) recordResources(r *Resources) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resources = append(t.resources, r)
}

// Totals returns a copy of the accumulated counters.
func (t *Tracker) Totals() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.totals))
	for k, v := range t.totals {
		out[k] = v
	}
	return out
}

// Resources returns the reports recorded so far, in production order.
func (t *Tracker) Resources() []*Resources {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Resources, len(t.resources))
	copy(out, t.resources)
	return out
}
