// wires.go
package qnull

import "strconv"

// Wires is an ordered set of named register lines. Order is preserved,
// labels are unique.
type Wires []string

// WireRange builds n wires labelled "0" through "n-1".
func WireRange(n int) Wires {
	wires := make(Wires, n)
	for i := range wires {
		wires[i] = strconv.Itoa(i)
	}
	return wires
}

func (w Wires) Len() int {
	return len(w)
}

func (w Wires) Contains(label string) bool {
	for _, l := range w {
		if l == label {
			return true
		}
	}
	return false
}

// Union appends the labels of other that are not already present,
// preserving first-seen order.
func (w Wires) Union(other Wires) Wires {
	out := make(Wires, len(w), len(w)+len(other))
	copy(out, w)
	for _, l := range other {
		if !out.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}

// Disjoint reports whether the two wire sets share no labels.
func (w Wires) Disjoint(other Wires) bool {
	for _, l := range other {
		if w.Contains(l) {
			return false
		}
	}
	return true
}
