// kupccgsd.go
package qnull

import "fmt"

/*
GeneralizedSingles enumerates the wire ranges of all generalized single
excitation terms obeying the spin-projection selection rule
sz[p] - sz[r] = deltaSz, where orbitals alternate spin up/down along the
wire order.
*/
func GeneralizedSingles(wires Wires, deltaSz int) []Wires {
	n := wires.Len()
	// Twice the spin projection of each orbital: +1, -1, +1, ...
	sz2 := make([]int, n)
	for i := range sz2 {
		sz2[i] = 1
		if i%2 == 1 {
			sz2[i] = -1
		}
	}

	var out []Wires
	for r := 0; r < n; r++ {
		for p := 0; p < n; p++ {
			if p == r || sz2[p]-sz2[r] != 2*deltaSz {
				continue
			}
			if r < p {
				out = append(out, append(Wires{}, wires[r:p+1]...))
			} else {
				span := wires[p : r+1]
				rev := make(Wires, len(span))
				for i, w := range span {
					rev[len(span)-1-i] = w
				}
				out = append(out, rev)
			}
		}
	}
	return out
}

// GeneralizedPairDoubles enumerates the wire pairs of all pair
// coupled-cluster double excitations, moving an electron pair between
// spatial orbitals.
func GeneralizedPairDoubles(wires Wires) [][2]Wires {
	n := wires.Len()
	var out [][2]Wires
	for r := 0; r < n-1; r += 2 {
		for p := 0; p < n-1; p += 2 {
			if p == r {
				continue
			}
			out = append(out, [2]Wires{
				append(Wires{}, wires[r:r+2]...),
				append(Wires{}, wires[p:p+2]...),
			})
		}
	}
	return out
}

/*
KUpCCGSD implements the k-Unitary Pair Coupled-Cluster Generalized
Singles and Doubles ansatz: k repetitions of all generalized single and
pair double excitation terms, applied on top of a basis-embedded
reference state.
*/
type KUpCCGSD struct {
	weights   [][]float64
	wires     Wires
	k         int
	deltaSz   int
	initState []int
	sWires    []Wires
	dWires    [][2]Wires
}

/*
NewKUpCCGSD validates and builds the ansatz. All validation is done at
construction time: wire-count minimum and parity, layer count, selection
rule, weights shape and reference-state length.
*/
func NewKUpCCGSD(weights [][]float64, wires Wires, k, deltaSz int, initState []int) (*KUpCCGSD, error) {
	if wires.Len() < 4 {
		return nil, fmt.Errorf("requires at least four wires; got %d wires", wires.Len())
	}
	if wires.Len()%2 != 0 {
		return nil, fmt.Errorf("requires an even number of wires; got %d wires", wires.Len())
	}
	if k < 1 {
		return nil, fmt.Errorf("requires k to be at least 1; got %d", k)
	}
	if deltaSz < -1 || deltaSz > 1 {
		return nil, fmt.Errorf("requires delta_sz to be one of ±1 or 0; got %d", deltaSz)
	}

	sWires := GeneralizedSingles(wires, deltaSz)
	dWires := GeneralizedPairDoubles(wires)

	if len(weights) != k {
		return nil, fmt.Errorf("weights must have %d layers; got %d", k, len(weights))
	}
	terms := len(sWires) + len(dWires)
	for layer, row := range weights {
		if len(row) != terms {
			return nil, fmt.Errorf(
				"weights layer %d must have %d parameters, one per excitation term; got %d",
				layer, terms, len(row))
		}
	}
	if len(initState) != wires.Len() {
		return nil, fmt.Errorf("init state must have one occupation per wire; got %d for %d wires",
			len(initState), wires.Len())
	}

	return &KUpCCGSD{
		weights:   weights,
		wires:     wires,
		k:         k,
		deltaSz:   deltaSz,
		initState: initState,
		sWires:    sWires,
		dWires:    dWires,
	}, nil
}

func (t *KUpCCGSD) Name() string { return "kUpCCGSD" }
func (t *KUpCCGSD) Wires() Wires { return t.wires }

// SinglesWires exposes the enumerated single-excitation wire ranges.
func (t *KUpCCGSD) SinglesWires() []Wires { return t.sWires }

// DoublesWires exposes the enumerated pair-double wire pairs.
func (t *KUpCCGSD) DoublesWires() [][2]Wires { return t.dWires }

func (t *KUpCCGSD) HasDecomposition() bool { return true }

// Decomposition embeds the reference state, then applies k layers of all
// pair doubles followed by all generalized singles.
func (t *KUpCCGSD) Decomposition() []Operation {
	occupation := make([]float64, len(t.initState))
	for i, b := range t.initState {
		occupation[i] = float64(b)
	}
	ops := []Operation{NewGate("BasisEmbedding", t.wires, occupation...)}

	for layer := 0; layer < t.k; layer++ {
		for i, pair := range t.dWires {
			wires := pair[0].Union(pair[1])
			weight := t.weights[layer][len(t.sWires)+i]
			ops = append(ops, NewGate("FermionicDoubleExcitation", wires, weight))
		}
		for j, single := range t.sWires {
			ops = append(ops, NewGate("FermionicSingleExcitation", single, t.weights[layer][j]))
		}
	}
	return ops
}

/*
KUpCCGSDShape reports the weights shape (layers, excitation terms) the
ansatz requires for the given layer count, wire count and selection rule.
*/
func KUpCCGSDShape(k, nWires, deltaSz int) ([2]int, error) {
	if nWires < 4 {
		return [2]int{}, fmt.Errorf("requires the number of wires to be at least four; got %d", nWires)
	}
	if nWires%2 != 0 {
		return [2]int{}, fmt.Errorf("requires an even number of wires; got %d", nWires)
	}
	wires := WireRange(nWires)
	terms := len(GeneralizedSingles(wires, deltaSz)) + len(GeneralizedPairDoubles(wires))
	return [2]int{k, terms}, nil
}

var _ Decomposer = (*KUpCCGSD)(nil)
