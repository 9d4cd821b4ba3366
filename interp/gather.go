package interp

// gatherer retrieves width-wide rows of a node-major source array at
// each query's window indices. src is row-major [nodes][width]; idx is
// [queries][window]; the result is row-major [queries][window][width].
// Implementations must be numerically identical: the mode is a
// resource-budget tradeoff, never a correctness choice.
type gatherer interface {
	gather(src []float64, width int, idx [][]int) []float64
}

// newGatherer returns the gather strategy for mode.
func newGatherer(mode MemoryMode) (gatherer, error) {
	switch mode {
	case LowMemory:
		return lowMemGatherer{}, nil
	case HighMemory:
		return highMemGatherer{}, nil
	default:
		return nil, ErrInvalidMemoryMode
	}
}

// lowMemGatherer flattens the (query, node) pairs into one index list
// and performs a single batched lookup pass. Peak intermediate memory
// is just the pair list.
type lowMemGatherer struct{}

func (lowMemGatherer) gather(src []float64, width int, idx [][]int) []float64 {
	queries := len(idx)
	if queries == 0 {
		return nil
	}
	window := len(idx[0])

	pairs := make([]int, 0, queries*window)
	for _, win := range idx {
		pairs = append(pairs, win...)
	}

	out := make([]float64, queries*window*width)
	for p, node := range pairs {
		copy(out[p*width:(p+1)*width], src[node*width:(node+1)*width])
	}

	return out
}

// highMemGatherer broadcasts the full source array against all queries
// before indexing, trading a queries×nodes×width intermediate for
// fewer per-pair lookups.
type highMemGatherer struct{}

func (highMemGatherer) gather(src []float64, width int, idx [][]int) []float64 {
	queries := len(idx)
	if queries == 0 {
		return nil
	}
	window := len(idx[0])

	broadcast := make([]float64, queries*len(src))
	for q := 0; q < queries; q++ {
		copy(broadcast[q*len(src):(q+1)*len(src)], src)
	}

	out := make([]float64, queries*window*width)
	for q, win := range idx {
		block := broadcast[q*len(src) : (q+1)*len(src)]
		for w, node := range win {
			dst := (q*window + w) * width
			copy(out[dst:dst+width], block[node*width:(node+1)*width])
		}
	}

	return out
}
