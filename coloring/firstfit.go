package coloring

// FirstFit is the greedy online colorer: each arriving vertex receives
// the smallest color not used by its already-revealed neighbors.
//
// A FirstFit value owns the state of exactly one run (colors, color
// count, revealed set) and must not be shared across runs.
type FirstFit struct {
	oracle    Oracle
	colors    map[int]int
	numColors int
	revealed  *Revealed
}

// NewFirstFit creates a FirstFit colorer with fresh run state.
// Returns ErrNilOracle when no oracle is supplied.
func NewFirstFit(oracle Oracle) (*FirstFit, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	return &FirstFit{
		oracle:   oracle,
		colors:   make(map[int]int),
		revealed: newRevealed(),
	}, nil
}

// Step colors the newly arrived vertex v and reveals it. The color is
// permanent: Step never revises earlier assignments. Returns the color
// assigned, or ErrBadVertex, ErrVertexRevealed, ErrOracleContract.
//
// Complexity: O(d) for revealed degree d.
func (f *FirstFit) Step(v int) (int, error) {
	if err := checkStep(v, f.revealed); err != nil {
		return 0, err
	}
	forbidden, err := forbiddenColors(v, f.oracle(v, f.revealed), f.colors, f.revealed)
	if err != nil {
		return 0, err
	}
	c := forbidden.smallestFree()
	f.assign(v, c)
	return c, nil
}

// Run processes an arrival order in sequence and returns the final
// result. The order must be a permutation: a repeated vertex surfaces
// as ErrVertexRevealed.
func (f *FirstFit) Run(order []int) (*Result, error) {
	for _, v := range order {
		if _, err := f.Step(v); err != nil {
			return nil, err
		}
	}
	return f.Result(), nil
}

// Result returns an independent snapshot of the run so far.
func (f *FirstFit) Result() *Result {
	return snapshotResult(f.colors, f.numColors, f.revealed)
}

// NumColors returns the maximum color assigned so far.
func (f *FirstFit) NumColors() int { return f.numColors }

func (f *FirstFit) assign(v, c int) {
	f.colors[v] = c
	if c > f.numColors {
		f.numColors = c
	}
	f.revealed.add(v)
}
