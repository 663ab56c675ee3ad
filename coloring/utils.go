package coloring

import "fmt"

// contractErr wraps ErrOracleContract with the offending vertex pair so
// callers can diagnose which answer broke the online visibility contract.
func contractErr(vertex, reported int) error {
	return fmt.Errorf("%w: neighbor %d of vertex %d is not revealed", ErrOracleContract, reported, vertex)
}

// checkStep validates a step request against the run state: IDs must be
// positive and a vertex is colored exactly once.
func checkStep(v int, revealed *Revealed) error {
	if v < 1 {
		return fmt.Errorf("%w: got %d", ErrBadVertex, v)
	}
	if revealed.Has(v) {
		return fmt.Errorf("%w: vertex %d", ErrVertexRevealed, v)
	}
	return nil
}
