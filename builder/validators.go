// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures every value in got is ≥ min.
// Returns "<method>: parameter must be ≥ <min>, got <got>: ErrTooFewVertices".
// Complexity: O(len(got)).
func validateMin(method string, min int, got ...int) error {
	for _, g := range got {
		if g < min {
			return fmt.Errorf("%s: parameter must be ≥ %d, got %v: %w", method, min, got, ErrTooFewVertices)
		}
	}

	return nil
}
