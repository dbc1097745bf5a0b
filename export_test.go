package harmonic

// SetSolverAvailable overrides the build-time solver flag until restore runs.
func SetSolverAvailable(v bool) (restore func()) {
	prev := solverAvailable
	solverAvailable = v

	return func() { solverAvailable = prev }
}
