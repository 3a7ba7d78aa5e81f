package solver

// Options configures the Newton iteration. Zero tolerances are taken
// literally, so callers wanting defaults should start from DefaultOptions.
type Options struct {
	MaxIter int     // Iteration cap
	AbsTol  float64 // Absolute tolerance on the solution update
	RelTol  float64 // Relative tolerance on the solution update
	FDStep  float64 // Relative step for the finite-difference Jacobian
}

func DefaultOptions() *Options {
	return &Options{
		MaxIter: 100,
		AbsTol:  1e-12,
		RelTol:  1e-6,
		FDStep:  1e-8,
	}
}
