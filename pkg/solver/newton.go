// Package solver provides a general-purpose Newton-Raphson root finder for
// nonlinear multi-variate systems. The Jacobian is approximated by forward
// differences and each update is solved through sparse LU factorization.
package solver

import (
	"fmt"
	"math"
)

// ResidualFunc evaluates the residual of the nonlinear system at x. It must
// return a slice of the same length as x and must not retain x.
type ResidualFunc func(x []float64) []float64

// Result carries the state of a finished (or failed) root search.
type Result struct {
	X          []float64
	Iterations int
	Residual   float64 // Largest absolute residual component at X
	Converged  bool
}

func (r *Result) String() string {
	return fmt.Sprintf("converged=%v iterations=%d residual=%g",
		r.Converged, r.Iterations, r.Residual)
}

// Root finds x such that fn(x) = 0. A nil opts uses DefaultOptions.
//
// The iteration stops when every component of the Newton update falls below
// the absolute or relative tolerance. On failure the last iterate is still
// returned in the Result, together with an error describing the solver
// state, so callers can report the diagnostic.
func Root(fn ResidualFunc, guess []float64, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	n := len(guess)
	if n == 0 {
		return nil, fmt.Errorf("empty initial guess")
	}

	sys, err := newSystem(n)
	if err != nil {
		return nil, err
	}
	defer sys.Destroy()

	x := make([]float64, n)
	copy(x, guess)
	res := &Result{X: x}

	for iter := 1; iter <= opts.MaxIter; iter++ {
		res.Iterations = iter

		r := fn(x)
		if len(r) != n {
			return res, fmt.Errorf("residual length %d does not match system size %d", len(r), n)
		}
		res.Residual = maxAbs(r)
		if math.IsNaN(res.Residual) || math.IsInf(res.Residual, 0) {
			return res, fmt.Errorf("residual not finite at iteration %d: %s", iter, res)
		}

		sys.Clear()

		// Forward-difference Jacobian, one column per unknown. Entries that
		// come out exactly zero are never inserted, so decoupled systems
		// keep a diagonal factorization.
		for j := range n {
			h := opts.FDStep * math.Max(math.Abs(x[j]), 1.0)
			x[j] += h
			rp := fn(x)
			x[j] -= h

			for i := range n {
				d := (rp[i] - r[i]) / h
				if d != 0 {
					sys.AddElement(i+1, j+1, d)
				}
			}
		}
		for i := range n {
			sys.AddRHS(i+1, -r[i])
		}

		err = sys.Solve()
		if err != nil {
			return res, fmt.Errorf("newton update at iteration %d: %v", iter, err)
		}
		dx := sys.Solution()

		converged := true
		for i := range n {
			x[i] += dx[i+1]
			diff := math.Abs(dx[i+1])
			if diff > opts.AbsTol && diff > opts.RelTol*math.Abs(x[i]) {
				converged = false
			}
		}

		if converged {
			res.Residual = maxAbs(fn(x))
			res.Converged = true
			return res, nil
		}
	}

	return res, fmt.Errorf("failed to converge in %d iterations: %s", opts.MaxIter, res)
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}
