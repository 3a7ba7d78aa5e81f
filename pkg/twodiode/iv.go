package twodiode

import (
	"fmt"
	"math"

	"pvjunction/internal/consts"
	"pvjunction/pkg/solver"
)

// IVNoRs evaluates the two-diode equation with zero series resistance at
// every voltage in v:
//
//	I(V) = j01*(exp(qV/(n1*kB*T)) - 1) + j02*(exp(qV/(n2*kB*T)) - 1) + V/rsh - jsc
//
// Pure and elementwise. Voltages far outside the physical operating range
// overflow the exponentials; keeping them in range is the caller's
// responsibility.
func IVNoRs(v []float64, p Params) []float64 {
	kt := consts.BOLTZMANN * p.T
	out := make([]float64, len(v))
	for i, vi := range v {
		out[i] = p.J01*(math.Exp(consts.CHARGE*vi/(p.N1*kt))-1) +
			p.J02*(math.Exp(consts.CHARGE*vi/(p.N2*kt))-1) +
			vi/p.Rsh - p.Jsc
	}
	return out
}

// IV2Diode solves the two-diode equation at every voltage in v. With zero
// series resistance the explicit result is returned directly. Otherwise the
// voltage drop over rs couples the current back into the diode voltage,
// making the relation implicit: J = I(V - rs*J) is solved by the root
// finder, starting from the rs-free current clamped into the range allowed
// by V/rs. opts is forwarded unchanged; nil selects the solver defaults.
//
// TODO: the rs != 0 path is not numerically robust for every parameter
// regime. Non-convergence is fatal and the error carries the solver state;
// there is deliberately no fallback, since an unconverged current array
// would corrupt every derived parameter downstream.
func IV2Diode(v []float64, p Params, opts *solver.Options) ([]float64, error) {
	current := IVNoRs(v, p)
	if p.Rs == 0 || len(v) == 0 {
		return current, nil
	}

	residual := func(j []float64) []float64 {
		shifted := make([]float64, len(v))
		for i := range v {
			shifted[i] = v[i] - p.Rs*j[i]
		}
		r := IVNoRs(shifted, p)
		for i := range r {
			r[i] = j[i] - r[i]
		}
		return r
	}

	lo, hi := minMax(v)
	lo /= p.Rs
	hi /= p.Rs
	guess := make([]float64, len(current))
	for i, c := range current {
		guess[i] = math.Min(math.Max(c, lo), hi)
	}

	res, err := solver.Root(residual, guess, opts)
	if err != nil {
		return nil, fmt.Errorf("iv calculation failed, solver info: %w", err)
	}
	return res.X, nil
}

func minMax(v []float64) (float64, float64) {
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}
