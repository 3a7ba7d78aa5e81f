package twodiode

// Params is the immutable parameter record of the two-diode equation at a
// given junction temperature. Derived copies are made with the With*
// methods; a shared reference-condition instance is never mutated, so it
// can seed any number of temperature derivations.
//
// Rsh must stay nonzero (it divides every evaluation) and T must stay
// positive (it sits in the Boltzmann-factor denominators). Neither is
// validated here; violating them is a caller bug.
type Params struct {
	T      float64 // Junction temperature (K)
	J01    float64 // First saturation current (A)
	J02    float64 // Second saturation current (A)
	N1     float64 // First ideality factor
	N2     float64 // Second ideality factor
	Rs     float64 // Series resistance (ohm)
	Rsh    float64 // Shunt resistance (ohm)
	Jsc    float64 // Short circuit current (A), used only when HasJsc is set
	HasJsc bool    // Whether Jsc is given instead of derived from optics
}

// DefaultParams returns the reference parameter set of the model.
func DefaultParams() Params {
	return Params{
		T:   297,
		J01: 1e-6,
		J02: 0,
		N1:  1,
		N2:  2,
		Rs:  0,
		Rsh: 1e14,
	}
}

// WithJsc returns a copy with the short circuit current fixed to jsc.
func (p Params) WithJsc(jsc float64) Params {
	p.Jsc = jsc
	p.HasJsc = true
	return p
}

// WithTemperature returns a copy at temperature t with the saturation
// currents unchanged. For a physically rescaled copy use FromReference.
func (p Params) WithTemperature(t float64) Params {
	p.T = t
	return p
}
