// Package junction defines the contract a photovoltaic junction model
// fulfils and the data structures exchanged with it: optical absorption
// input, IV/QE result curves, and the derivation of the standard
// figures of merit.
package junction

import (
	"errors"

	"pvjunction/pkg/spectrum"
)

// ErrNotImplemented signals a solve variant the junction model does not
// support. Callers must not rely on such paths.
var ErrNotImplemented = errors.New("not implemented")

// Junction is the capability set of a junction model. Models may leave
// SolveEquilibrium and SolveShortCircuit unsupported, in which case they
// return ErrNotImplemented unconditionally.
type Junction interface {
	// SolveIV calculates the IV curve at the given voltages. Absorption and
	// light source are optional; when both are present the model derives
	// the photocurrent from them.
	SolveIV(voltage []float64, absorption *Absorption, light spectrum.LightSource) (*IVResult, error)
	// SolveQE calculates the external and internal quantum efficiency.
	SolveQE(absorption *Absorption, light spectrum.LightSource) (*QEResult, error)
	SolveEquilibrium() error
	SolveShortCircuit(absorption *Absorption, light spectrum.LightSource) error
}
