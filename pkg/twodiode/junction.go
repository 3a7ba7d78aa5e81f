// Package twodiode models the electrical behavior of a photovoltaic
// junction with the two-diode equivalent-circuit equation.
package twodiode

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"pvjunction/internal/consts"
	"pvjunction/pkg/junction"
	"pvjunction/pkg/solver"
	"pvjunction/pkg/spectrum"
)

// Junction is the two-diode model of a photovoltaic junction. Immutable
// after construction; temperature re-parameterization produces a new
// Junction via FromReference.
type Junction struct {
	Data    Params
	Meta    map[string]float64 // Auxiliary physical metadata (band gap, reference temperature, ...)
	Options *solver.Options    // Forwarded to the root finder when Rs != 0
}

var _ junction.Junction = (*Junction)(nil)

// New builds a junction from an explicit parameter set. meta and opts may
// be nil. The metadata map is copied so later edits by the caller cannot
// reach into the junction.
func New(data Params, meta map[string]float64, opts *solver.Options) *Junction {
	m := make(map[string]float64, len(meta)+2)
	for k, v := range meta {
		m[k] = v
	}
	return &Junction{Data: data, Meta: m, Options: opts}
}

// FromReference derives a junction at temperature t from parameters known
// at a reference temperature. The saturation currents are rescaled with
// their power-law prefactors and Arrhenius band-gap terms:
//
//	j01(T) = j01_ref * (T/Tref)^3     * exp(-q*Eg/(n1*kB) * (1/T - 1/Tref))
//	j02(T) = j02_ref * (T/Tref)^(5/3) * exp(-q*Eg/(n2*kB) * (1/T - 1/Tref))
//
// The ideality factors and resistances carry over unchanged. The band gap
// (eV) and reference temperature are recorded in the metadata under
// "band_gap" and "t_ref" for traceability; caller-supplied keys of the
// same name take precedence.
func FromReference(bandGap, t float64, ref Params, meta map[string]float64, opts *solver.Options) *Junction {
	j01 := ref.J01 * math.Pow(t/ref.T, 3) *
		math.Exp(-consts.CHARGE*bandGap/(ref.N1*consts.BOLTZMANN)*(1/t-1/ref.T))
	j02 := ref.J02 * math.Pow(t/ref.T, 5.0/3.0) *
		math.Exp(-consts.CHARGE*bandGap/(ref.N2*consts.BOLTZMANN)*(1/t-1/ref.T))

	data := ref
	data.T = t
	data.J01 = j01
	data.J02 = j02

	j := New(data, meta, opts)
	if _, ok := j.Meta["band_gap"]; !ok {
		j.Meta["band_gap"] = bandGap
	}
	if _, ok := j.Meta["t_ref"]; !ok {
		j.Meta["t_ref"] = ref.T
	}
	return j
}

// SolveIV calculates the IV curve of the junction at the given voltages.
//
// A precomputed short circuit current in the parameter set takes precedence
// over derivation from absorption and light source. When the resolved
// short circuit current is zero the result is a dark curve and no
// performance parameters are attached; otherwise Voc, Isc, fill factor and
// the maximum-power point are derived from the curve, plus the conversion
// efficiency when a light source provides the incident power.
func (j *Junction) SolveIV(voltage []float64, absorption *junction.Absorption, light spectrum.LightSource) (*junction.IVResult, error) {
	jsc := j.Data.Jsc
	if !j.Data.HasJsc {
		var err error
		jsc, err = j.shortCircuitCurrent(absorption, light)
		if err != nil {
			return nil, err
		}
	}

	current, err := IV2Diode(voltage, j.Data.WithJsc(jsc), j.Options)
	if err != nil {
		return nil, err
	}

	var params map[string]float64
	if jsc != 0 {
		power := 0.0
		if light != nil {
			power = light.TotalPower()
		}
		params = junction.IVParameters(voltage, current, power)
	}

	return &junction.IVResult{Voltage: voltage, Current: current, Params: params}, nil
}

// SolveQE integrates the absorbed fraction over depth to get the external
// quantum efficiency per wavelength. Every absorbed photon is assumed
// collected, so the internal quantum efficiency is unity. The light source
// is ignored.
func (j *Junction) SolveQE(absorption *junction.Absorption, light spectrum.LightSource) (*junction.QEResult, error) {
	eqe := absorption.IntegratePosition()
	iqe := make([]float64, len(eqe))
	for i := range iqe {
		iqe[i] = 1
	}
	return &junction.QEResult{Wavelength: absorption.Wavelength, EQE: eqe, IQE: iqe}, nil
}

func (j *Junction) SolveEquilibrium() error {
	return junction.ErrNotImplemented
}

func (j *Junction) SolveShortCircuit(absorption *junction.Absorption, light spectrum.LightSource) error {
	return junction.ErrNotImplemented
}

// shortCircuitCurrent folds the light source spectrum through the external
// quantum efficiency:
//
//	jsc = q * integral over wavelength of EQE * photon flux
//
// Without absorption data or a light source the junction is dark and the
// current is zero.
func (j *Junction) shortCircuitCurrent(absorption *junction.Absorption, light spectrum.LightSource) (float64, error) {
	if absorption == nil || light == nil {
		return 0, nil
	}

	flux, err := light.Spectrum(absorption.Wavelength, spectrum.PhotonFluxPerM)
	if err != nil {
		return 0, fmt.Errorf("light source spectrum: %w", err)
	}

	qe, err := j.SolveQE(absorption, light)
	if err != nil {
		return 0, err
	}

	integrand := make([]float64, len(flux))
	for i := range integrand {
		integrand[i] = qe.EQE[i] * flux[i]
	}
	return consts.CHARGE * integrate.Trapezoidal(absorption.Wavelength, integrand), nil
}
