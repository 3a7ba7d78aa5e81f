package spectrum

import (
	"fmt"
	"math"

	"pvjunction/internal/consts"
)

// BlackBody is a Planck emitter rescaled so that its wavelength-integrated
// irradiance matches a target incident power. Immutable after construction.
type BlackBody struct {
	T     float64 // Source temperature (K)
	Power float64 // Total incident power (W/m^2)
}

func NewBlackBody(t, power float64) *BlackBody {
	if t <= 0 {
		panic(fmt.Sprintf("black body: temperature must be positive, got %g", t))
	}
	return &BlackBody{T: t, Power: power}
}

// exitance is the Planck spectral radiant exitance per unit wavelength
// (W m^-2 m^-1), rescaled by Power over the Stefan-Boltzmann total.
func (b *BlackBody) exitance(wl float64) float64 {
	hc := consts.PLANCK * consts.LIGHTSPEED
	planck := 2 * math.Pi * hc * consts.LIGHTSPEED /
		(math.Pow(wl, 5) * (math.Exp(hc/(wl*consts.BOLTZMANN*b.T)) - 1))
	return planck * b.Power / (consts.STEFAN * math.Pow(b.T, 4))
}

func (b *BlackBody) Spectrum(wavelength []float64, units Units) ([]float64, error) {
	if units != PhotonFluxPerM && units != PowerDensityPerM {
		return nil, fmt.Errorf("black body: unsupported units %q", units)
	}

	out := make([]float64, len(wavelength))
	for i, wl := range wavelength {
		if wl <= 0 {
			return nil, fmt.Errorf("black body: wavelength must be positive, got %g", wl)
		}
		m := b.exitance(wl)
		if units == PhotonFluxPerM {
			// Divide out the photon energy hc/lambda.
			m *= wl / (consts.PLANCK * consts.LIGHTSPEED)
		}
		out[i] = m
	}
	return out, nil
}

func (b *BlackBody) TotalPower() float64 {
	return b.Power
}
