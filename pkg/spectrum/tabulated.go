package spectrum

import (
	"fmt"
	"sort"
)

// Tabulated is a light source backed by a measured photon flux table,
// linearly interpolated between samples. Wavelengths outside the table give
// zero flux.
type Tabulated struct {
	Wavelength []float64 // Ascending (m)
	Flux       []float64 // Photon flux density per wavelength
	Power      float64   // Total incident power (W/m^2)
}

func NewTabulated(wavelength, flux []float64, power float64) *Tabulated {
	if len(wavelength) < 2 || len(wavelength) != len(flux) {
		panic(fmt.Sprintf("tabulated source: need matching tables of at least 2 samples, got %d and %d",
			len(wavelength), len(flux)))
	}
	for i := 1; i < len(wavelength); i++ {
		if wavelength[i] <= wavelength[i-1] {
			panic(fmt.Sprintf("tabulated source: wavelengths must be strictly ascending at index %d", i))
		}
	}
	return &Tabulated{Wavelength: wavelength, Flux: flux, Power: power}
}

func (t *Tabulated) Spectrum(wavelength []float64, units Units) ([]float64, error) {
	if units != PhotonFluxPerM {
		return nil, fmt.Errorf("tabulated source: unsupported units %q", units)
	}

	out := make([]float64, len(wavelength))
	for i, wl := range wavelength {
		out[i] = t.at(wl)
	}
	return out, nil
}

func (t *Tabulated) at(wl float64) float64 {
	n := len(t.Wavelength)
	if wl < t.Wavelength[0] || wl > t.Wavelength[n-1] {
		return 0
	}

	i := sort.SearchFloat64s(t.Wavelength, wl)
	if i < n && t.Wavelength[i] == wl {
		return t.Flux[i]
	}

	// wl lies strictly between samples i-1 and i.
	frac := (wl - t.Wavelength[i-1]) / (t.Wavelength[i] - t.Wavelength[i-1])
	return t.Flux[i-1] + frac*(t.Flux[i]-t.Flux[i-1])
}

func (t *Tabulated) TotalPower() float64 {
	return t.Power
}
