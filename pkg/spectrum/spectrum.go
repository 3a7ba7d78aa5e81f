// Package spectrum models light sources as spectral densities over
// wavelength. Junction solvers consume it to derive photocurrents and to
// normalize conversion efficiencies.
package spectrum

// Units selects the quantity returned by a spectrum query.
type Units string

const (
	// PhotonFluxPerM is photon flux density per unit wavelength
	// (photons m^-2 s^-1 m^-1).
	PhotonFluxPerM Units = "photon_flux_per_m"
	// PowerDensityPerM is spectral irradiance per unit wavelength
	// (W m^-2 m^-1).
	PowerDensityPerM Units = "power_density_per_m"
)

// LightSource produces a spectrum on request and knows its total incident
// power.
type LightSource interface {
	// Spectrum evaluates the spectral density at the given wavelengths (m)
	// in the requested units.
	Spectrum(wavelength []float64, units Units) ([]float64, error)
	// TotalPower returns the irradiance integrated over the whole spectrum
	// (W m^-2).
	TotalPower() float64
}
