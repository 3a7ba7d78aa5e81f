package junction

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
)

// Absorption is the fraction of incident light absorbed per unit depth,
// indexed by wavelength and position. Fraction[i][k] belongs to
// Wavelength[i] and Position[k]; positions ascend into the junction.
type Absorption struct {
	Wavelength []float64 // m
	Position   []float64 // m
	Fraction   [][]float64
}

func NewAbsorption(wavelength, position []float64, fraction [][]float64) *Absorption {
	if len(fraction) != len(wavelength) {
		panic(fmt.Sprintf("absorption: %d fraction rows for %d wavelengths", len(fraction), len(wavelength)))
	}
	for i, row := range fraction {
		if len(row) != len(position) {
			panic(fmt.Sprintf("absorption: row %d has %d samples for %d positions", i, len(row), len(position)))
		}
	}
	return &Absorption{Wavelength: wavelength, Position: position, Fraction: fraction}
}

// IntegratePosition integrates the absorbed fraction over depth. Light
// absorbed anywhere in the junction contributes, so the result is the
// externally collected fraction per wavelength.
func (a *Absorption) IntegratePosition() []float64 {
	out := make([]float64, len(a.Wavelength))
	for i, row := range a.Fraction {
		out[i] = integrate.Trapezoidal(a.Position, row)
	}
	return out
}
