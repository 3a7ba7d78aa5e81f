package junction

// IVResult associates a voltage sweep with the solved current and, for
// illuminated curves, the derived performance parameters. Dark curves carry
// no parameters.
type IVResult struct {
	Voltage []float64
	Current []float64
	Params  map[string]float64
}

// QEResult holds the quantum efficiency curves indexed by wavelength.
type QEResult struct {
	Wavelength []float64
	EQE        []float64
	IQE        []float64
}

// IVParameters derives the standard photovoltaic figures of merit from an
// illuminated IV curve. The current array follows the diode sign convention
// (negative between short circuit and Voc); the returned parameters use the
// generator convention, so Isc and Pmpp come out positive.
//
// Keys: "Isc", "Voc", "Vmpp", "Impp", "Pmpp", "FF" and, when
// incidentPower > 0, "eta". Parameters whose defining feature lies outside
// the sweep are omitted rather than extrapolated. The voltage array must be
// ascending; a descending sweep derives nothing.
func IVParameters(voltage, current []float64, incidentPower float64) map[string]float64 {
	params := make(map[string]float64)
	if len(voltage) < 2 || len(voltage) != len(current) {
		return params
	}

	var isc float64
	hasIsc := false
	if i0, ok := interpolateAt(voltage, current, 0); ok {
		isc = -i0
		hasIsc = true
		params["Isc"] = isc
	}

	voc, hasVoc := zeroCrossing(voltage, current)
	if hasVoc {
		params["Voc"] = voc
	}

	// Maximum delivered power over the sweep samples.
	mpp := -1
	pmpp := 0.0
	for i := range voltage {
		if p := -voltage[i] * current[i]; p > pmpp {
			pmpp = p
			mpp = i
		}
	}
	if mpp < 0 {
		return params
	}

	params["Vmpp"] = voltage[mpp]
	params["Impp"] = -current[mpp]
	params["Pmpp"] = pmpp
	if hasVoc && hasIsc && voc*isc != 0 {
		params["FF"] = pmpp / (voc * isc)
	}
	if incidentPower > 0 {
		params["eta"] = pmpp / incidentPower
	}
	return params
}

// interpolateAt evaluates y at x0 by linear interpolation, assuming x is
// ascending. The second return is false when x0 is not bracketed.
func interpolateAt(x, y []float64, x0 float64) (float64, bool) {
	for i := 0; i < len(x)-1; i++ {
		if x0 < x[i] || x0 > x[i+1] {
			continue
		}
		if x[i+1] == x[i] {
			return y[i], true
		}
		frac := (x0 - x[i]) / (x[i+1] - x[i])
		return y[i] + frac*(y[i+1]-y[i]), true
	}
	return 0, false
}

// zeroCrossing returns the x value where y crosses zero, found by linear
// interpolation on the first sign change.
func zeroCrossing(x, y []float64) (float64, bool) {
	for i := 0; i < len(y)-1; i++ {
		if y[i] == 0 {
			return x[i], true
		}
		if y[i]*y[i+1] < 0 {
			frac := -y[i] / (y[i+1] - y[i])
			return x[i] + frac*(x[i+1]-x[i]), true
		}
	}
	if last := len(y) - 1; y[last] == 0 {
		return x[last], true
	}
	return 0, false
}
