package junction

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func linspace(start, stop float64, n int) []float64 {
	v := make([]float64, n)
	floats.Span(v, start, stop)
	return v
}

func TestIVParametersLinearCurve(t *testing.T) {
	// I(V) = V - 0.5: Isc = 0.5, Voc = 0.5, Pmpp = 1/16 at V = 1/4.
	voltage := linspace(0, 1, 101)
	current := make([]float64, len(voltage))
	for i, v := range voltage {
		current[i] = v - 0.5
	}

	params := IVParameters(voltage, current, 1.0)

	checks := []struct {
		key  string
		want float64
		tol  float64
	}{
		{"Isc", 0.5, 1e-12},
		{"Voc", 0.5, 1e-9},
		{"Vmpp", 0.25, 1e-6},
		{"Impp", 0.25, 1e-6},
		{"Pmpp", 0.0625, 1e-9},
		{"FF", 0.25, 1e-6},
		{"eta", 0.0625, 1e-9},
	}
	for _, c := range checks {
		got, ok := params[c.key]
		if !ok {
			t.Errorf("missing parameter %s", c.key)
			continue
		}
		if math.Abs(got-c.want) > c.tol {
			t.Errorf("%s: expected %g, got %g", c.key, c.want, got)
		}
	}
}

func TestIVParametersWithoutZeroCrossing(t *testing.T) {
	voltage := linspace(0, 1, 11)
	current := make([]float64, len(voltage))
	for i := range current {
		current[i] = -1
	}

	params := IVParameters(voltage, current, 0)

	if _, ok := params["Voc"]; ok {
		t.Error("Voc must be absent when the current never crosses zero")
	}
	if _, ok := params["FF"]; ok {
		t.Error("FF must be absent without Voc")
	}
	if isc := params["Isc"]; isc != 1 {
		t.Errorf("Isc: expected 1, got %g", isc)
	}
	if _, ok := params["eta"]; ok {
		t.Error("eta must be absent without incident power")
	}
}

func TestIVParametersOutsideSweep(t *testing.T) {
	// Forward-only sweep that never reaches V=0 and delivers no power.
	voltage := linspace(0.1, 1, 10)
	current := make([]float64, len(voltage))
	copy(current, voltage)

	params := IVParameters(voltage, current, 100)
	if len(params) != 0 {
		t.Errorf("expected no derivable parameters, got %v", params)
	}
}

func TestIVParametersShapeMismatch(t *testing.T) {
	params := IVParameters([]float64{0, 1, 2}, []float64{0, 1}, 0)
	if len(params) != 0 {
		t.Errorf("expected empty parameters for mismatched arrays, got %v", params)
	}
}

func TestZeroCrossingExactSample(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{-2, 0, 2, 4}

	got, ok := zeroCrossing(x, y)
	if !ok || got != 1 {
		t.Errorf("expected crossing at exact sample 1, got %g (ok=%v)", got, ok)
	}
}

func TestInterpolateAt(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 10, 40}

	got, ok := interpolateAt(x, y, 1.5)
	if !ok || math.Abs(got-25) > 1e-12 {
		t.Errorf("expected 25 at x=1.5, got %g (ok=%v)", got, ok)
	}

	if _, ok := interpolateAt(x, y, -1); ok {
		t.Error("expected no value outside the sampled range")
	}
}
