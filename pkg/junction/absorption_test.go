package junction

import (
	"math"
	"testing"
)

func TestIntegratePosition(t *testing.T) {
	a := NewAbsorption(
		[]float64{500e-9},
		[]float64{0, 1, 3},
		[][]float64{{0, 2, 2}},
	)

	got := a.IntegratePosition()
	// Trapezoids: (0+2)/2*1 + (2+2)/2*2 = 5.
	if len(got) != 1 || math.Abs(got[0]-5) > 1e-12 {
		t.Errorf("expected integral 5, got %v", got)
	}
}

func TestNewAbsorptionShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched shapes")
		}
	}()
	NewAbsorption([]float64{1, 2}, []float64{0, 1}, [][]float64{{0, 0}})
}
