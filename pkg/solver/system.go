package solver

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// system is the linear system behind a Newton update, backed by a sparse
// LU factorization. Vectors are 1-based like the underlying library.
type system struct {
	size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
}

func newSystem(size int) (*system, error) {
	// Translate keeps element insertion valid after Factor has reordered
	// the matrix; the Newton loop refills the same system every iteration.
	config := &sparse.Configuration{
		Real:           true,
		Translate:      true,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &system{
		size:   size,
		matrix: mat,
		rhs:    make([]float64, size+1),
	}, nil
}

func (s *system) Clear() {
	s.matrix.Clear()
	for i := range s.rhs {
		s.rhs[i] = 0
	}
}

func (s *system) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > s.size || j > s.size {
		return
	}
	s.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (s *system) AddRHS(i int, value float64) {
	if i <= 0 || i > s.size {
		return
	}
	s.rhs[i] += value
}

func (s *system) Solve() error {
	var err error

	err = s.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	s.solution, err = s.matrix.Solve(s.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

func (s *system) Solution() []float64 {
	return s.solution
}

func (s *system) Destroy() {
	if s.matrix != nil {
		s.matrix.Destroy()
	}
}
