// Package matrix implements Gaussian elimination over GF(p), tolerant of
// singular systems: when the coefficient matrix is singular but the
// augmented system is still consistent, Solve returns one particular
// solution rather than failing outright. This is what the Berlekamp-Welch
// decoder's linear system needs, since an honest set of samples can still
// leave the interpolation system under-determined.
package matrix

import (
	"fuzzyvault/internal/ferr"
	"fuzzyvault/internal/field"
)

// Matrix is a dense row-major matrix over a fixed field.
type Matrix struct {
	F          field.Field
	Rows, Cols int
	data       []field.Elem
}

// New allocates a zeroed rows x cols matrix over f.
func New(f field.Field, rows, cols int) Matrix {
	return Matrix{F: f, Rows: rows, Cols: cols, data: make([]field.Elem, rows*cols)}
}

// At returns the element at (row, col).
func (m Matrix) At(row, col int) field.Elem {
	return m.data[row*m.Cols+col]
}

// Set assigns the element at (row, col).
func (m Matrix) Set(row, col int, v field.Elem) {
	m.data[row*m.Cols+col] = v
}

// Clone returns an independent copy of m.
func (m Matrix) Clone() Matrix {
	out := New(m.F, m.Rows, m.Cols)
	copy(out.data, m.data)
	return out
}

// Mul returns m*v for a column-vector v (Rows x 1).
func (m Matrix) Mul(v Matrix) Matrix {
	out := New(m.F, m.Rows, 1)
	for i := 0; i < m.Rows; i++ {
		var acc field.Elem
		for j := 0; j < m.Cols; j++ {
			acc = m.F.Add(acc, m.F.Mul(m.At(i, j), v.At(j, 0)))
		}
		out.Set(i, 0, acc)
	}
	return out
}

// Augment glues the column vector y onto the right of the square matrix m,
// producing an n x (n+1) matrix ready for row_echelon.
func Augment(m, y Matrix) (Matrix, error) {
	if m.Rows == 0 || m.Rows != m.Cols {
		return Matrix{}, ferr.New(ferr.InvalidInput, "augment: m must be square and nonempty")
	}
	if y.Rows != m.Rows || y.Cols != 1 {
		return Matrix{}, ferr.New(ferr.InvalidInput, "augment: y must be an n x 1 column vector")
	}
	out := New(m.F, m.Rows, m.Cols+1)
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			out.Set(row, col, m.At(row, col))
		}
		out.Set(row, m.Cols, y.At(row, 0))
	}
	return out, nil
}

func (m Matrix) swapRows(i, j int) {
	if i == j {
		return
	}
	for col := 0; col < m.Cols; col++ {
		m.data[i*m.Cols+col], m.data[j*m.Cols+col] = m.data[j*m.Cols+col], m.data[i*m.Cols+col]
	}
}

// rowIndexWithNonzero finds a row >= h whose k'th entry is nonzero. The
// second return value is false if every such row has a zero in column k.
func (m Matrix) rowIndexWithNonzero(h, k int) (int, bool) {
	for i := h; i < m.Rows; i++ {
		if m.At(i, k) != 0 {
			return i, true
		}
	}
	return 0, false
}

// RowEchelon converts m in place to row-echelon form with ones on the
// diagonal wherever a nonzero pivot could be found, skipping columns where
// every remaining row is zero.
func RowEchelon(m Matrix) {
	f := m.F
	h, k := 0, 0
	for h < m.Rows && k < m.Cols {
		pivotRow, ok := m.rowIndexWithNonzero(h, k)
		if !ok {
			k++
			continue
		}
		m.swapRows(h, pivotRow)

		scale := f.Inv(m.At(h, k))
		for i := k; i < m.Cols; i++ {
			m.Set(h, i, f.Mul(m.At(h, i), scale))
		}
		for i := h + 1; i < m.Rows; i++ {
			factor := m.At(i, k)
			m.Set(i, k, 0)
			for j := k + 1; j < m.Cols; j++ {
				m.Set(i, j, f.Sub(m.At(i, j), f.Mul(m.At(h, j), factor)))
			}
		}
		h++
		k++
	}
}

// IsSingular reports whether an echelon-form square-system matrix (n x n+1,
// from Augment) has a zero on its diagonal.
func IsSingular(m Matrix) bool {
	for row := 0; row < m.Rows; row++ {
		if m.At(row, row) == 0 {
			return true
		}
	}
	return false
}

// CountNullRows counts all-zero rows starting from the bottom of an
// echelon-form matrix.
func CountNullRows(m Matrix) int {
	count := 0
	for row := m.Rows - 1; row >= 0; row-- {
		allZero := true
		for col := 0; col < m.Cols; col++ {
			if m.At(row, col) != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			return count
		}
		count++
	}
	return count
}

func findLeadingOne(m Matrix, row int) (int, error) {
	for col := 0; col < m.Cols; col++ {
		if m.At(row, col) == 1 {
			return col, nil
		}
	}
	return 0, ferr.New(ferr.NoSolution, "no leading one found in row")
}

// BackSubstitution performs back substitution on an echelon-form matrix
// whose diagonal is all ones, leaving the first column's row (row 0)
// untouched until the loop naturally reaches it.
func BackSubstitution(m Matrix) {
	f := m.F
	last := m.Cols - 1
	for row := m.Rows - 1; row > 0; row-- {
		for row1 := row - 1; row1 >= 0; row1-- {
			temp := f.Mul(m.At(row1, row), m.At(row, last))
			m.Set(row1, row, 0)
			m.Set(row1, last, f.Sub(m.At(row1, last), temp))
		}
	}
}

// SolveNormalCase completes a non-singular echelon-form system by back
// substitution and lifts the last column out as the solution vector.
func SolveNormalCase(m Matrix) Matrix {
	BackSubstitution(m)
	x := New(m.F, m.Rows, 1)
	for i := 0; i < m.Rows; i++ {
		x.Set(i, 0, m.At(i, m.Cols-1))
	}
	return x
}

// SolveSingularCase returns one particular solution of a singular but
// consistent echelon-form system, or a NoSolution error if the system is
// inconsistent.
func SolveSingularCase(m Matrix) (Matrix, error) {
	f := m.F
	nullCount := CountNullRows(m)
	if nullCount == 0 {
		return Matrix{}, ferr.New(ferr.NoSolution, "singular system is inconsistent")
	}
	x := New(f, m.Cols-1, 1)
	for row := m.Rows - nullCount - 1; row >= 0; row-- {
		col, err := findLeadingOne(m, row)
		if err != nil {
			return Matrix{}, err
		}
		if col == m.Cols-1 {
			return Matrix{}, ferr.New(ferr.NoSolution, "singular system is inconsistent")
		}
		x.Set(col, 0, m.At(row, m.Cols-1))
		for row1 := row - 1; row1 >= 0; row1-- {
			factor := m.At(row1, col)
			m.Set(row1, col, 0)
			for col1 := col + 1; col1 < m.Cols; col1++ {
				m.Set(row1, col1, f.Sub(m.At(row1, col1), f.Mul(factor, m.At(row, col1))))
			}
		}
	}
	return x, nil
}

// Solve solves m*x = y over GF(p), falling back to a particular solution
// when the system is singular but consistent, and verifying the result
// before returning it.
func Solve(m, y Matrix) (Matrix, error) {
	a, err := Augment(m, y)
	if err != nil {
		return Matrix{}, err
	}
	RowEchelon(a)

	var x Matrix
	if IsSingular(a) {
		x, err = SolveSingularCase(a)
		if err != nil {
			return Matrix{}, err
		}
	} else {
		x = SolveNormalCase(a)
	}

	check := m.Mul(x)
	for i := 0; i < y.Rows; i++ {
		if check.At(i, 0) != y.At(i, 0) {
			return Matrix{}, ferr.New(ferr.NoSolution, "solution failed verification m*x = y")
		}
	}
	return x, nil
}
