/*
 * Copyright (c) 2020 The sempler authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/mlondschien/sempler/internal"
	"github.com/mlondschien/sempler/noise"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrap(internal.DimensionMismatch, "all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements drawn from the provided noise.Sampler.
func NewRandomMatrix(rows, cols int, sampler noise.Sampler) Matrix {
	matrix := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		matrix[i] = NewRandomVector(cols, sampler)
	}

	return Matrix(matrix)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	matrix := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		matrix[i] = NewConstantVector(cols, c)
	}

	return Matrix(matrix)
}

// NewIdentityMatrix returns the identity matrix of dimension n.
func NewIdentityMatrix(n int) Matrix {
	matrix := NewConstantMatrix(n, n, 0)
	for i := 0; i < n; i++ {
		matrix[i][i] = 1
	}

	return matrix
}

// NewDiagonalMatrix returns a square matrix with the elements of v on
// the diagonal and zeros elsewhere.
func NewDiagonalMatrix(v Vector) Matrix {
	matrix := NewConstantMatrix(len(v), len(v), 0)
	for i, c := range v {
		matrix[i][i] = c
	}

	return matrix
}

// NewMatrixFromDense converts a gonum dense matrix into a new Matrix
// instance.
func NewMatrixFromDense(d *mat.Dense) Matrix {
	rows, _ := d.Dims()
	matrix := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		matrix[i] = NewVector(d.RawRowView(i)).Copy()
	}

	return Matrix(matrix)
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// Copy creates a new matrix with the same values of the entries.
func (m Matrix) Copy() Matrix {
	newMat := make(Matrix, len(m))
	for i, v := range m {
		newMat[i] = v.Copy()
	}

	return newMat
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i < 0 || i >= m.Cols() {
		return nil, errors.Wrap(internal.MalformedInput, "column index exceeds matrix dimensions")
	}

	column := make(Vector, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return column, nil
}

// GetRow returns i-th row of matrix m as a vector.
// It returns error if i >= the number of m's rows.
func (m Matrix) GetRow(i int) (Vector, error) {
	if i < 0 || i >= m.Rows() {
		return nil, errors.Wrap(internal.MalformedInput, "row index exceeds matrix dimensions")
	}

	return m[i].Copy(), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// Apply applies an element-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(float64) float64) Matrix {
	res := make(Matrix, len(m))
	for i, vi := range m {
		res[i] = vi.Apply(f)
	}

	return res
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, errors.Wrap(internal.DimensionMismatch, "matrices mismatch in dimensions")
	}

	vectors := make([]Vector, m.Rows())
	for i, v := range m {
		vectors[i] = v.Add(other[i])
	}

	return NewMatrix(vectors)
}

// Sub subtracts matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, errors.Wrap(internal.DimensionMismatch, "matrices mismatch in dimensions")
	}

	vecs := make([]Vector, m.Rows())
	for i, v := range m {
		vecs[i] = v.Sub(other[i])
	}

	return NewMatrix(vecs)
}

// MulScalar multiplies elements of matrix m by a scalar x.
// The result is returned in a new Matrix.
func (m Matrix) MulScalar(x float64) Matrix {
	return m.Apply(func(c float64) float64 {
		return c * x
	})
}

// Mul multiplies matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if the number of columns of m differs from the
// number of rows of other.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, errors.Wrap(internal.DimensionMismatch, "cannot multiply matrices")
	}

	var prod mat.Dense
	prod.Mul(m.Dense(), other.Dense())

	return NewMatrixFromDense(&prod), nil
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the number
// of elements of v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, errors.Wrap(internal.DimensionMismatch, "cannot multiply matrix by a vector")
	}

	res := make(Vector, m.Rows())
	for i, row := range m {
		res[i], _ = row.Dot(v)
	}

	return res, nil
}

// SubMatrix returns the block of matrix m with the given rows and
// columns, in the order given.
// It returns an error if an index is out of range.
func (m Matrix) SubMatrix(rows, cols []int) (Matrix, error) {
	vecs := make([]Vector, len(rows))
	for i, r := range rows {
		if r < 0 || r >= m.Rows() {
			return nil, errors.Wrap(internal.MalformedInput, "row index exceeds matrix dimensions")
		}
		v, err := m[r].Select(cols)
		if err != nil {
			return nil, err
		}
		vecs[i] = v
	}

	return NewMatrix(vecs)
}

// Inverse computes the inverse of a square matrix m.
// The result is returned in a new Matrix.
// Error is returned if m is not square or is singular.
func (m Matrix) Inverse() (Matrix, error) {
	if m.Rows() != m.Cols() {
		return nil, errors.Wrap(internal.DimensionMismatch, "only square matrices can be inverted")
	}

	var inv mat.Dense
	if err := inv.Inverse(m.Dense()); err != nil {
		return nil, errors.Wrap(err, "matrix is singular")
	}

	return NewMatrixFromDense(&inv), nil
}

// EqualsApprox returns a bool indicating whether matrices m and other
// have the same dimensions and element-wise differ by at most tol.
func (m Matrix) EqualsApprox(other Matrix, tol float64) bool {
	if !m.DimsMatch(other) {
		return false
	}
	for i, v := range m {
		if !v.EqualsApprox(other[i], tol) {
			return false
		}
	}

	return true
}

// Dense converts matrix m into a gonum dense matrix. An empty matrix
// converts to an empty dense matrix.
func (m Matrix) Dense() *mat.Dense {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}

	values := make([]float64, 0, rows*cols)
	for _, v := range m {
		values = append(values, v...)
	}

	return mat.NewDense(rows, cols, values)
}

// String produces a string representation of a matrix.
func (m Matrix) String() string {
	mStr := ""
	for _, v := range m {
		mStr = mStr + v.String() + "\n"
	}

	return mStr
}
