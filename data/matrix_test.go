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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlondschien/sempler/noise"
)

func TestMatrix(t *testing.T) {
	rows, cols := 5, 3
	sampler, err := noise.NewUniform(-1, 1, noise.NewSource(42))
	if err != nil {
		t.Fatalf("Error during sampler creation: %v", err)
	}

	m := NewRandomMatrix(rows, cols, sampler)
	assert.Equal(t, rows, m.Rows())
	assert.Equal(t, cols, m.Cols())

	mT := m.Transpose()
	assert.Equal(t, cols, mT.Rows())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, m[i][j], mT[j][i], "transposition should swap indices")
		}
	}

	sum, err := m.Add(m)
	if err != nil {
		t.Fatalf("Error during matrix addition: %v", err)
	}
	assert.True(t, sum.EqualsApprox(m.MulScalar(2), 1e-12), "m + m should equal 2m")

	diff, err := m.Sub(m)
	if err != nil {
		t.Fatalf("Error during matrix subtraction: %v", err)
	}
	assert.True(t, diff.EqualsApprox(NewConstantMatrix(rows, cols, 0), 1e-12), "m - m should be zero")

	_, err = m.Add(NewConstantMatrix(rows, cols+1, 0))
	assert.Error(t, err, "addition of mismatched matrices should fail")
}

func TestMatrix_New(t *testing.T) {
	_, err := NewMatrix([]Vector{{1, 2}, {3}})
	assert.Error(t, err, "vectors of unequal length should be rejected")

	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}
	assert.Equal(t, 2, m.Rows())
}

func TestMatrix_Mul(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	prod, err := m.Mul(NewIdentityMatrix(2))
	if err != nil {
		t.Fatalf("Error during matrix multiplication: %v", err)
	}
	assert.True(t, prod.EqualsApprox(m, 1e-12), "multiplication by identity should not change the matrix")

	v, err := m.MulVec(Vector{1, 1})
	if err != nil {
		t.Fatalf("Error during matrix-vector multiplication: %v", err)
	}
	assert.True(t, v.EqualsApprox(Vector{3, 7}, 1e-12), "matrix-vector product should calculate correctly")

	_, err = m.Mul(NewConstantMatrix(3, 3, 0))
	assert.Error(t, err, "multiplication of mismatched matrices should fail")
}

func TestMatrix_Inverse(t *testing.T) {
	m, err := NewMatrix([]Vector{{2, 0}, {1, 1}})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Error during matrix inversion: %v", err)
	}

	prod, err := m.Mul(inv)
	if err != nil {
		t.Fatalf("Error during matrix multiplication: %v", err)
	}
	assert.True(t, prod.EqualsApprox(NewIdentityMatrix(2), 1e-9), "m * m⁻¹ should be the identity")

	_, err = NewConstantMatrix(2, 3, 1).Inverse()
	assert.Error(t, err, "inversion of a non-square matrix should fail")

	_, err = NewConstantMatrix(2, 2, 1).Inverse()
	assert.Error(t, err, "inversion of a singular matrix should fail")
}

func TestMatrix_SubMatrix(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	block, err := m.SubMatrix([]int{0, 2}, []int{1, 2})
	if err != nil {
		t.Fatalf("Error during block extraction: %v", err)
	}
	expected, _ := NewMatrix([]Vector{{2, 3}, {8, 9}})
	assert.True(t, block.EqualsApprox(expected, 1e-12), "block should pick the given rows and columns")

	_, err = m.SubMatrix([]int{3}, []int{0})
	assert.Error(t, err, "out of range row index should fail")
}

func TestMatrix_Dense(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	back := NewMatrixFromDense(m.Dense())
	assert.True(t, back.EqualsApprox(m, 0), "dense round trip should preserve entries")

	// Mutating the round-tripped copy must not alias the original.
	back[0][0] = -1
	assert.Equal(t, 1.0, m[0][0])
}

func TestMatrix_DenseEmpty(t *testing.T) {
	empty := Matrix{}

	d := empty.Dense()
	rows, cols := d.Dims()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)

	assert.Equal(t, 0, NewMatrixFromDense(d).Rows())
}

func TestMatrix_Diagonal(t *testing.T) {
	d := NewDiagonalMatrix(Vector{1, 2})
	expected, _ := NewMatrix([]Vector{{1, 0}, {0, 2}})
	assert.True(t, d.EqualsApprox(expected, 0))

	id := NewIdentityMatrix(3)
	prod, err := id.Mul(id)
	if err != nil {
		t.Fatalf("Error during matrix multiplication: %v", err)
	}
	assert.True(t, prod.EqualsApprox(id, 0), "identity should be idempotent under multiplication")
}
