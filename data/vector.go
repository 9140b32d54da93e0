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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/mlondschien/sempler/internal"
	"github.com/mlondschien/sempler/noise"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements drawn from the provided noise.Sampler.
func NewRandomVector(len int, sampler noise.Sampler) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return vec
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))
	for i, c := range v {
		sum[i] = c + other[i]
	}

	return sum
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := make(Vector, len(v))
	for i, c := range v {
		sub[i] = c - other[i]
	}

	return sub
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, errors.Wrap(internal.DimensionMismatch, "vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}

// Select returns the sub-vector of v indexed by idx, in the order
// given. It returns an error if an index is out of range.
func (v Vector) Select(idx []int) (Vector, error) {
	res := make(Vector, len(idx))
	for i, j := range idx {
		if j < 0 || j >= len(v) {
			return nil, errors.Wrap(internal.MalformedInput, fmt.Sprintf("index %d out of range", j))
		}
		res[i] = v[j]
	}

	return res, nil
}

// EqualsApprox returns a bool indicating whether vectors v and other
// have the same length and element-wise differ by at most tol.
func (v Vector) EqualsApprox(other Vector, tol float64) bool {
	if len(v) != len(other) {
		return false
	}
	for i, c := range v {
		if math.Abs(c-other[i]) > tol {
			return false
		}
	}

	return true
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, yi := range v {
		parts[i] = strconv.FormatFloat(yi, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}
