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

package scm

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mlondschien/sempler/data"
	"github.com/mlondschien/sempler/internal"
)

// NormalDistribution is a multivariate normal distribution given by
// its mean vector and covariance matrix.
type NormalDistribution struct {
	Mean       data.Vector
	Covariance data.Matrix
}

// NewNormalDistribution returns an instance of NormalDistribution.
// It returns an error if the covariance matrix is not square and
// symmetric or does not match the mean in dimension.
func NewNormalDistribution(mean data.Vector, covariance data.Matrix) (*NormalDistribution, error) {
	p := len(mean)
	if covariance.Rows() != p || covariance.Cols() != p {
		return nil, errors.Wrap(internal.DimensionMismatch, "covariance should be square with one row per mean entry")
	}
	if !covariance.EqualsApprox(covariance.Transpose(), 1e-9) {
		return nil, errors.Wrap(internal.MalformedInput, "covariance should be symmetric")
	}

	return &NormalDistribution{
		Mean:       mean.Copy(),
		Covariance: covariance.Copy(),
	}, nil
}

// P returns the number of variables of the distribution.
func (d *NormalDistribution) P() int {
	return len(d.Mean)
}

// Sample draws n observations from the distribution. The result is
// returned as an n x p matrix with one observation per row. A nil
// src falls back to a global pseudo-random source.
//
// The covariance is factorized with a Cholesky decomposition,
// falling back to a symmetric eigendecomposition with clipped
// eigenvalues when the covariance is only positive semi-definite.
func (d *NormalDistribution) Sample(n int, src rand.Source) (data.Matrix, error) {
	if n < 1 {
		return nil, errors.Wrap(internal.MalformedInput, "sample size should be positive")
	}

	factor, err := d.factor()
	if err != nil {
		return nil, err
	}

	std := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	p := d.P()

	obs := make([]data.Vector, n)
	for i := 0; i < n; i++ {
		z := make(data.Vector, p)
		for j := 0; j < p; j++ {
			z[j] = std.Rand()
		}
		fz, err := factor.MulVec(z)
		if err != nil {
			return nil, err
		}
		obs[i] = d.Mean.Add(fz)
	}

	return data.NewMatrix(obs)
}

// Marginal returns the marginal distribution of the variables
// indexed by idx, in the order given.
func (d *NormalDistribution) Marginal(idx []int) (*NormalDistribution, error) {
	mean, err := d.Mean.Select(idx)
	if err != nil {
		return nil, err
	}
	covariance, err := d.Covariance.SubMatrix(idx, idx)
	if err != nil {
		return nil, err
	}

	return NewNormalDistribution(mean, covariance)
}

// Conditional returns the distribution of the variables indexed by
// ys conditioned on the variables indexed by xs taking the values x.
func (d *NormalDistribution) Conditional(ys, xs []int, x data.Vector) (*NormalDistribution, error) {
	if len(xs) == 0 {
		return d.Marginal(ys)
	}
	if len(x) != len(xs) {
		return nil, errors.Wrap(internal.DimensionMismatch, "one value per conditioning variable is required")
	}

	meanY, err := d.Mean.Select(ys)
	if err != nil {
		return nil, err
	}
	meanX, err := d.Mean.Select(xs)
	if err != nil {
		return nil, err
	}
	covYY, err := d.Covariance.SubMatrix(ys, ys)
	if err != nil {
		return nil, err
	}
	covYX, err := d.Covariance.SubMatrix(ys, xs)
	if err != nil {
		return nil, err
	}
	covXX, err := d.Covariance.SubMatrix(xs, xs)
	if err != nil {
		return nil, err
	}

	covXXInv, err := covXX.Inverse()
	if err != nil {
		return nil, errors.Wrap(err, "conditioning variables are degenerate")
	}

	// mean = meanY + covYX covXX⁻¹ (x - meanX)
	gain, err := covYX.Mul(covXXInv)
	if err != nil {
		return nil, err
	}
	shift, err := gain.MulVec(x.Sub(meanX))
	if err != nil {
		return nil, err
	}

	// covariance = covYY - covYX covXX⁻¹ covXY
	reduction, err := gain.Mul(covYX.Transpose())
	if err != nil {
		return nil, err
	}
	covariance, err := covYY.Sub(reduction)
	if err != nil {
		return nil, err
	}

	return NewNormalDistribution(meanY.Add(shift), covariance)
}

// Regress returns the coefficients and intercept of the population
// least-squares regression of variable y on the variables xs. The
// coefficient vector has one entry per variable of the distribution,
// zero outside xs.
func (d *NormalDistribution) Regress(y int, xs []int) (data.Vector, float64, error) {
	if y < 0 || y >= d.P() {
		return nil, 0, errors.Wrap(internal.MalformedInput, "response index out of range")
	}

	coefs := data.NewConstantVector(d.P(), 0)
	if len(xs) == 0 {
		return coefs, d.Mean[y], nil
	}

	covYX, err := d.Covariance.SubMatrix([]int{y}, xs)
	if err != nil {
		return nil, 0, err
	}
	covXX, err := d.Covariance.SubMatrix(xs, xs)
	if err != nil {
		return nil, 0, err
	}
	covXXInv, err := covXX.Inverse()
	if err != nil {
		return nil, 0, errors.Wrap(err, "regressors are degenerate")
	}

	gain, err := covXXInv.MulVec(covYX[0])
	if err != nil {
		return nil, 0, err
	}
	for i, j := range xs {
		coefs[j] = gain[i]
	}

	meanX, err := d.Mean.Select(xs)
	if err != nil {
		return nil, 0, err
	}
	dot, err := gain.Dot(meanX)
	if err != nil {
		return nil, 0, err
	}

	return coefs, d.Mean[y] - dot, nil
}

// MSE returns the population mean squared error of the least-squares
// regression of variable y on the variables xs.
func (d *NormalDistribution) MSE(y int, xs []int) (float64, error) {
	if y < 0 || y >= d.P() {
		return 0, errors.Wrap(internal.MalformedInput, "response index out of range")
	}
	if len(xs) == 0 {
		return d.Covariance[y][y], nil
	}

	covYX, err := d.Covariance.SubMatrix([]int{y}, xs)
	if err != nil {
		return 0, err
	}
	covXX, err := d.Covariance.SubMatrix(xs, xs)
	if err != nil {
		return 0, err
	}
	covXXInv, err := covXX.Inverse()
	if err != nil {
		return 0, errors.Wrap(err, "regressors are degenerate")
	}

	gain, err := covXXInv.MulVec(covYX[0])
	if err != nil {
		return 0, err
	}
	reduction, err := gain.Dot(covYX[0])
	if err != nil {
		return 0, err
	}

	return d.Covariance[y][y] - reduction, nil
}

// EqualsApprox returns a bool indicating whether distributions d and
// other have means and covariances element-wise within tol.
func (d *NormalDistribution) EqualsApprox(other *NormalDistribution, tol float64) bool {
	return d.Mean.EqualsApprox(other.Mean, tol) &&
		d.Covariance.EqualsApprox(other.Covariance, tol)
}

// factor returns a matrix F with covariance = F Fᵀ.
func (d *NormalDistribution) factor() (data.Matrix, error) {
	p := d.P()
	sym := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			sym.SetSym(i, j, (d.Covariance[i][j]+d.Covariance[j][i])/2)
		}
	}

	var chol mat.Cholesky
	if chol.Factorize(sym) {
		var l mat.TriDense
		chol.LTo(&l)

		return data.NewMatrixFromDense(mat.DenseCopyOf(&l)), nil
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, errors.Wrap(internal.MalformedInput, "covariance could not be factorized")
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// F = Q sqrt(Λ), negative eigenvalues clipped to zero.
	factor := mat.NewDense(p, p, nil)
	for j := 0; j < p; j++ {
		s := math.Sqrt(math.Max(values[j], 0))
		for i := 0; i < p; i++ {
			factor.Set(i, j, vectors.At(i, j)*s)
		}
	}

	return data.NewMatrixFromDense(factor), nil
}
