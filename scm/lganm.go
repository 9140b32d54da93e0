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

	"github.com/mlondschien/sempler/data"
	"github.com/mlondschien/sempler/internal"
	"github.com/mlondschien/sempler/internal/dag"
	"github.com/mlondschien/sempler/noise"
)

// Bounds delimits the interval [Lo, Hi) from which a per-variable
// parameter is sampled uniformly.
type Bounds struct {
	Lo float64
	Hi float64
}

// LGANM represents a linear model with Gaussian additive noise,
//
//	X = Wᵀ X + N,  N ~ N(means, diag(variances)),
//
// where W is the weighted adjacency matrix of a DAG. W[i][j] != 0
// denotes the edge i -> j with that weight.
type LGANM struct {
	W         data.Matrix
	Means     data.Vector
	Variances data.Vector

	p int
}

// NewLGANM returns an instance of an LGANM with fixed noise means
// and variances. It returns an error if w is not the adjacency
// matrix of a DAG, if the parameter vectors do not have one entry
// per variable, or if a variance is negative.
func NewLGANM(w data.Matrix, means, variances data.Vector) (*LGANM, error) {
	if _, err := dag.TopologicalOrder(w); err != nil {
		return nil, err
	}

	p := w.Rows()
	if len(means) != p || len(variances) != p {
		return nil, errors.Wrap(internal.DimensionMismatch, "noise parameters should have one entry per variable")
	}
	for _, v := range variances {
		if v < 0 {
			return nil, errors.Wrap(internal.MalformedInput, "variances should be non-negative")
		}
	}

	return &LGANM{
		W:         w.Copy(),
		Means:     means.Copy(),
		Variances: variances.Copy(),
		p:         p,
	}, nil
}

// NewRandomLGANM returns an instance of an LGANM whose noise means
// and variances are sampled uniformly from the given bounds. Variance
// bounds should be non-negative.
func NewRandomLGANM(w data.Matrix, meanBounds, varianceBounds Bounds, src rand.Source) (*LGANM, error) {
	if varianceBounds.Lo < 0 {
		return nil, errors.Wrap(internal.MalformedBounds, "variance bounds should be non-negative")
	}

	meanSampler, err := noise.NewUniform(meanBounds.Lo, meanBounds.Hi, src)
	if err != nil {
		return nil, err
	}
	varSampler, err := noise.NewUniform(varianceBounds.Lo, varianceBounds.Hi, src)
	if err != nil {
		return nil, err
	}

	p := w.Rows()
	means := data.NewRandomVector(p, meanSampler)
	variances := data.NewRandomVector(p, varSampler)

	return NewLGANM(w, means, variances)
}

// P returns the number of variables of the model.
func (m *LGANM) P() int {
	return m.p
}

// Sample draws n observations from the model, optionally under
// interventions. The result is returned as an n x p matrix with one
// observation per row. A nil src falls back to a global
// pseudo-random source.
func (m *LGANM) Sample(n int, src rand.Source, ivs ...*Intervention) (data.Matrix, error) {
	if n < 1 {
		return nil, errors.Wrap(internal.MalformedInput, "sample size should be positive")
	}

	w, means, variances, err := m.applied(ivs)
	if err != nil {
		return nil, err
	}

	sm, err := samplingMatrix(w)
	if err != nil {
		return nil, err
	}

	// Noise matrix with rows ~ N(means, diag(variances)).
	samplers := make([]noise.Sampler, m.p)
	for j := 0; j < m.p; j++ {
		samplers[j], err = noise.NewNormal(means[j], math.Sqrt(variances[j]), src)
		if err != nil {
			return nil, err
		}
	}

	obs := make([]data.Vector, n)
	for i := 0; i < n; i++ {
		e := make(data.Vector, m.p)
		for j := 0; j < m.p; j++ {
			e[j] = samplers[j].Sample()
		}
		obs[i], err = sm.MulVec(e)
		if err != nil {
			return nil, err
		}
	}

	return data.NewMatrix(obs)
}

// PopulationDistribution returns the multivariate normal
// distribution the model entails, optionally under interventions.
func (m *LGANM) PopulationDistribution(ivs ...*Intervention) (*NormalDistribution, error) {
	w, means, variances, err := m.applied(ivs)
	if err != nil {
		return nil, err
	}

	sm, err := samplingMatrix(w)
	if err != nil {
		return nil, err
	}

	mean, err := sm.MulVec(means)
	if err != nil {
		return nil, err
	}

	// covariance = M diag(variances) Mᵀ
	md, err := sm.Mul(data.NewDiagonalMatrix(variances))
	if err != nil {
		return nil, err
	}
	covariance, err := md.Mul(sm.Transpose())
	if err != nil {
		return nil, err
	}

	return NewNormalDistribution(mean, covariance)
}

// applied returns copies of the adjacency matrix and noise
// parameters with the given interventions applied, shift first, then
// noise, then do.
func (m *LGANM) applied(ivs []*Intervention) (data.Matrix, data.Vector, data.Vector, error) {
	iv := mergeInterventions(ivs)
	if err := iv.validate(m.p); err != nil {
		return nil, nil, nil, err
	}
	if iv.hasSamplers() {
		return nil, nil, nil, errors.Wrap(internal.MalformedIntervention,
			"sampler-based interventions apply to additive noise models only")
	}

	w := m.W.Copy()
	means := m.Means.Copy()
	variances := m.Variances.Copy()

	for t, g := range iv.shift {
		means[t] += g.mean
		variances[t] += g.variance
	}
	for t, g := range iv.noise {
		means[t] = g.mean
		variances[t] = g.variance
		severIncoming(w, t)
	}
	for t, g := range iv.do {
		means[t] = g.mean
		variances[t] = g.variance
		severIncoming(w, t)
	}

	return w, means, variances, nil
}

// samplingMatrix returns M = (I - Wᵀ)⁻¹, mapping noise vectors to
// observations. The inverse exists for any DAG since I - Wᵀ is a
// permuted triangular matrix with unit diagonal.
func samplingMatrix(w data.Matrix) (data.Matrix, error) {
	a, err := data.NewIdentityMatrix(w.Rows()).Sub(w.Transpose())
	if err != nil {
		return nil, err
	}

	return a.Inverse()
}

// severIncoming removes all edges into variable t.
func severIncoming(w data.Matrix, t int) {
	for i := 0; i < w.Rows(); i++ {
		w[i][t] = 0
	}
}
