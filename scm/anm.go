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
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/mlondschien/sempler/data"
	"github.com/mlondschien/sempler/internal"
	"github.com/mlondschien/sempler/internal/dag"
	"github.com/mlondschien/sempler/noise"
)

// Assignment computes the deterministic part of a structural
// equation from the values of the variable's parents, given in
// increasing index order.
type Assignment func(parents data.Vector) float64

// ANM represents a general additive noise model,
//
//	X_j = f_j(parents of X_j) + N_j,
//
// over the DAG given by adjacency matrix A. A[i][j] != 0 denotes the
// edge i -> j. A nil assignment stands for a zero deterministic
// part.
type ANM struct {
	A data.Matrix

	assignments []Assignment
	noises      []noise.Sampler
	p           int
}

// NewANM returns an instance of an ANM. It returns an error if a is
// not the adjacency matrix of a DAG, if there is not exactly one
// assignment and one noise sampler per variable, or if a noise
// sampler is nil.
func NewANM(a data.Matrix, assignments []Assignment, noises []noise.Sampler) (*ANM, error) {
	if _, err := dag.TopologicalOrder(a); err != nil {
		return nil, err
	}

	p := a.Rows()
	if len(assignments) != p || len(noises) != p {
		return nil, errors.Wrap(internal.DimensionMismatch, "one assignment and one noise sampler per variable is required")
	}
	for j, s := range noises {
		if s == nil {
			return nil, errors.Wrap(internal.MalformedInput, fmt.Sprintf("noise sampler %d is nil", j))
		}
	}

	samplers := make([]noise.Sampler, p)
	copy(samplers, noises)
	assigns := make([]Assignment, p)
	copy(assigns, assignments)

	return &ANM{
		A:           a.Copy(),
		assignments: assigns,
		noises:      samplers,
		p:           p,
	}, nil
}

// P returns the number of variables of the model.
func (m *ANM) P() int {
	return m.p
}

// Sample draws n observations from the model, optionally under
// interventions, evaluating variables in topological order. The
// result is returned as an n x p matrix with one observation per
// row. src is used for Gaussian-style intervention entries; a nil
// src falls back to a global pseudo-random source.
func (m *ANM) Sample(n int, src rand.Source, ivs ...*Intervention) (data.Matrix, error) {
	if n < 1 {
		return nil, errors.Wrap(internal.MalformedInput, "sample size should be positive")
	}

	iv := mergeInterventions(ivs)
	if err := iv.validate(m.p); err != nil {
		return nil, err
	}

	a := m.A.Copy()
	assigns := make([]Assignment, m.p)
	copy(assigns, m.assignments)
	samplers := make([]noise.Sampler, m.p)
	copy(samplers, m.noises)
	shifts := make([]noise.Sampler, m.p)
	dos := make([]noise.Sampler, m.p)

	// Shift, then noise, then do; do entries override the others.
	var err error
	for t, g := range iv.shift {
		shifts[t], err = noise.NewNormal(g.mean, math.Sqrt(g.variance), src)
		if err != nil {
			return nil, err
		}
	}
	for t, s := range iv.shiftSampler {
		shifts[t] = s
	}
	for t, g := range iv.noise {
		samplers[t], err = noise.NewNormal(g.mean, math.Sqrt(g.variance), src)
		if err != nil {
			return nil, err
		}
		severIncoming(a, t)
		assigns[t] = nil
	}
	for t, s := range iv.noiseSampler {
		samplers[t] = s
		severIncoming(a, t)
		assigns[t] = nil
	}
	for t, g := range iv.do {
		dos[t], err = noise.NewNormal(g.mean, math.Sqrt(g.variance), src)
		if err != nil {
			return nil, err
		}
		severIncoming(a, t)
	}
	for t, s := range iv.doSampler {
		dos[t] = s
		severIncoming(a, t)
	}

	order, err := dag.TopologicalOrder(a)
	if err != nil {
		return nil, err
	}

	obs := make([]data.Vector, n)
	for i := 0; i < n; i++ {
		x := make(data.Vector, m.p)
		for _, j := range order {
			if dos[j] != nil {
				x[j] = dos[j].Sample()
				continue
			}

			value := 0.0
			if assigns[j] != nil {
				parentValues, err := x.Select(dag.Parents(a, j))
				if err != nil {
					return nil, err
				}
				value = assigns[j](parentValues)
			}
			value += samplers[j].Sample()
			if shifts[j] != nil {
				value += shifts[j].Sample()
			}
			x[j] = value
		}
		obs[i] = x
	}

	return data.NewMatrix(obs)
}
