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

package scm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/mlondschien/sempler/data"
	"github.com/mlondschien/sempler/noise"
	"github.com/mlondschien/sempler/scm"
)

// quadraticANM builds the model X0 -> X1 with X1 = X0² plus noise.
func quadraticANM(t *testing.T, noises []noise.Sampler) *scm.ANM {
	t.Helper()

	a, err := data.NewMatrix([]data.Vector{
		{0, 1},
		{0, 0},
	})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	assignments := []scm.Assignment{
		nil,
		func(parents data.Vector) float64 { return parents[0] * parents[0] },
	}

	m, err := scm.NewANM(a, assignments, noises)
	if err != nil {
		t.Fatalf("Error during model creation: %v", err)
	}

	return m
}

func TestANM_SampleDeterministic(t *testing.T) {
	m := quadraticANM(t, []noise.Sampler{noise.NewConstant(2), noise.NewConstant(1)})

	x, err := m.Sample(5, nil)
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}

	for i := 0; i < x.Rows(); i++ {
		assert.Equal(t, 2.0, x[i][0])
		assert.Equal(t, 5.0, x[i][1], "X1 should equal X0 squared plus noise")
	}
}

func TestANM_SampleGaussian(t *testing.T) {
	src := noise.NewSource(42)
	e0, err := noise.NewNormal(0, 1, src)
	if err != nil {
		t.Fatalf("Error during sampler creation: %v", err)
	}
	e1, err := noise.NewNormal(0, 1, src)
	if err != nil {
		t.Fatalf("Error during sampler creation: %v", err)
	}

	m := quadraticANM(t, []noise.Sampler{e0, e1})

	x, err := m.Sample(50000, src)
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}

	// E[X1] = E[X0²] + E[e1] = 1
	c1, _ := x.GetCol(1)
	assert.InDelta(t, 1, stat.Mean(c1, nil), 0.1, "sample mean should approach E[X0²]")
}

func TestANM_DoIntervention(t *testing.T) {
	m := quadraticANM(t, []noise.Sampler{noise.NewConstant(2), noise.NewConstant(1)})

	x, err := m.Sample(10, nil, scm.NewIntervention().Do(0, 3))
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}

	for i := 0; i < x.Rows(); i++ {
		assert.Equal(t, 3.0, x[i][0], "a do-intervened variable should be constant")
		assert.Equal(t, 10.0, x[i][1], "children should see the intervened value")
	}
}

func TestANM_DoSampler(t *testing.T) {
	m := quadraticANM(t, []noise.Sampler{noise.NewConstant(2), noise.NewConstant(1)})

	uniform, err := noise.NewUniform(0, 1, noise.NewSource(42))
	if err != nil {
		t.Fatalf("Error during sampler creation: %v", err)
	}

	x, err := m.Sample(100, nil, scm.NewIntervention().DoSampler(0, uniform))
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}

	for i := 0; i < x.Rows(); i++ {
		assert.True(t, x[i][0] >= 0 && x[i][0] < 1, "do samples should follow the given distribution")
		assert.InDelta(t, x[i][0]*x[i][0]+1, x[i][1], 1e-9)
	}
}

func TestANM_NoiseIntervention(t *testing.T) {
	m := quadraticANM(t, []noise.Sampler{noise.NewConstant(2), noise.NewConstant(1)})

	// Replacing the noise of X1 severs the edge X0 -> X1 and drops
	// the assignment.
	x, err := m.Sample(10, nil, scm.NewIntervention().NoiseSampler(1, noise.NewConstant(7)))
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}

	for i := 0; i < x.Rows(); i++ {
		assert.Equal(t, 7.0, x[i][1])
	}
}

func TestANM_ShiftIntervention(t *testing.T) {
	m := quadraticANM(t, []noise.Sampler{noise.NewConstant(2), noise.NewConstant(1)})

	x, err := m.Sample(10, nil, scm.NewIntervention().ShiftSampler(1, noise.NewConstant(-3)))
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}

	for i := 0; i < x.Rows(); i++ {
		assert.Equal(t, 2.0, x[i][1], "the shift should add to the structural equation")
	}
}

func TestNewANM_Errors(t *testing.T) {
	cyclic, _ := data.NewMatrix([]data.Vector{
		{0, 1},
		{1, 0},
	})
	_, err := scm.NewANM(cyclic, make([]scm.Assignment, 2), []noise.Sampler{noise.NewConstant(0), noise.NewConstant(0)})
	assert.Error(t, err, "a cyclic adjacency matrix should be rejected")

	acyclic, _ := data.NewMatrix([]data.Vector{
		{0, 1},
		{0, 0},
	})
	_, err = scm.NewANM(acyclic, make([]scm.Assignment, 1), []noise.Sampler{noise.NewConstant(0), noise.NewConstant(0)})
	assert.Error(t, err, "one assignment per variable is required")

	_, err = scm.NewANM(acyclic, make([]scm.Assignment, 2), []noise.Sampler{noise.NewConstant(0), nil})
	assert.Error(t, err, "nil noise samplers should be rejected")
}
