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
	"sort"

	"github.com/pkg/errors"

	"github.com/mlondschien/sempler/internal"
	"github.com/mlondschien/sempler/noise"
)

// gaussParam holds the mean and variance of a Gaussian intervention
// target.
type gaussParam struct {
	mean     float64
	variance float64
}

// Intervention collects do, shift and noise interventions on a set
// of target variables. Interventions are applied shift first, then
// noise, then do, so a do entry overrides the others on a shared
// target.
//
//   - A do intervention fixes the target to a constant or an
//     independent distribution and severs its incoming edges.
//   - A noise intervention replaces the target's noise distribution
//     and severs its incoming edges.
//   - A shift intervention adds an independent term to the target's
//     noise, leaving the graph unchanged.
//
// The zero value is not usable; use NewIntervention. All methods
// return the receiver so interventions can be built in a chain.
type Intervention struct {
	do    map[int]gaussParam
	shift map[int]gaussParam
	noise map[int]gaussParam

	doSampler    map[int]noise.Sampler
	shiftSampler map[int]noise.Sampler
	noiseSampler map[int]noise.Sampler
}

// NewIntervention returns an empty Intervention.
func NewIntervention() *Intervention {
	return &Intervention{
		do:           make(map[int]gaussParam),
		shift:        make(map[int]gaussParam),
		noise:        make(map[int]gaussParam),
		doSampler:    make(map[int]noise.Sampler),
		shiftSampler: make(map[int]noise.Sampler),
		noiseSampler: make(map[int]noise.Sampler),
	}
}

// Do fixes the target variable to a constant value.
func (iv *Intervention) Do(target int, value float64) *Intervention {
	iv.do[target] = gaussParam{mean: value, variance: 0}

	return iv
}

// DoGaussian fixes the target variable to an independent Gaussian
// with the given mean and variance.
func (iv *Intervention) DoGaussian(target int, mean, variance float64) *Intervention {
	iv.do[target] = gaussParam{mean: mean, variance: variance}

	return iv
}

// Shift adds an independent Gaussian with the given mean and
// variance to the target's noise term.
func (iv *Intervention) Shift(target int, mean, variance float64) *Intervention {
	iv.shift[target] = gaussParam{mean: mean, variance: variance}

	return iv
}

// Noise replaces the target's noise distribution with a Gaussian
// with the given mean and variance.
func (iv *Intervention) Noise(target int, mean, variance float64) *Intervention {
	iv.noise[target] = gaussParam{mean: mean, variance: variance}

	return iv
}

// DoSampler fixes the target variable to independent draws from the
// given sampler. Only additive noise models accept sampler-based
// entries.
func (iv *Intervention) DoSampler(target int, s noise.Sampler) *Intervention {
	iv.doSampler[target] = s

	return iv
}

// ShiftSampler adds independent draws from the given sampler to the
// target's noise term. Only additive noise models accept
// sampler-based entries.
func (iv *Intervention) ShiftSampler(target int, s noise.Sampler) *Intervention {
	iv.shiftSampler[target] = s

	return iv
}

// NoiseSampler replaces the target's noise distribution with the
// given sampler. Only additive noise models accept sampler-based
// entries.
func (iv *Intervention) NoiseSampler(target int, s noise.Sampler) *Intervention {
	iv.noiseSampler[target] = s

	return iv
}

// Targets returns the union of all target variables, in increasing
// order.
func (iv *Intervention) Targets() []int {
	seen := make(map[int]bool)
	for _, m := range []map[int]gaussParam{iv.do, iv.shift, iv.noise} {
		for t := range m {
			seen[t] = true
		}
	}
	for _, m := range []map[int]noise.Sampler{iv.doSampler, iv.shiftSampler, iv.noiseSampler} {
		for t := range m {
			seen[t] = true
		}
	}

	targets := make([]int, 0, len(seen))
	for t := range seen {
		targets = append(targets, t)
	}
	sort.Ints(targets)

	return targets
}

// validate checks that all targets index one of p variables and that
// Gaussian entries carry non-negative variances.
func (iv *Intervention) validate(p int) error {
	for _, t := range iv.Targets() {
		if t < 0 || t >= p {
			return errors.Wrap(internal.MalformedIntervention, fmt.Sprintf("target %d out of range", t))
		}
	}
	for _, m := range []map[int]gaussParam{iv.do, iv.shift, iv.noise} {
		for _, g := range m {
			if g.variance < 0 {
				return errors.Wrap(internal.MalformedIntervention, "variances should be non-negative")
			}
		}
	}

	return nil
}

// hasSamplers returns a bool indicating whether any sampler-based
// entries are present.
func (iv *Intervention) hasSamplers() bool {
	return len(iv.doSampler) > 0 || len(iv.shiftSampler) > 0 || len(iv.noiseSampler) > 0
}

// mergeInterventions combines interventions left to right. On a
// shared target and kind, later entries win.
func mergeInterventions(ivs []*Intervention) *Intervention {
	merged := NewIntervention()
	for _, iv := range ivs {
		if iv == nil {
			continue
		}
		for t, g := range iv.shift {
			merged.shift[t] = g
		}
		for t, g := range iv.noise {
			merged.noise[t] = g
		}
		for t, g := range iv.do {
			merged.do[t] = g
		}
		for t, s := range iv.shiftSampler {
			merged.shiftSampler[t] = s
		}
		for t, s := range iv.noiseSampler {
			merged.noiseSampler[t] = s
		}
		for t, s := range iv.doSampler {
			merged.doSampler[t] = s
		}
	}

	return merged
}
