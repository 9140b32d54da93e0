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

package noise

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mlondschien/sempler/internal"
)

// Uniform samples random values from the interval [min, max).
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform returns an instance of the Uniform sampler.
// It accepts lower and upper bounds on the sampled values and
// returns an error if max < min.
func NewUniform(min, max float64, src rand.Source) (*Uniform, error) {
	if max < min {
		return nil, errors.Wrap(internal.MalformedBounds, "upper bound should not be below lower bound")
	}

	return &Uniform{
		dist: distuv.Uniform{
			Min: min,
			Max: max,
			Src: src,
		},
	}, nil
}

// Sample samples a value from the interval [min, max).
// Equal bounds degenerate to the constant min.
func (s *Uniform) Sample() float64 {
	if s.dist.Min == s.dist.Max {
		return s.dist.Min
	}

	return s.dist.Rand()
}

// Constant is a degenerate sampler returning a fixed value.
type Constant struct {
	c float64
}

// NewConstant returns an instance of the Constant sampler.
func NewConstant(c float64) *Constant {
	return &Constant{c: c}
}

func (s *Constant) Sample() float64 {
	return s.c
}
