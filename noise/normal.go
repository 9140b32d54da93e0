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

// Normal samples random values from the Normal (Gaussian)
// probability distribution with the given mean and standard deviation.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of the Normal sampler.
// It returns an error if stddev is negative.
func NewNormal(mean, stddev float64, src rand.Source) (*Normal, error) {
	if stddev < 0 {
		return nil, errors.Wrap(internal.MalformedInput, "standard deviation should be non-negative")
	}

	return &Normal{
		dist: distuv.Normal{
			Mu:    mean,
			Sigma: stddev,
			Src:   src,
		},
	}, nil
}

// Sample samples a value from the Normal distribution.
// A zero standard deviation degenerates to the constant mean.
func (s *Normal) Sample() float64 {
	if s.dist.Sigma == 0 {
		return s.dist.Mu
	}

	return s.dist.Rand()
}
