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
	"golang.org/x/exp/rand"
)

// Sampler samples random values from a probability distribution.
type Sampler interface {
	Sample() float64
}

// NewSource returns a pseudo-random source seeded with seed.
// Samplers sharing a source draw from a single reproducible stream.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}
