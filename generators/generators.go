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

// Package generators provides random generation of DAG adjacency
// matrices and intervention targets for synthetic experiments.
package generators

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/mlondschien/sempler/data"
	"github.com/mlondschien/sempler/internal"
)

// DagAvgDeg returns the weighted adjacency matrix of a random DAG
// over p nodes with average degree k. Edges are placed in an
// upper-triangular mask with probability k/(p-1), weighted uniformly
// from [wMin, wMax), and the variable order is then permuted
// uniformly at random.
// It returns an error if p < 1, if k is outside [0, p-1] or if
// wMax < wMin. A nil src seeds a fresh source from the clock.
func DagAvgDeg(p int, k, wMin, wMax float64, src rand.Source) (data.Matrix, error) {
	if p < 1 {
		return nil, errors.Wrap(internal.MalformedInput, "at least one node is required")
	}
	if k < 0 || (p > 1 && k > float64(p-1)) {
		return nil, errors.Wrap(internal.MalformedInput, "average degree should be between 0 and p-1")
	}
	if wMax < wMin {
		return nil, errors.Wrap(internal.MalformedBounds, "upper weight bound should not be below lower bound")
	}

	rnd := newRand(src)

	prob := 0.0
	if p > 1 {
		prob = k / float64(p-1)
	}

	w := data.NewConstantMatrix(p, p, 0)
	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			if rnd.Float64() < prob {
				w[i][j] = wMin + rnd.Float64()*(wMax-wMin)
			}
		}
	}

	return permute(w, rnd.Perm(p)), nil
}

// DagFull returns the weighted adjacency matrix of a fully connected
// DAG over p nodes, with weights drawn uniformly from [wMin, wMax).
// It returns an error if p < 1 or if wMax < wMin. A nil src seeds a
// fresh source from the clock.
func DagFull(p int, wMin, wMax float64, src rand.Source) (data.Matrix, error) {
	if p < 1 {
		return nil, errors.Wrap(internal.MalformedInput, "at least one node is required")
	}
	if wMax < wMin {
		return nil, errors.Wrap(internal.MalformedBounds, "upper weight bound should not be below lower bound")
	}

	rnd := newRand(src)

	w := data.NewConstantMatrix(p, p, 0)
	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			w[i][j] = wMin + rnd.Float64()*(wMax-wMin)
		}
	}

	return w, nil
}

// InterventionTargets returns num random intervention target sets
// over p variables, each of a size drawn uniformly from
// [sizeLo, sizeHi] and with targets in increasing order.
// It returns an error if num < 1 or the sizes do not satisfy
// 0 <= sizeLo <= sizeHi <= p. A nil src seeds a fresh source from
// the clock.
func InterventionTargets(p, num, sizeLo, sizeHi int, src rand.Source) ([][]int, error) {
	if num < 1 {
		return nil, errors.Wrap(internal.MalformedInput, "at least one target set is required")
	}
	if sizeLo < 0 || sizeHi < sizeLo || sizeHi > p {
		return nil, errors.Wrap(internal.MalformedBounds, "target set sizes should satisfy 0 <= lo <= hi <= p")
	}

	rnd := newRand(src)

	sets := make([][]int, num)
	for i := 0; i < num; i++ {
		size := sizeLo + rnd.Intn(sizeHi-sizeLo+1)
		targets := rnd.Perm(p)[:size]
		sort.Ints(targets)
		sets[i] = targets
	}

	return sets, nil
}

// permute relabels the nodes of w by the given permutation, mapping
// node i to perm[i].
func permute(w data.Matrix, perm []int) data.Matrix {
	p := w.Rows()
	res := data.NewConstantMatrix(p, p, 0)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			res[perm[i]][perm[j]] = w[i][j]
		}
	}

	return res
}

func newRand(src rand.Source) *rand.Rand {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	return rand.New(src)
}
