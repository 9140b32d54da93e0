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

// Package dag provides shared helpers for working with directed
// acyclic graphs given as adjacency matrices. A non-zero entry
// w[i][j] denotes the edge i -> j.
package dag

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/mlondschien/sempler/data"
	"github.com/mlondschien/sempler/internal"
)

// Build constructs a directed graph from the adjacency matrix w.
// It returns an error if w is not square or has a non-zero diagonal.
func Build(w data.Matrix) (*simple.DirectedGraph, error) {
	p := w.Rows()
	if w.Cols() != p {
		return nil, errors.Wrap(internal.MalformedAdjacency, "adjacency matrix should be square")
	}

	g := simple.NewDirectedGraph()
	for i := 0; i < p; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if w[i][j] == 0 {
				continue
			}
			if i == j {
				return nil, errors.Wrap(internal.MalformedAdjacency, "adjacency matrix should have a zero diagonal")
			}
			g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
		}
	}

	return g, nil
}

// TopologicalOrder returns a causal ordering of the variables of w,
// parents before children.
// It returns an error if w is not the adjacency matrix of a DAG.
func TopologicalOrder(w data.Matrix) ([]int, error) {
	g, err := Build(w)
	if err != nil {
		return nil, err
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		return nil, errors.Wrap(internal.MalformedAdjacency, "adjacency matrix contains a cycle")
	}

	order := make([]int, len(sorted))
	for i, n := range sorted {
		order[i] = int(n.ID())
	}

	return order, nil
}

// IsDAG returns a bool indicating whether w is the adjacency matrix
// of a directed acyclic graph.
func IsDAG(w data.Matrix) bool {
	_, err := TopologicalOrder(w)

	return err == nil
}

// Parents returns the parents of variable j in w, in increasing
// order.
func Parents(w data.Matrix, j int) []int {
	parents := []int{}
	for i := 0; i < w.Rows(); i++ {
		if w[i][j] != 0 {
			parents = append(parents, i)
		}
	}

	return parents
}
