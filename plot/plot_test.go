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

package plot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlondschien/sempler/data"
	"github.com/mlondschien/sempler/noise"
	"github.com/mlondschien/sempler/plot"
)

func assertImage(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Image was not written: %v", err)
	}
	assert.True(t, info.Size() > 0, "image file should not be empty")
}

func TestHistogram(t *testing.T) {
	sampler, err := noise.NewNormal(0, 1, noise.NewSource(42))
	if err != nil {
		t.Fatalf("Error during sampler creation: %v", err)
	}
	values := data.NewRandomVector(1000, sampler)

	path := filepath.Join(t.TempDir(), "hist.png")
	if err := plot.Histogram(values, 20, "marginal of X0", path); err != nil {
		t.Fatalf("Error during plotting: %v", err)
	}
	assertImage(t, path)

	err = plot.Histogram(data.Vector{}, 10, "", path)
	assert.Error(t, err, "an empty vector should be rejected")
}

func TestScatter(t *testing.T) {
	sampler, err := noise.NewUniform(0, 1, noise.NewSource(42))
	if err != nil {
		t.Fatalf("Error during sampler creation: %v", err)
	}
	x := data.NewRandomVector(200, sampler)
	y := data.NewRandomVector(200, sampler)

	path := filepath.Join(t.TempDir(), "scatter.png")
	if err := plot.Scatter(x, y, "X0 against X1", path); err != nil {
		t.Fatalf("Error during plotting: %v", err)
	}
	assertImage(t, path)

	err = plot.Scatter(x, y[:100], "", path)
	assert.Error(t, err, "mismatched coordinate vectors should be rejected")
}

func TestGraph(t *testing.T) {
	w, err := data.NewMatrix([]data.Vector{
		{0, 1, 0},
		{0, 0, 2},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	path := filepath.Join(t.TempDir(), "graph.png")
	if err := plot.Graph(w, path); err != nil {
		t.Fatalf("Error during plotting: %v", err)
	}
	assertImage(t, path)

	err = plot.Graph(data.NewConstantMatrix(2, 3, 0), path)
	assert.Error(t, err, "a non-square adjacency matrix should be rejected")
}
