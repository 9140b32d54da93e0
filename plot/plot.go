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

// Package plot renders samples and graphs of structural causal
// models to image files.
package plot

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mlondschien/sempler/data"
	"github.com/mlondschien/sempler/internal"
)

const plotSize = 4 * vg.Inch

// Histogram renders a histogram of values with the given number of
// bins and writes it to path. The image format follows the file
// extension.
func Histogram(values data.Vector, bins int, title, path string) error {
	if len(values) == 0 {
		return errors.Wrap(internal.MalformedInput, "at least one value is required")
	}

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return errors.Wrap(err, "cannot build histogram")
	}

	p := plot.New()
	p.Title.Text = title
	p.Add(h)

	return errors.Wrap(p.Save(plotSize, plotSize, path), "cannot save histogram")
}

// Scatter renders a scatter plot of the pairs (x[i], y[i]) and
// writes it to path.
// It returns an error if x and y have different lengths.
func Scatter(x, y data.Vector, title, path string) error {
	if len(x) != len(y) {
		return errors.Wrap(internal.DimensionMismatch, "coordinate vectors should be of same length")
	}

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "cannot build scatter plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.Add(s)

	return errors.Wrap(p.Save(plotSize, plotSize, path), "cannot save scatter plot")
}

// Graph draws the directed graph of adjacency matrix w with nodes
// laid out on a circle and writes it to path.
// It returns an error if w is not square.
func Graph(w data.Matrix, path string) error {
	p := w.Rows()
	if w.Cols() != p {
		return errors.Wrap(internal.MalformedAdjacency, "adjacency matrix should be square")
	}
	if p == 0 {
		return errors.Wrap(internal.MalformedInput, "at least one node is required")
	}

	// Node layout on the unit circle.
	xs := make([]float64, p)
	ys := make([]float64, p)
	for i := 0; i < p; i++ {
		angle := 2 * math.Pi * float64(i) / float64(p)
		xs[i] = math.Cos(angle)
		ys[i] = math.Sin(angle)
	}

	pl := plot.New()
	pl.HideAxes()

	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if w[i][j] == 0 {
				continue
			}
			if err := addEdge(pl, xs[i], ys[i], xs[j], ys[j]); err != nil {
				return err
			}
		}
	}

	labelXYs := make(plotter.XYs, p)
	labels := make([]string, p)
	for i := 0; i < p; i++ {
		labelXYs[i].X = xs[i] * 1.1
		labelXYs[i].Y = ys[i] * 1.1
		labels[i] = strconv.Itoa(i)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return errors.Wrap(err, "cannot build node labels")
	}
	pl.Add(l)

	return errors.Wrap(pl.Save(plotSize, plotSize, path), "cannot save graph")
}

// addEdge draws a directed edge as a line with a small arrow head at
// the target end.
func addEdge(pl *plot.Plot, x0, y0, x1, y1 float64) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return errors.Wrap(err, "cannot build edge")
	}
	pl.Add(line)

	dx, dy := x1-x0, y1-y0
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return nil
	}
	dx, dy = dx/norm, dy/norm

	const headLen = 0.06
	for _, side := range []float64{1, -1} {
		// rotate the reversed direction by ~30 degrees
		hx := -dx*math.Cos(math.Pi/6) - side*dy*math.Sin(math.Pi/6)
		hy := side*dx*math.Sin(math.Pi/6) - dy*math.Cos(math.Pi/6)
		head, err := plotter.NewLine(plotter.XYs{
			{X: x1, Y: y1},
			{X: x1 + hx*headLen, Y: y1 + hy*headLen},
		})
		if err != nil {
			return errors.Wrap(err, "cannot build edge")
		}
		pl.Add(head)
	}

	return nil
}
