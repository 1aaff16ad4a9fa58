// Copyright 2026 The Slate Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package heatmap renders slate matrices as heatmap images via
// gonum/plot.
//
// Grid adapts a Matrix to plotter.GridXYZ for callers composing their
// own plots; Save is the one-call path from a matrix to a PNG file.
// In both, column index maps to X and row index to Y with row 0 at
// the top, so the image is oriented the way the matrix prints.
package heatmap

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/slate-num/slate/matrix"
)

// grid adapts a Matrix to plotter.GridXYZ. Plot Y grows upward, so
// grid row r reads matrix row rows-1-r to keep row 0 on top.
type grid[T matrix.Real] struct {
	m *matrix.Matrix[T]
}

// Dims returns the grid size as (columns, rows).
func (g grid[T]) Dims() (c, r int) {
	return g.m.Cols(), g.m.Rows()
}

// X returns the coordinate of column c.
func (g grid[T]) X(c int) float64 {
	return float64(c)
}

// Y returns the coordinate of grid row r.
func (g grid[T]) Y(r int) float64 {
	return float64(r)
}

// Z returns the cell value at column c, grid row r.
func (g grid[T]) Z(c, r int) float64 {
	return float64(g.m.At(g.m.Rows()-1-r, c))
}

// Grid exposes m as a plotter.GridXYZ over the live backing store.
func Grid[T matrix.Real](m *matrix.Matrix[T]) plotter.GridXYZ {
	return grid[T]{m: m}
}

// Save renders m as a heatmap and writes it to path as a PNG.
// The image format follows the file extension, so a .png path is
// expected; gonum/plot also accepts .pdf, .svg, and others.
func Save[T matrix.Real](m *matrix.Matrix[T], path string) error {
	p := plot.New()
	p.HideAxes()

	h := plotter.NewHeatMap(Grid(m), palette.Heat(12, 1))
	p.Add(h)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("heatmap: save %s: %w", path, err)
	}
	return nil
}
