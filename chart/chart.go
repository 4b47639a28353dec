// SPDX-License-Identifier: MIT

// Package chart renders EigenGame training curves with gonum/plot.
package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/eigengame/eigengame"
)

// ErrNoHistory indicates an empty history (Solve was run without WithHistory).
var ErrNoHistory = errors.New("chart: empty history")

// Default canvas size.
const (
	DefaultWidth  = 16 * vg.Centimeter
	DefaultHeight = 10 * vg.Centimeter
)

// ConvergencePlot builds a plot of the Rayleigh quotient of every rank
// against the epoch. With logY the values are drawn on a log scale, which
// needs strictly positive quotients.
func ConvergencePlot(history []eigengame.EpochStat, logY bool) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, ErrNoHistory
	}
	k := len(history[0].Rayleigh)

	p := plot.New()
	p.Title.Text = "EigenGame convergence"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "Rayleigh quotient"
	if logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}
	p.Legend.Top = true

	for t := 0; t < k; t++ {
		pts := make(plotter.XYs, len(history))
		for i, h := range history {
			if len(h.Rayleigh) != k {
				return nil, fmt.Errorf("chart: epoch %d has %d ranks, want %d", h.Epoch, len(h.Rayleigh), k)
			}
			pts[i].X = float64(h.Epoch)
			pts[i].Y = h.Rayleigh[t]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: rank %d: %w", t, err)
		}
		line.LineStyle.Color = plotutil.Color(t)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("v%d", t), line)
	}
	p.Add(plotter.NewGrid())

	return p, nil
}

// Convergence writes the convergence plot to path; the extension selects the
// format (.png, .svg, .pdf, ...).
func Convergence(history []eigengame.EpochStat, path string) error {
	p, err := ConvergencePlot(history, false)
	if err != nil {
		return err
	}
	if err = p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}

// StepPlot builds a plot of the step size and the largest per-epoch update,
// one line each.
func StepPlot(history []eigengame.EpochStat) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, ErrNoHistory
	}
	step := make(plotter.XYs, len(history))
	move := make(plotter.XYs, len(history))
	for i, h := range history {
		step[i].X, step[i].Y = float64(h.Epoch), h.Step
		move[i].X, move[i].Y = float64(h.Epoch), h.MaxUpdate
	}

	p := plot.New()
	p.Title.Text = "Step and update size"
	p.X.Label.Text = "epoch"
	if err := plotutil.AddLines(p, "step", step, "max ‖Δv‖", move); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	return p, nil
}
