// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Plotter plots stress and overstress histories computed by a Driver
type Plotter struct {

	// settings
	Clr    string // color of lines
	Ls     string // line style
	Lbl    string // label of lines
	PngRes int    // resolution for png files

	// internal
	fig bool // figure has been set
}

// SetFig prepares the figure
func (o *Plotter) SetFig(epsfig bool, prop, width float64) {
	plt.Reset()
	if epsfig {
		plt.SetForEps(prop, width)
	} else {
		if o.PngRes < 1 {
			o.PngRes = 150
		}
		plt.SetForPng(prop, width, o.PngRes)
	}
	if o.Clr == "" {
		o.Clr = "red"
	}
	if o.Ls == "" {
		o.Ls = "-"
	}
	o.fig = true
}

// Plot draws the relaxation histories:
//  upper left  -- stress components versus time
//  upper right -- norm of the overstress of each Maxwell branch versus time
//  lower left  -- stiffness correction factor versus time
//  lower right -- time-increment adequacy factor versus time
func (o *Plotter) Plot(tout []float64, res []*State, cfac, dtrat []float64) {
	if !o.fig {
		o.SetFig(false, 1.2, 500)
	}
	nout := len(tout)
	if nout < 2 || len(res) != nout {
		return
	}
	nsig := len(res[0].Sig)
	nprony := 0
	if nsig > 0 {
		nprony = len(res[0].Phi) / nsig
	}
	y := make([]float64, nout)

	// stress components
	plt.Subplot(2, 2, 1)
	for j := 0; j < nsig; j++ {
		for k := 0; k < nout; k++ {
			y[k] = res[k].Sig[j]
		}
		plt.Plot(tout, y, io.Sf("ls='%s', label=r'$\\sigma_{%d}$'", o.Ls, j))
	}
	plt.Gll("$t$", "$\\sigma$", "leg_out=1, leg_ncol=6, leg_hlen=1.5")

	// overstress norms
	plt.Subplot(2, 2, 2)
	for i := 0; i < nprony; i++ {
		for k := 0; k < nout; k++ {
			sum := 0.0
			for j := 0; j < nsig; j++ {
				φ := res[k].Phi[i*nsig+j]
				sum += φ * φ
			}
			y[k] = math.Sqrt(sum)
		}
		plt.Plot(tout, y, io.Sf("ls='%s', label=r'$\\Vert\\phi_{%d}\\Vert$'", o.Ls, i+1))
	}
	plt.Gll("$t$", "$\\Vert\\phi\\Vert$", "leg_out=1, leg_ncol=6, leg_hlen=1.5")

	// correction factors (one value per increment; skip the initial state)
	if len(cfac) == nout-1 {
		plt.Subplot(2, 2, 3)
		plt.Plot(tout[1:], cfac, io.Sf("'r-', ls='%s', color='%s', label=r'%s'", o.Ls, o.Clr, o.Lbl))
		plt.Gll("$t$", "$c_{fac}$", "")
	}
	if len(dtrat) == nout-1 {
		plt.Subplot(2, 2, 4)
		plt.Plot(tout[1:], dtrat, io.Sf("'r-', ls='%s', color='%s', label=r'%s'", o.Ls, o.Clr, o.Lbl))
		plt.Gll("$t$", "$\\Delta t / \\tau_{min}$", "")
	}
}

// Save saves the figure
func (o *Plotter) Save(dirout, filename string) {
	plt.SaveD(dirout, filename)
}
