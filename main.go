// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gmd runs a single-point stress-relaxation simulation with a Prony series
// viscoelastic material and renders the resulting curves
package main

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/tjfulle/gmd/ana"
	"github.com/tjfulle/gmd/msolid"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input parameters
	gstr := io.ArgToString(0, "0.35,0.25")
	taustr := io.ArgToString(1, "0.5,5")
	E := io.ArgToFloat(2, 1000.0)
	ν := io.ArgToFloat(3, 0.25)
	ε1 := io.ArgToFloat(4, 0.01)
	tload := io.ArgToFloat(5, 0.01)
	tend := io.ArgToFloat(6, 20.0)
	nincs := io.ArgToInt(7, 200)
	fnpng := io.ArgToString(8, "/tmp/gmd/relax.png")

	// message
	io.PfWhite("\ngmd -- Prony series stress relaxation\n\n")
	io.Pf("%v\n", io.ArgsTable(
		"relative moduli", "g", gstr,
		"relaxation times", "tau", taustr,
		"Young's modulus", "E", E,
		"Poisson's coefficient", "nu", ν,
		"held strain (first component)", "eps1", ε1,
		"loading ramp duration", "tload", tload,
		"final time", "tend", tend,
		"increments per leg", "nincs", nincs,
		"output figure", "fnpng", fnpng,
	))

	// Prony table
	gvals := parseList(gstr)
	τvals := parseList(taustr)
	if len(gvals) != len(τvals) {
		chk.Panic("need as many relaxation times as relative moduli; got %d and %d", len(gvals), len(τvals))
	}
	prms := []*fun.Prm{
		&fun.Prm{N: "E", V: E},
		&fun.Prm{N: "nu", V: ν},
	}
	for i := range gvals {
		prms = append(prms,
			&fun.Prm{N: io.Sf("g%d", i+1), V: gvals[i]},
			&fun.Prm{N: io.Sf("tau%d", i+1), V: τvals[i]},
		)
	}

	// driver
	ndim := 3
	var drv msolid.Driver
	err := drv.Init("gmd", "velast", ndim, false, prms)
	if err != nil {
		chk.Panic("cannot initialise velast model:\n%v", err)
	}
	ve := drv.Model().(*msolid.ViscoElast)
	ve.SetDiagnostics(msolid.StdDiagnostics{})

	// relaxation path: quick ramp, then hold
	nsig := 2 * ndim
	ε := make([]float64, nsig)
	ε[0] = ε1
	var pth msolid.Path
	err = pth.SetRelaxation(nincs, tload, tend, ε)
	if err != nil {
		chk.Panic("cannot set relaxation path:\n%v", err)
	}

	// run
	err = drv.Run(&pth)
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}

	// analytical solution over the holding leg
	var sol ana.GenMaxwell
	err = sol.Init(ve.Visco.G, ve.Visco.Tau)
	if err != nil {
		chk.Panic("cannot initialise analytical solution:\n%v", err)
	}

	// σ11 curves
	num := make(plotter.XYs, len(drv.Tout))
	for k, t := range drv.Tout {
		num[k].X = t
		num[k].Y = drv.Res[k].Sig[0]
	}
	σa := make([]float64, nsig)
	var σ0 []float64
	var ref plotter.XYs
	for k, t := range drv.Tout {
		if t < tload {
			continue
		}
		if σ0 == nil {
			σ0 = drv.Res[k].Sigi
		}
		sol.StressRelax(σa, σ0, t-tload)
		ref = append(ref, plotter.XY{X: t, Y: σa[0]})
	}

	// render
	p := plot.New()
	p.Title.Text = "stress relaxation"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "sig11"
	err = plotutil.AddLinePoints(p, "numerical", num, "analytical", ref)
	if err != nil {
		chk.Panic("cannot add curves to plot:\n%v", err)
	}
	if err = p.Save(6*vg.Inch, 4*vg.Inch, fnpng); err != nil {
		chk.Panic("cannot save figure:\n%v", err)
	}
	io.Pf("file <%s> written\n", fnpng)
}

// parseList parses a comma-separated list of numbers
func parseList(s string) (vals []float64) {
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		vals = append(vals, io.Atof(tok))
	}
	return
}
