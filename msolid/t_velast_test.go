// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/tjfulle/gmd/ana"
)

func velastPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 1000},
		&fun.Prm{N: "nu", V: 0.25},
		&fun.Prm{N: "g1", V: 0.35},
		&fun.Prm{N: "tau1", V: 0.5},
		&fun.Prm{N: "g2", V: 0.25},
		&fun.Prm{N: "tau2", V: 5.0},
	}
}

func Test_velast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velast01. stress relaxation versus analytical solution")

	// driver with the viscoelastic model
	ndim, pstress := 3, false
	var drv Driver
	err := drv.Init("test", "velast", ndim, pstress, velastPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	ve := drv.Model().(*ViscoElast)
	chk.Scalar(tst, "Ginf", 1e-15, ve.Visco.Ginf, 0.4)

	// ramp quickly to a held strain
	nsig := 2 * ndim
	ε := make([]float64, nsig)
	ε[0] = 0.01
	tload, tend := 0.01, 20.0
	var pth Path
	err = pth.SetRelaxation(100, tload, tend, ε)
	if err != nil {
		tst.Errorf("SetRelaxation failed: %v\n", err)
		return
	}
	err = drv.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// analytical generalized Maxwell response from the end of the ramp
	var sol ana.GenMaxwell
	err = sol.Init(ve.Visco.G, ve.Visco.Tau)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	var σ0 []float64
	σa := make([]float64, nsig)
	for k, t := range drv.Tout {
		if t < tload {
			continue
		}
		if σ0 == nil {
			σ0 = drv.Res[k].Sigi
			io.Pforan("sig0 = %v\n", σ0)
		}
		sol.StressRelax(σa, σ0, t-tload)
		chk.Scalar(tst, io.Sf("sig[0](t=%.2f)", t), 0.1, drv.Res[k].Sig[0], σa[0])
	}

	// the held stress tends to the equilibrium fraction of the instantaneous one
	last := drv.Res[len(drv.Res)-1]
	io.Pforan("sig(end) = %v\n", last.Sig)
	chk.Scalar(tst, "sig(end) -> Ginf*sig0", 0.1, last.Sig[0], ve.Visco.Ginf*σ0[0])

	// correction factors during the holding leg are constant
	dt := (tend - tload) / 100.0
	x1, x2 := dt/0.5, dt/5.0
	s1 := (1.0 - math.Exp(-x1)) / x1
	s2 := (1.0 - math.Exp(-x2)) / x2
	cfac := 1.0 - 0.35*(1.0-s1) - 0.25*(1.0-s2)
	nc := len(drv.Cfac)
	chk.Scalar(tst, "cfac", 1e-14, drv.Cfac[nc-1], cfac)
	chk.Scalar(tst, "dtrat", 1e-14, drv.Dtrat[nc-1], x1)
}

func Test_velast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velast02. zero Prony terms behave elastically")

	ndim, pstress := 2, false
	prms := []*fun.Prm{
		&fun.Prm{N: "E", V: 1500},
		&fun.Prm{N: "nu", V: 0.3},
	}
	var drvE, drvV Driver
	err := drvE.Init("test", "lin-elast", ndim, pstress, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	err = drvV.Init("test", "velast", ndim, pstress, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	nsig := 2 * ndim
	εA := make([]float64, nsig)
	εB := []float64{0.001, -0.002, 0, 0.0005}
	var pth Path
	err = pth.SetStrain(10, []float64{0, 1}, [][]float64{εA, εB})
	if err != nil {
		tst.Errorf("SetStrain failed: %v\n", err)
		return
	}
	err = drvE.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	err = drvV.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	for k := range drvE.Res {
		chk.Vector(tst, io.Sf("sig(k=%d)", k), 1e-14, drvV.Res[k].Sig, drvE.Res[k].Sig)
	}
}

func Test_velast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velast03. restart and failure semantics")

	ndim, pstress := 3, false
	ve := new(ViscoElast)
	err := ve.Init(ndim, pstress, velastPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	nsig := 2 * ndim

	// advance one step
	s, err := ve.InitIntVars(make([]float64, nsig))
	if err != nil {
		tst.Errorf("InitIntVars failed: %v\n", err)
		return
	}
	ε := make([]float64, nsig)
	Δε := make([]float64, nsig)
	Δε[0] = 0.01
	err = ve.Update(s, ε, Δε, 0, 0.1, 0, 0)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	if s.Sig[0] == 0 || s.Phi[0] == 0 {
		tst.Errorf("update did not advance the state\n")
		return
	}

	// a failed update must leave the state untouched
	before := s.GetCopy()
	err = ve.Update(s, ε, Δε, 0.1, -1.0, 0, 0)
	if err == nil {
		tst.Errorf("Update should have failed with dtime<0\n")
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Vector(tst, "sig", 1e-17, s.Sig, before.Sig)
	chk.Vector(tst, "sigi", 1e-17, s.Sigi, before.Sigi)
	chk.Vector(tst, "phi", 1e-17, s.Phi, before.Phi)

	// re-initialisation restarts the history
	s2, err := ve.InitIntVars(make([]float64, nsig))
	if err != nil {
		tst.Errorf("InitIntVars failed: %v\n", err)
		return
	}
	chk.Vector(tst, "phi reset", 1e-17, s2.Phi, make([]float64, ve.Visco.Nevars(nsig)))
}

func Test_velast04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velast04. model factory")

	m1, existent := GetModel("test_factory", "matA", "velast", false)
	if m1 == nil {
		tst.Errorf("cannot get velast model\n")
		return
	}
	if existent {
		tst.Errorf("first allocation must not be marked existent\n")
		return
	}
	m2, existent := GetModel("test_factory", "matA", "velast", false)
	if !existent || m1 != m2 {
		tst.Errorf("second request must return the same instance\n")
		return
	}
	m3, _ := GetModel("test_factory", "matA", "velast", true)
	if m3 == m1 {
		tst.Errorf("getnew must force a fresh instance\n")
		return
	}
	if m, _ := GetModel("test_factory", "matA", "unknown-model", false); m != nil {
		tst.Errorf("unknown model name must return nil\n")
		return
	}
}
