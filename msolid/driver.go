// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Path holds a piecewise-linear strain/temperature history for the driver.
// Stations define the values at leg boundaries; each leg is subdivided into
// Nincs equal increments.
type Path struct {

	// input
	Nincs int         // number of increments per leg
	Time  []float64   // time at each station [nstations]
	Eps   [][]float64 // strain components at each station [nstations][nsig]
	Temp  []float64   // temperature at each station; nil => constant Tini
	Tini  float64     // temperature used when Temp is nil
}

// SetStrain sets a strain-driven path
func (o *Path) SetStrain(nincs int, time []float64, eps [][]float64) (err error) {
	if nincs < 1 {
		return chk.Err("path: number of increments per leg must be at least 1; got %d", nincs)
	}
	if len(time) < 2 || len(eps) != len(time) {
		return chk.Err("path: need at least two stations with matching strain rows; got %d times and %d rows", len(time), len(eps))
	}
	nsig := len(eps[0])
	for i := 1; i < len(time); i++ {
		if time[i] <= time[i-1] {
			return chk.Err("path: time stations must be strictly increasing; station %d has t=%g after t=%g", i, time[i], time[i-1])
		}
		if len(eps[i]) != nsig {
			return chk.Err("path: strain row %d has %d components; need %d", i, len(eps[i]), nsig)
		}
	}
	o.Nincs = nincs
	o.Time = time
	o.Eps = eps
	return
}

// SetRelaxation sets the classical relaxation path: ramp the strain from zero
// to ε over [0, tload] and hold it until tend
func (o *Path) SetRelaxation(nincs int, tload, tend float64, ε []float64) (err error) {
	if tload <= 0 || tend <= tload {
		return chk.Err("path: need 0 < tload < tend; got tload=%g, tend=%g", tload, tend)
	}
	zero := make([]float64, len(ε))
	return o.SetStrain(nincs, []float64{0, tload, tend}, [][]float64{zero, ε, ε})
}

// Nsig returns the number of stress/strain components of this path
func (o Path) Nsig() int {
	if len(o.Eps) > 0 {
		return len(o.Eps[0])
	}
	return 0
}

// TempAt returns the temperature at station i
func (o Path) TempAt(i int) float64 {
	if o.Temp == nil {
		return o.Tini
	}
	return o.Temp[i]
}

// Driver runs a material model over a loading path at a single material
// point, storing the state after every increment.
type Driver struct {

	// model
	model Model

	// results
	Tout  []float64 // time at each output station
	Res   []*State  // state copies at each output station
	Cfac  []float64 // stiffness correction factor per increment (viscoelastic models)
	Dtrat []float64 // time-increment adequacy factor per increment (viscoelastic models)
}

// Init allocates a model from the factory and initialises it
func (o *Driver) Init(simfnk, modelname string, ndim int, pstress bool, prms fun.Prms) (err error) {
	o.model, _ = GetModel(simfnk, "driver", modelname, true)
	if o.model == nil {
		return chk.Err("driver: cannot allocate model named %q", modelname)
	}
	return o.model.Init(ndim, pstress, prms)
}

// Model returns the model being driven
func (o *Driver) Model() Model {
	return o.model
}

// Run walks the path, calling Update once per increment. Updates are
// strictly sequential; the state after increment N feeds increment N+1.
func (o *Driver) Run(pth *Path) (err error) {

	// initialise state at zero stress
	nsig := pth.Nsig()
	s, err := o.model.InitIntVars(make([]float64, nsig))
	if err != nil {
		return chk.Err("driver: cannot initialise internal variables:\n%v", err)
	}
	o.Tout = []float64{pth.Time[0]}
	o.Res = []*State{s.GetCopy()}
	o.Cfac = nil
	o.Dtrat = nil

	// walk legs
	ε := make([]float64, nsig)
	Δε := make([]float64, nsig)
	for leg := 1; leg < len(pth.Time); leg++ {
		t := pth.Time[leg-1]
		dt := (pth.Time[leg] - t) / float64(pth.Nincs)
		dtemp := (pth.TempAt(leg) - pth.TempAt(leg-1)) / float64(pth.Nincs)
		temp := pth.TempAt(leg - 1)
		for j := 0; j < nsig; j++ {
			Δε[j] = (pth.Eps[leg][j] - pth.Eps[leg-1][j]) / float64(pth.Nincs)
		}
		for i := 0; i < pth.Nincs; i++ {
			err = o.model.Update(s, ε, Δε, t, dt, temp, dtemp)
			if err != nil {
				return chk.Err("driver: update failed at t=%g:\n%v", t, err)
			}
			t += dt
			temp += dtemp
			for j := 0; j < nsig; j++ {
				ε[j] += Δε[j]
			}
			o.Tout = append(o.Tout, t)
			o.Res = append(o.Res, s.GetCopy())
			if ve, ok := o.model.(*ViscoElast); ok {
				o.Cfac = append(o.Cfac, ve.Cfac)
				o.Dtrat = append(o.Dtrat, ve.Dtrat)
			}
		}
	}
	return
}
