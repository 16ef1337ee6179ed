// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun"
)

// ViscoElast implements linear elasticity with Prony series stress
// relaxation; i.e. a generalized Maxwell solid. The elastic constants define
// the instantaneous response; the Prony terms relax it toward the
// equilibrium fraction Ginf. An optional WLF model shifts the relaxation
// times with temperature.
type ViscoElast struct {
	SmallElasticity
	Visco Viscoelastic

	// correction factors from the last update
	Cfac  float64 // effective modulus ratio for the tangent operator
	Dtrat float64 // time-increment adequacy: Δt over the smallest τ

	// auxiliary
	σtr []float64 // instantaneous trial stress
	σrx []float64 // relaxed stress
}

// add model to factory
func init() {
	allocators["velast"] = func() Model { return new(ViscoElast) }
}

// Clean cleans resources
func (o *ViscoElast) Clean() {
}

// Init initialises model
func (o *ViscoElast) Init(ndim int, pstress bool, prms fun.Prms) (err error) {
	err = o.SmallElasticity.Init(ndim, pstress, prms)
	if err != nil {
		return
	}
	err = o.Visco.Init(prms)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "tref", "C1", "C2":
			if o.Visco.Trs == nil {
				o.Visco.Trs = new(TRS)
				o.Visco.Trs.Diag = o.Visco.Diag
				err = o.Visco.Trs.Init(prms)
				if err != nil {
					return
				}
			}
		}
	}
	o.Cfac = 1
	o.σtr = make([]float64, o.Nsig)
	o.σrx = make([]float64, o.Nsig)
	return
}

// SetDiagnostics injects the message callbacks; must be called before Init
func (o *ViscoElast) SetDiagnostics(diag Diagnostics) {
	o.Visco.Diag = diag
	if o.Visco.Trs != nil {
		o.Visco.Trs.Diag = diag
	}
}

// GetPrms gets (an example) of parameters
func (o ViscoElast) GetPrms() fun.Prms {
	prms := o.SmallElasticity.GetPrms()
	return append(prms, o.Visco.GetPrms()...)
}

// InitIntVars initialises internal (secondary) variables. May be called
// again to restart the simulation at the same material point.
func (o *ViscoElast) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, o.Visco.Nprony(), false)
	copy(s.Sig, σ)
	if o.Visco.Nprony() > 0 {
		copy(s.Sigi, σ)
		err = o.Visco.ResetIntVars(o.Nsig, s.Phi)
	}
	return
}

// Update computes the new relaxed stress for given strain increments.
// The state is left untouched when an error is returned.
func (o *ViscoElast) Update(s *State, ε, Δε []float64, time, dtime, temp, dtemp float64) (err error) {

	// purely elastic material
	if o.Visco.Nprony() == 0 {
		return o.SmallElasticity.Update(s, ε, Δε, time, dtime, temp, dtemp)
	}

	// zero increment: no elapsed time
	if dtime == 0 {
		return
	}

	// instantaneous (trial) stress
	copy(o.σtr, s.Sigi)
	err = o.AddStressIncrement(o.σtr, Δε)
	if err != nil {
		return
	}

	// relax
	copy(o.σrx, o.σtr)
	cfac, dtrat, err := o.Visco.Relax(o.σrx, s.Sigi, s.Phi, s.F, time, dtime, temp, dtemp)
	if err != nil {
		return
	}

	// commit
	o.Cfac, o.Dtrat = cfac, dtrat
	copy(s.Sigi, o.σtr)
	copy(s.Sig, o.σrx)
	return
}

// CalcD computes the consistent modulus: the elastic stiffness scaled by the
// correction factor of the last update
func (o *ViscoElast) CalcD(D [][]float64, s *State) (err error) {
	err = o.SmallElasticity.CalcD(D, s)
	if err != nil {
		return
	}
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D[i][j] *= o.Cfac
		}
	}
	return
}
