// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/tsr"
)

// SmallElasticity implements linear isotropic elasticity for small strains.
// It supplies the instantaneous stress that the viscoelastic kernel relaxes.
type SmallElasticity struct {

	// parameters
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
	K  float64 // bulk modulus
	G  float64 // shear modulus

	// derived
	Nsig int  // number of stress components
	Pse  bool // plane-stress
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(SmallElasticity) }
}

// Clean cleans resources
func (o *SmallElasticity) Clean() {
}

// Init initialises model. Either (E, nu) or (K, G) must be given; the missing
// pair is completed from the other.
func (o *SmallElasticity) Init(ndim int, pstress bool, prms fun.Prms) (err error) {
	o.Nsig = 2 * ndim
	o.Pse = pstress
	var hasE, hasν, hasK, hasG bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasν = p.V, true
		case "K":
			o.K, hasK = p.V, true
		case "G":
			o.G, hasG = p.V, true
		}
	}
	switch {
	case hasE && hasν:
		o.K = Calc_K_from_Enu(o.E, o.Nu)
		o.G = Calc_G_from_Enu(o.E, o.Nu)
	case hasK && hasG:
		o.E = Calc_E_from_KG(o.K, o.G)
		o.Nu = Calc_nu_from_KG(o.K, o.G)
	default:
		return chk.Err("lin-elast: either {E, nu} or {K, G} must be given")
	}
	if o.Pse && o.Nu == 0.5 {
		return chk.Err("lin-elast: plane-stress with incompressible material (nu=0.5) is not available")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SmallElasticity) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "E", V: 2000},
		&fun.Prm{N: "nu", V: 0.2},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o SmallElasticity) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.Nsig, 0, false)
	copy(s.Sig, σ)
	return
}

// Update computes the new stress for given strain increments
func (o SmallElasticity) Update(s *State, ε, Δε []float64, time, dtime, temp, dtemp float64) (err error) {
	return o.AddStressIncrement(s.Sig, Δε)
}

// AddStressIncrement adds the elastic stress increment corresponding to Δε
// onto σ:  σ += K tr(Δε) I + 2 G dev(Δε)
func (o SmallElasticity) AddStressIncrement(σ, Δε []float64) (err error) {
	if len(σ) != o.Nsig {
		return chk.Err("lin-elast: stress vector has %d components; need %d", len(σ), o.Nsig)
	}
	trΔε := Δε[0] + Δε[1] + Δε[2]
	for i := 0; i < o.Nsig; i++ {
		devΔε_i := Δε[i] - trΔε*tsr.Im[i]/3.0
		σ[i] += o.K*trΔε*tsr.Im[i] + 2.0*o.G*devΔε_i
	}
	return
}

// CalcD computes the elastic stiffness D
func (o SmallElasticity) CalcD(D [][]float64, s *State) (err error) {
	a := o.K - 2.0*o.G/3.0
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			D[i][j] = a * tsr.Im[i] * tsr.Im[j]
		}
		D[i][i] += 2.0 * o.G
	}
	return
}
