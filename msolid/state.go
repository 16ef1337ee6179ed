// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/la"

// State holds all data at one material point, including the viscoelastic
// relaxation history
type State struct {

	// essential
	Sig []float64 // σ: current (relaxed) Cauchy stress [nsig]

	// viscoelasticity (if nprony > 0)
	Sigi []float64 // instantaneous stress the relaxation acts upon [nsig]
	Phi  []float64 // φ: overstress of each Maxwell branch [nprony*nsig]

	// for large deformations
	F [][]float64 // deformation gradient [3][3]
}

// NewState allocates a state structure
//  nsig   -- number of stress components
//  nprony -- number of Maxwell branches; zero for purely elastic materials
//  large  -- large deformation analyses; otherwise small strains
func NewState(nsig, nprony int, large bool) *State {
	var state State
	state.Sig = make([]float64, nsig)
	if nprony > 0 {
		state.Sigi = make([]float64, nsig)
		state.Phi = make([]float64, nprony*nsig)
	}
	if large {
		state.F = la.MatAlloc(3, 3)
		state.F[0][0] = 1
		state.F[1][1] = 1
		state.F[2][2] = 1
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	if len(o.Phi) > 0 {
		copy(o.Sigi, other.Sigi)
		copy(o.Phi, other.Phi)
	}
	if len(o.F) > 0 {
		la.MatCopy(o.F, 1, other.F)
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	nprony := 0
	if len(o.Sig) > 0 {
		nprony = len(o.Phi) / len(o.Sig)
	}
	other := NewState(len(o.Sig), nprony, len(o.F) > 0)
	other.Set(o)
	return other
}
