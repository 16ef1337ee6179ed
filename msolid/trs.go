// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// TRS implements time-temperature superposition with the
// Williams-Landel-Ferry equation:
//  log10(aT) = -C1 (T - Tref) / (C2 + T - Tref)
// The shift factor aT rescales relaxation times; the kernel divides the time
// increment by aT so that temperatures above Tref relax faster.
type TRS struct {

	// parameters
	Tref float64 // reference temperature
	C1   float64 // first WLF constant
	C2   float64 // second WLF constant

	// diagnostics
	Diag Diagnostics // message callbacks; NopDiagnostics if not set
}

// Init initialises model
func (o *TRS) Init(prms fun.Prms) (err error) {
	if o.Diag == nil {
		o.Diag = NopDiagnostics{}
	}
	for _, p := range prms {
		switch p.N {
		case "tref":
			o.Tref = p.V
		case "C1":
			o.C1 = p.V
		case "C2":
			o.C2 = p.V
		}
	}
	if o.C2 < 0 {
		msg := io.Sf("InvalidProperty: WLF constant C2 must be non-negative; C2=%g", o.C2)
		o.Diag.Error(msg)
		return chk.Err(msg)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o TRS) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "tref", V: 75},
		&fun.Prm{N: "C1", V: 17.44},
		&fun.Prm{N: "C2", V: 51.6},
	}
}

// ShiftFactor returns aT for the given temperature. A degenerate denominator
// (C2 + T - Tref ≤ 0) is outside the range of validity of the WLF fit; in
// this case a warning is issued and no shift is applied.
func (o TRS) ShiftFactor(temp float64) float64 {
	diag := o.Diag
	if diag == nil {
		diag = NopDiagnostics{}
	}
	den := o.C2 + temp - o.Tref
	if den <= 0 {
		diag.Warn(io.Sf("temperature %g is outside the WLF range (C2+T-Tref=%g); using aT=1", temp, den))
		return 1
	}
	return math.Pow(10, -o.C1*(temp-o.Tref)/den)
}
