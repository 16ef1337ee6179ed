// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_plotter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plotter01")

	if chk.Verbose {

		var drv Driver
		err := drv.Init("test", "velast", 3, false, velastPrms())
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}

		ε := make([]float64, 6)
		ε[0] = 0.01
		var pth Path
		err = pth.SetRelaxation(100, 0.01, 20.0, ε)
		if err != nil {
			tst.Errorf("SetRelaxation failed: %v\n", err)
			return
		}
		err = drv.Run(&pth)
		if err != nil {
			tst.Errorf("Run failed: %v\n", err)
			return
		}

		var plr Plotter
		plr.Lbl = "velast"
		plr.Plot(drv.Tout, drv.Res, drv.Cfac, drv.Dtrat)
		plr.Save("/tmp/gmd", "msolid_plotter01.png")
	}
}
