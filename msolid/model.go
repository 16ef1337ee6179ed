// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements models for solid materials; in particular,
// the Prony series viscoelastic relaxation kernel
package msolid

import (
	"log"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for solid material models at one material point
type Model interface {

	// Init initialises model with given parameters
	Init(ndim int, pstress bool, prms fun.Prms) error

	// GetPrms gets (an example) of parameters
	GetPrms() fun.Prms

	// InitIntVars initialises internal (secondary) variables with given initial stress
	InitIntVars(σ []float64) (*State, error)

	// Update updates the state for given total and incremental strains.
	// Calls for one material point must be strictly sequential: the state
	// written by call N is the input of call N+1. Distinct points may be
	// evaluated concurrently provided each owns its State.
	Update(s *State, ε, Δε []float64, time, dtime, temp, dtemp float64) error

	// Clean cleans resources
	Clean()
}

// allocators holds all available solid models
var allocators = map[string]func() Model{}

// _models holds pointers to allocated models
var _models = map[string]Model{}

// GetModel returns (existent or new) solid model
//  simfnk  -- unique simulation filename key
//  matname -- material name
//  mdlname -- model name
//  getnew  -- force a new allocation; i.e. do not use any model found in database
//  Note: returns nil on errors
func GetModel(simfnk, matname, mdlname string, getnew bool) (model Model, existent bool) {

	// get new model, regardless of database
	if getnew {
		allocator, ok := allocators[mdlname]
		if !ok {
			return nil, false
		}
		return allocator(), false
	}

	// search database
	key := io.Sf("%s_%s_%s", simfnk, matname, mdlname)
	if model, ok := _models[key]; ok {
		return model, true
	}

	// if not found, get new
	allocator, ok := allocators[mdlname]
	if !ok {
		return nil, false
	}
	model = allocator()
	_models[key] = model
	return model, false
}

// LogModels prints to log information on existent and allocated Models
func LogModels() {
	l := "msolid: available:"
	for name := range allocators {
		l += " " + name
	}
	log.Println(l)
	l = "msolid: allocated:"
	for key := range _models {
		l += " " + io.Sf("%q", key)
	}
	log.Println(l)
}
