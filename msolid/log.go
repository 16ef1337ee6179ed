// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/io"

// Diagnostics defines callbacks for kernel messages. Implementations must not
// block or fail the caller; messages are observational only and never drive
// control flow. Fatal conditions are additionally returned as errors.
type Diagnostics interface {
	Info(msg string)  // informational message
	Warn(msg string)  // non-fatal problem; values were corrected and execution continues
	Error(msg string) // fatal problem; the call also returns an error
}

// NopDiagnostics discards all messages
type NopDiagnostics struct{}

func (o NopDiagnostics) Info(msg string)  {}
func (o NopDiagnostics) Warn(msg string)  {}
func (o NopDiagnostics) Error(msg string) {}

// StdDiagnostics writes messages to standard output, colored by severity
type StdDiagnostics struct {
	Prefix string // text prepended to every message; e.g. material name
}

func (o StdDiagnostics) Info(msg string)  { io.Pf("%s%s\n", o.Prefix, msg) }
func (o StdDiagnostics) Warn(msg string)  { io.Pfyel("%sWARNING: %s\n", o.Prefix, msg) }
func (o StdDiagnostics) Error(msg string) { io.PfRed("%sERROR: %s\n", o.Prefix, msg) }
