// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verification
package ana

import "github.com/cpmech/gosl/fun/dbf"

// TriaxElast computes the linear elastic solution of a triaxial compression
// state: axial stress σa and confining (radial) stress σc, both given
// pressure-positive
//
//          σa
//        ↓↓↓↓↓↓
//       o------o
//  σc → |      | ← σc      εa = (σa - 2 ν σc) / E
//       | E, ν |           εr = ((1-ν) σc - ν σa) / E
//       o------o
//        ↑↑↑↑↑↑
type TriaxElast struct {
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
}

// Init initialises this structure
func (o *TriaxElast) Init(prms dbf.Params) {

	// default values
	o.E = 1000.0
	o.ν = 0.25

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		}
	}
}

// AxialStrain returns the axial strain (compression positive)
func (o *TriaxElast) AxialStrain(σa, σc float64) float64 {
	return (σa - 2.0*o.ν*σc) / o.E
}

// RadialStrain returns the radial strain (compression positive)
func (o *TriaxElast) RadialStrain(σa, σc float64) float64 {
	return ((1.0-o.ν)*σc - o.ν*σa) / o.E
}

// Modulus returns the slope of the axial stress-strain line at σc = 0
func (o *TriaxElast) Modulus() float64 { return o.E }
