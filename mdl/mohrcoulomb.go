// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MohrCoulomb implements the plastic corrector. When the equivalent shear
// stress τ = √J2 exceeds the frictional/cohesive limit, the deviatoric and
// shear components are scaled down; the mean stress is left untouched. The
// scale-down is bounded by smax so that one step never annihilates stress
type MohrCoulomb struct {
	Phi  float64 // friction angle [degrees]
	C    float64 // cohesion [Pa]
	Pref float64 // confining reference pressure [Pa]
	Smax float64 // maximum scale-down factor per step

	// derived
	sφ, cφ float64 // sin(φ), cos(φ)
}

// add model to factory
func init() {
	allocators["mohr-coulomb"] = func() Model { return new(MohrCoulomb) }
}

// Init initialises model
func (o *MohrCoulomb) Init(prms dbf.Params) (err error) {
	o.Smax = 0.95
	for _, p := range prms {
		switch p.N {
		case "phi":
			o.Phi = p.V
		case "c":
			o.C = p.V
		case "pref":
			o.Pref = p.V
		case "smax":
			o.Smax = p.V
		}
	}
	if o.Phi < 0 || o.Phi >= 90 {
		return chk.Err("mohr-coulomb: friction angle must be within [0, 90). phi = %g is invalid", o.Phi)
	}
	if o.Smax <= 0 || o.Smax >= 1 {
		return chk.Err("mohr-coulomb: scale cap must be within (0, 1). smax = %g is invalid", o.Smax)
	}
	φ := o.Phi * math.Pi / 180.0
	o.sφ = math.Sin(φ)
	o.cφ = math.Cos(φ)
	return
}

// GetPrms gets (an example) of parameters
func (o MohrCoulomb) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "phi", V: 30},
		&dbf.P{N: "c", V: 1.0000e+07},
		&dbf.P{N: "pref", V: 0},
		&dbf.P{N: "smax", V: 0.95},
	}
}

// Correct applies the yield check and scales the deviator if f > 0.
// Returns true if scaling occurred
func (o *MohrCoulomb) Correct(σ *Sig) (scaled bool) {

	// mean and deviatoric stress
	mean := (σ.Sxx + σ.Syy + σ.Szz) / 3.0
	dxx := σ.Sxx - mean
	dyy := σ.Syy - mean
	dzz := σ.Szz - mean

	// second deviatoric invariant and equivalent shear stress
	J2 := 0.5*(dxx*dxx+dyy*dyy+dzz*dzz) + σ.Sxy*σ.Sxy + σ.Syz*σ.Syz + σ.Szx*σ.Szx
	τ := math.Sqrt(J2)
	if τ == 0 {
		return
	}

	// yield function with pressure-positive mean stress relative to the
	// confining reference: compression raises the frictional capacity,
	// tension lowers it
	p := -mean - o.Pref
	f := τ - p*o.sφ - o.C*o.cφ
	if f <= 0 {
		return
	}

	// scale down deviatoric and shear components; mean stays
	τlim := o.C*o.cφ + p*o.sφ
	scale := (τ - τlim) / τ
	if scale > o.Smax {
		scale = o.Smax
	}
	if scale < 0 {
		scale = 0
	}
	m := 1.0 - scale
	σ.Sxx = mean + dxx*m
	σ.Syy = mean + dyy*m
	σ.Szz = mean + dzz*m
	σ.Sxy *= m
	σ.Syz *= m
	σ.Szx *= m
	return true
}
