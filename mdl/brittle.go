// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Brittle implements the tensile damage corrector. When the maximum principal
// stress exceeds the tensile strength, the voxel damage grows by a bounded
// fraction of the overshoot ratio and all stress components are degraded by
// (1 - d). Damage never decreases and is capped below 1 to keep the damaged
// moduli finite
type Brittle struct {
	Ft    float64 // tensile strength [Pa]
	Dmax  float64 // damage cap
	Kd    float64 // damage increment per unit overshoot ratio
	Dstep float64 // maximum damage increment per step
}

// add model to factory
func init() {
	allocators["brittle"] = func() Model { return new(Brittle) }
}

// Init initialises model
func (o *Brittle) Init(prms dbf.Params) (err error) {
	o.Dmax = 0.95
	o.Kd = 0.1
	o.Dstep = 0.05
	for _, p := range prms {
		switch p.N {
		case "ft":
			o.Ft = p.V
		case "dmax":
			o.Dmax = p.V
		case "kd":
			o.Kd = p.V
		case "dstep":
			o.Dstep = p.V
		}
	}
	if o.Ft <= 0 {
		return chk.Err("brittle: tensile strength must be positive. ft = %g is invalid", o.Ft)
	}
	if o.Dmax <= 0 || o.Dmax >= 1 {
		return chk.Err("brittle: damage cap must be within (0, 1). dmax = %g is invalid", o.Dmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Brittle) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "ft", V: 5.0000e+06},
		&dbf.P{N: "dmax", V: 0.95},
		&dbf.P{N: "kd", V: 0.1},
		&dbf.P{N: "dstep", V: 0.05},
	}
}

// Correct checks the maximum principal stress against the tensile strength,
// grows the damage and degrades the stress tensor. Returns the new damage,
// which equals dmg when no tensile failure occurs
func (o *Brittle) Correct(σ *Sig, dmg float64) (newDmg float64) {
	newDmg = dmg
	if dmg >= o.Dmax {
		return
	}
	σ1, _, _ := PrincipalStresses(σ)
	if σ1 <= o.Ft {
		return
	}
	Δd := o.Kd * (σ1/o.Ft - 1.0)
	if Δd > o.Dstep {
		Δd = o.Dstep
	}
	newDmg = dmg + Δd
	if newDmg > o.Dmax {
		newDmg = o.Dmax
	}
	m := 1.0 - newDmg
	σ.Sxx *= m
	σ.Syy *= m
	σ.Szz *= m
	σ.Sxy *= m
	σ.Syz *= m
	σ.Szx *= m
	return
}
