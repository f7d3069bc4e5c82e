// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements the linear elastic predictor. The undamaged Lamé
// constants are fixed at Init; the local, damaged moduli are recomputed per
// voxel per step as (1-d)λ₀ and (1-d)μ₀
type LinElast struct {
	E    float64 // Young's modulus [Pa]
	Nu   float64 // Poisson's coefficient
	Lam0 float64 // λ₀: Lamé's first parameter (undamaged) [Pa]
	Mu0  float64 // μ₀: shear modulus (undamaged) [Pa]
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		}
	}
	if o.E <= 0 {
		return chk.Err("lin-elast: Young's modulus must be positive. E = %g is invalid", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("lin-elast: Poisson's coefficient must be within (-1, 0.5). nu = %g is invalid", o.Nu)
	}
	o.Lam0 = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	o.Mu0 = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1.0000e+10},
		&dbf.P{N: "nu", V: 0.25},
	}
}

// Increment adds the elastic stress increment to σ from the velocity
// gradients over one time step, using the damaged moduli
func (o *LinElast) Increment(σ *Sig, g *Grad, dmg, dt float64) {
	λ := (1.0 - dmg) * o.Lam0
	μ := (1.0 - dmg) * o.Mu0
	div := g.Dxx + g.Dyy + g.Dzz
	σ.Sxx += dt * (λ*div + 2.0*μ*g.Dxx)
	σ.Syy += dt * (λ*div + 2.0*μ*g.Dyy)
	σ.Szz += dt * (λ*div + 2.0*μ*g.Dzz)
	σ.Sxy += dt * μ * (g.Dxy + g.Dyx)
	σ.Syz += dt * μ * (g.Dyz + g.Dzy)
	σ.Szx += dt * μ * (g.Dzx + g.Dxz)
}
