// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the constitutive models for the voxel stress update
/*
 *  Per inner step, each interior material voxel undergoes:
 *
 *    elastic predictor    σ += dt * C(λ,μ) : ∇v        (lin-elast)
 *    plastic corrector    scale deviator if f > 0      (mohr-coulomb)
 *    brittle corrector    grow damage if σ1 > ft       (brittle)
 *
 *  with λ = (1-d)λ₀ and μ = (1-d)μ₀ computed from the local damage d
 */
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Sig holds the six independent components of the symmetric stress tensor [Pa]
type Sig struct {
	Sxx, Syy, Szz float64 // normal components
	Sxy, Syz, Szx float64 // shear components
}

// Grad holds the nine spatial derivatives of the velocity field [1/s].
// Dab = ∂v_a/∂x_b
type Grad struct {
	Dxx, Dxy, Dxz float64
	Dyx, Dyy, Dyz float64
	Dzx, Dzy, Dzz float64
}

// Model defines the interface for the voxel constitutive models
type Model interface {
	Init(prms dbf.Params) error // initialises model from parameters
	GetPrms() dbf.Params        // gets (an example) of parameters
}

// New returns a new constitutive model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdl' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
