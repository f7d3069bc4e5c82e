// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input parameters read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// MPa is the factor converting megapascal input values to the pascal base unit
const MPa = 1e6

// loading axes
const (
	AxisX = iota // load along x
	AxisY        // load along y
	AxisZ        // load along z
)

// Parameters holds all data defining a triaxial compression run. Pressures,
// moduli, cohesion and tensile strength are given in MPa; lengths in metres;
// densities in kg/m³. Values are immutable once the simulation starts.
type Parameters struct {

	// grid
	Nx        int     `json:"nx"`        // number of voxels along x
	Ny        int     `json:"ny"`        // number of voxels along y
	Nz        int     `json:"nz"`        // number of voxels along z
	VoxelSize float64 `json:"voxelsize"` // voxel edge length [m]
	Label     int     `json:"label"`     // label of the material under test

	// loading
	Pconf    float64 `json:"pconf"`    // confining pressure [MPa]
	Pini     float64 `json:"pini"`     // initial axial pressure [MPa]
	Pfin     float64 `json:"pfin"`     // final axial pressure [MPa]
	Nincs    int     `json:"nincs"`    // number of pressure increments
	StepsInc int     `json:"stepsinc"` // inner time steps per increment
	Axis     int     `json:"axis"`     // loading axis: 0=x 1=y 2=z

	// constitutive flags
	Elastic bool `json:"elastic"` // enable elastic sub-model
	Plastic bool `json:"plastic"` // enable Mohr-Coulomb sub-model
	Brittle bool `json:"brittle"` // enable brittle damage sub-model

	// material
	Ftens float64 `json:"ftens"` // tensile strength [MPa]
	Phi   float64 `json:"phi"`   // friction angle [degrees]
	Coh   float64 `json:"coh"`   // cohesion [MPa]
	E     float64 `json:"E"`     // Young's modulus [MPa]
	Nu    float64 `json:"nu"`    // Poisson's coefficient

	// optional ramp shape g(τ) with τ ∈ [0,1]; empty type means linear
	RampType string     `json:"ramptype"` // function type from dbf database; e.g. "lin"
	RampPrms dbf.Params `json:"rampprms"` // ramp function parameters

	// derived
	Lam0 float64 // λ₀: Lamé's first parameter (undamaged) [Pa]
	Mu0  float64 // μ₀: shear modulus (undamaged) [Pa]
	Sφ   float64 // sin(φ)
	Cφ   float64 // cos(φ)
	Ramp dbf.T   // ramp shape function; may be nil (linear)
}

// Validate checks the parameters and returns an error on the first violation
func (o *Parameters) Validate() (err error) {
	if o.Nx < 1 || o.Ny < 1 || o.Nz < 1 {
		return chk.Err("grid dimensions must be positive. %d x %d x %d is invalid", o.Nx, o.Ny, o.Nz)
	}
	if o.VoxelSize <= 0 {
		return chk.Err("voxel size must be positive. voxelsize = %g is invalid", o.VoxelSize)
	}
	if o.E <= 0 {
		return chk.Err("Young's modulus must be positive. E = %g is invalid", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("Poisson's coefficient must be within (-1, 0.5). nu = %g is invalid", o.Nu)
	}
	if o.Nincs < 1 {
		return chk.Err("at least one pressure increment is required. nincs = %d is invalid", o.Nincs)
	}
	if o.StepsInc < 1 {
		return chk.Err("at least one step per increment is required. stepsinc = %d is invalid", o.StepsInc)
	}
	if o.Axis < AxisX || o.Axis > AxisZ {
		return chk.Err("loading axis must be 0, 1 or 2. axis = %d is invalid", o.Axis)
	}
	return
}

// CalcDerived computes the Lamé constants, the friction terms and the ramp
// function. Must be called once, after Validate
func (o *Parameters) CalcDerived() (err error) {
	E := o.E * MPa
	o.Lam0 = E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	o.Mu0 = E / (2.0 * (1.0 + o.Nu))
	φ := o.Phi * math.Pi / 180.0
	o.Sφ = math.Sin(φ)
	o.Cφ = math.Cos(φ)
	if o.RampType != "" {
		defer func() {
			if r := recover(); r != nil {
				err = chk.Err("cannot allocate ramp function %q: %v", o.RampType, r)
			}
		}()
		o.Ramp = dbf.New(o.RampType, o.RampPrms)
	}
	return
}

// PconfPa, PiniPa and PfinPa return pressures in the pascal base unit
func (o *Parameters) PconfPa() float64 { return o.Pconf * MPa }
func (o *Parameters) PiniPa() float64  { return o.Pini * MPa }
func (o *Parameters) PfinPa() float64  { return o.Pfin * MPa }

// FtensPa returns the tensile strength in pascal
func (o *Parameters) FtensPa() float64 { return o.Ftens * MPa }

// CohPa returns the cohesion in pascal
func (o *Parameters) CohPa() float64 { return o.Coh * MPa }

// ReadParameters reads parameters from a JSON file, validates them and
// computes the derived quantities
func ReadParameters(fnamepath string) (o *Parameters, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("cannot read parameters file %q: %v", fnamepath, r)
		}
	}()
	b := io.ReadFile(fnamepath)
	o = new(Parameters)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse parameters file %q: %v", fnamepath, err)
	}
	err = o.Validate()
	if err != nil {
		return
	}
	err = o.CalcDerived()
	return
}
