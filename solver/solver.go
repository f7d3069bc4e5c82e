// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements the explicit elastodynamic triaxial-compression
// integrator: ramped boundary loading over a labelled voxel volume with
// elastic, Mohr-Coulomb plastic and brittle damage sub-models
package solver

import (
	"sync/atomic"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/mattemangia/CTS-sub009/grid"
	"github.com/mattemangia/CTS-sub009/inp"
	"github.com/mattemangia/CTS-sub009/mdl"
	"github.com/mattemangia/CTS-sub009/out"
)

// Simulator holds all data for one triaxial compression run. The grid arrays
// are exclusively owned by the simulator; external consumers receive only
// emitted events and the final results, never live array references
type Simulator struct {

	// input
	Par *inp.Parameters // simulation parameters
	Cte *inp.Constants  // numerical policy constants
	Vol grid.Volume     // labelled volume data source

	// state
	Gst *grid.State // field arrays
	Dt  float64     // stable time step; set once by CalcStableDt

	// constitutive models
	elastic *mdl.LinElast
	plastic *mdl.MohrCoulomb
	brittle *mdl.Brittle

	// material extent along the loading axis
	lo, hi int // min/max grid coordinate containing the material
	nmat   int // number of material voxels

	// run state machine (atomic)
	state int32

	// results
	Res    *out.Results // available after normal completion
	strain []float64    // recorded history; guarded by the run state machine
	stress []float64

	// events
	ProgressFcn ProgressFcn // progress notifications; may be nil
	FailureFcn  FailureFcn  // failure notification; may be nil
	CompleteFcn CompleteFcn // completion notification; may be nil

	// messages
	ShowMsg bool // print verbose messages
}

// NewSimulator allocates a simulator for the given parameters, constants and
// volume. Parameters are validated here and are immutable afterwards. A nil
// cte selects the default numerical policy
func NewSimulator(par *inp.Parameters, cte *inp.Constants, vol grid.Volume) (o *Simulator, err error) {

	// validate input
	err = par.Validate()
	if err != nil {
		return
	}
	err = par.CalcDerived()
	if err != nil {
		return
	}
	if cte == nil {
		cte = inp.DefaultConstants()
	}
	nx, ny, nz := vol.Dims()
	if nx != par.Nx || ny != par.Ny || nz != par.Nz {
		return nil, chk.Err("volume dimensions %d x %d x %d do not match the grid %d x %d x %d", nx, ny, nz, par.Nx, par.Ny, par.Nz)
	}

	// new simulator
	o = &Simulator{Par: par, Cte: cte, Vol: vol}
	o.Gst = grid.NewState(par.Nx, par.Ny, par.Nz, par.VoxelSize)

	// material extent and count
	o.lo, o.hi = o.Gst.Extent(vol, par.Label, par.Axis)
	if o.lo < 0 {
		return nil, chk.Err("volume has no voxel with label %d", par.Label)
	}
	o.nmat = o.Gst.CountMaterial(vol, par.Label)

	// constitutive models
	m, err := mdl.New("lin-elast")
	if err != nil {
		return nil, err
	}
	o.elastic = m.(*mdl.LinElast)
	err = o.elastic.Init(dbf.Params{
		&dbf.P{N: "E", V: par.E * inp.MPa},
		&dbf.P{N: "nu", V: par.Nu},
	})
	if err != nil {
		return nil, err
	}
	if par.Plastic {
		m, err = mdl.New("mohr-coulomb")
		if err != nil {
			return nil, err
		}
		o.plastic = m.(*mdl.MohrCoulomb)
		err = o.plastic.Init(dbf.Params{
			&dbf.P{N: "phi", V: par.Phi},
			&dbf.P{N: "c", V: par.CohPa()},
			&dbf.P{N: "pref", V: par.PconfPa()},
			&dbf.P{N: "smax", V: cte.ScaleMax},
		})
		if err != nil {
			return nil, err
		}
	}
	if par.Brittle {
		m, err = mdl.New("brittle")
		if err != nil {
			return nil, err
		}
		o.brittle = m.(*mdl.Brittle)
		err = o.brittle.Init(dbf.Params{
			&dbf.P{N: "ft", V: par.FtensPa()},
			&dbf.P{N: "dmax", V: cte.DmgMax},
			&dbf.P{N: "kd", V: cte.DmgRate},
			&dbf.P{N: "dstep", V: cte.DmgStep},
		})
		if err != nil {
			return nil, err
		}
	}
	return
}

// State returns the current run state
func (o *Simulator) State() RunState {
	return RunState(atomic.LoadInt32(&o.state))
}

// Start launches the run on a background goroutine. Returns an error if the
// simulator is not idle
func (o *Simulator) Start() (err error) {
	if !o.cas(Idle, Running) {
		return chk.Err("cannot start: run state is %q", o.State())
	}
	go o.run()
	return
}

// Run executes the run synchronously and returns the results, or nil if the
// run was cancelled
func (o *Simulator) Run() (res *out.Results, err error) {
	if !o.cas(Idle, Running) {
		return nil, chk.Err("cannot run: run state is %q", o.State())
	}
	o.run()
	return o.Res, nil
}

// Pause requests suspension of the run. The worker finishes the in-flight
// step and then busy-waits until resumed or cancelled
func (o *Simulator) Pause() bool { return o.cas(Running, Paused) }

// Resume continues a paused run
func (o *Simulator) Resume() bool { return o.cas(Paused, Running) }

// ContinueAfterFailure resumes the run after a failure-forced pause. Distinct
// from Resume to make the caller's intent explicit: the material has failed
// and further loading is being observed deliberately
func (o *Simulator) ContinueAfterFailure() bool { return o.Resume() }

// Cancel requests cooperative termination. Valid from any non-terminal state
func (o *Simulator) Cancel() {
	for {
		s := o.State()
		if s.Terminal() {
			return
		}
		if o.cas(s, Cancelled) {
			return
		}
	}
}

// History returns copies of the stress-strain samples recorded so far. Safe
// to call once the run has reached a terminal or paused state
func (o *Simulator) History() (strain, stress []float64) {
	strain = append(strain, o.strain...)
	stress = append(stress, o.stress...)
	return
}

// Clean releases the grid arrays
func (o *Simulator) Clean() {
	if o.Gst != nil {
		o.Gst.Clean()
	}
}

// cas atomically transitions the state machine
func (o *Simulator) cas(from, to RunState) bool {
	return atomic.CompareAndSwapInt32(&o.state, int32(from), int32(to))
}

// msg prints a verbose message
func (o *Simulator) msg(format string, prm ...interface{}) {
	if o.ShowMsg {
		io.Pf(format, prm...)
	}
}
