// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mattemangia/CTS-sub009/grid"
	"github.com/mattemangia/CTS-sub009/inp"
	"github.com/mattemangia/CTS-sub009/solver"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", false)
	verbose := io.ArgToBool(1, true)
	dirout := io.ArgToString(2, "/tmp/cts")
	enctype := io.ArgToString(3, "gob")
	volpath := io.ArgToString(4, "")

	// message
	if verbose {
		io.PfWhite("\nCTS -- Triaxial Compression Simulator\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"directory for output", "dirout", dirout,
			"results encoder", "enctype", enctype,
			"volume file (.vol)", "volpath", volpath,
		))
	}

	// parameters and volume: read the .sim file, or run the built-in
	// self-test cube when no file is given. The volume comes from a .vol
	// file when one is given; otherwise a sample cube filling the grid with
	// a one-voxel skin is synthesized
	var par *inp.Parameters
	var vol grid.Volume
	if fnamepath == "" {
		fnkey = "selftest"
		par, vol = selftest()
		if verbose {
			io.Pf("> no input file given; running self-test cube\n")
		}
	} else {
		var err error
		par, err = inp.ReadParameters(fnamepath)
		if err != nil {
			chk.Panic("cannot read parameters:\n%v", err)
		}
		if volpath != "" {
			vol, err = grid.ReadVolume(volpath)
			if err != nil {
				chk.Panic("cannot read volume:\n%v", err)
			}
		} else {
			if par.Nx < 3 || par.Ny < 3 || par.Nz < 3 {
				chk.Panic("grid %d x %d x %d is too small for a synthetic sample", par.Nx, par.Ny, par.Nz)
			}
			vol = grid.NewSampleBox(par.Nx, par.Ny, par.Nz, 1, par.Label, 2500.0)
		}
	}

	// simulator
	sim, err := solver.NewSimulator(par, nil, vol)
	if err != nil {
		chk.Panic("cannot allocate simulator:\n%v", err)
	}
	sim.ShowMsg = verbose

	// run
	res, err := sim.Run()
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}
	if res == nil {
		io.PfRed("> run cancelled\n")
		return
	}

	// results
	err = res.Save(dirout, fnkey, enctype)
	if err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}
	if verbose {
		res.Report()
		io.PfGreen("\n> results saved to %s\n", dirout)
	}
}

// selftest returns the parameters and volume of the built-in sample: a 20³
// sandstone-like cube inside a one-voxel air skin, loaded 0 → 20 MPa
func selftest() (par *inp.Parameters, vol grid.Volume) {
	n, pad, label := 20, 1, 1
	par = &inp.Parameters{
		Nx: n + 2*pad, Ny: n + 2*pad, Nz: n + 2*pad,
		VoxelSize: 0.001,
		Label:     label,
		Pconf:     2.0,
		Pini:      0.0,
		Pfin:      20.0,
		Nincs:     10,
		StepsInc:  200,
		Axis:      inp.AxisZ,
		Elastic:   true,
		Plastic:   true,
		Brittle:   true,
		Ftens:     5.0,
		Phi:       30.0,
		Coh:       10.0,
		E:         10000.0,
		Nu:        0.25,
	}
	vol = grid.NewSampleCube(n, pad, label, 2500.0)
	return
}
