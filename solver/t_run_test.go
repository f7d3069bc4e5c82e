// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/mattemangia/CTS-sub009/ana"
	"github.com/mattemangia/CTS-sub009/out"
)

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. elastic compression approaches the static solution")

	par := cubeParams(10)
	par.Nincs = 5
	par.StepsInc = 400
	sim, _ := newCubeSim(tst, par)
	defer sim.Clean()

	res, err := sim.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if res == nil {
		tst.Errorf("Run returned nil results\n")
		return
	}
	if sim.State() != Completed {
		tst.Errorf("state after Run is %q, want completed\n", sim.State())
		return
	}

	// a second Run on the spent simulator must be rejected
	if _, err = sim.Run(); err == nil {
		tst.Errorf("Run on a completed simulator was accepted\n")
	}

	// history: initial sample plus one per increment, linear pressure schedule
	chk.IntAssert(len(res.Strain), par.Nincs+1)
	chk.IntAssert(len(res.Stress), par.Nincs+1)
	chk.Array(tst, "stress schedule", 1e-12, res.Stress, []float64{0, 2, 4, 6, 8, 10})
	chk.Float64(tst, "initial strain", 1e-15, res.Strain[0], 0)

	// pure elasticity: no failure and damage identically zero everywhere
	if res.Failed {
		tst.Errorf("elastic run reported failure\n")
	}
	chk.IntAssert(res.FailureInc, out.NoFailure)
	for i := range sim.Gst.Dmg {
		if sim.Gst.Dmg[i] != 0 {
			tst.Errorf("damage grew with the brittle sub-model disabled\n")
			return
		}
	}

	// strain grows monotonically under monotone loading (heavily damped
	// dynamics; tiny oscillatory residue is tolerated)
	for i := 1; i < len(res.Strain); i++ {
		if res.Strain[i] < res.Strain[i-1]-1e-6 {
			tst.Errorf("strain not monotone: ε[%d] = %g < ε[%d] = %g\n", i, res.Strain[i], i-1, res.Strain[i-1])
			return
		}
	}

	// the final strain must land near the analytical uniaxial solution; the
	// coarse grid and the boundary treatment justify only an order-of-magnitude
	// comparison
	var sol ana.TriaxElast
	sol.Init(dbf.Params{
		&dbf.P{N: "E", V: par.E},
		&dbf.P{N: "nu", V: par.Nu},
	})
	want := sol.AxialStrain(par.Pfin, par.Pconf)
	got := res.Strain[par.Nincs]
	if got < want/5.0 || got > want*5.0 {
		tst.Errorf("final strain %g too far from analytical %g\n", got, want)
	}
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. tensile loading fails the sample and resumes")

	par := cubeParams(4)
	par.Pfin = -10 // tension on the far plane
	par.Nincs = 1
	par.StepsInc = 80
	par.Brittle = true
	par.Ftens = 0.01
	sim, _ := newCubeSim(tst, par)
	defer sim.Clean()

	// observe post-failure loading: continue as soon as failure is reported
	var fail Failure
	nfail := 0
	sim.FailureFcn = func(f Failure) {
		fail = f
		nfail++
		if !sim.ContinueAfterFailure() {
			tst.Errorf("cannot continue after failure\n")
		}
	}

	res, err := sim.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if res == nil {
		tst.Errorf("Run returned nil results\n")
		return
	}
	chk.IntAssert(nfail, 1) // reported once per run, not once per step
	chk.IntAssert(fail.Increment, 0)
	chk.IntAssert(fail.Nincs, 1)
	chk.Float64(tst, "failure axial", 1e-12, fail.Axial, -10)
	if !res.Failed {
		tst.Errorf("results lost the failure flag\n")
	}
	chk.IntAssert(res.FailureInc, 0)
	if sim.State() != Completed {
		tst.Errorf("state after resumed run is %q, want completed\n", sim.State())
	}
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03. cancellation from the progress callback")

	par := cubeParams(4)
	par.Nincs = 5
	par.StepsInc = 5
	sim, _ := newCubeSim(tst, par)
	defer sim.Clean()

	var last Progress
	sim.ProgressFcn = func(p Progress) {
		last = p
		if p.Increment == 1 && p.Status == "running" {
			sim.Cancel()
		}
	}

	res, err := sim.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if res != nil {
		tst.Errorf("cancelled run produced results\n")
		return
	}
	if sim.State() != Cancelled {
		tst.Errorf("state after cancel is %q, want cancelled\n", sim.State())
	}
	if last.Status != "cancelled" {
		tst.Errorf("last progress status is %q, want cancelled\n", last.Status)
	}

	// partial history: initial sample plus the two finished increments
	strain, stress := sim.History()
	chk.IntAssert(len(strain), 3)
	chk.IntAssert(len(stress), 3)

	// cancel on a terminal state is a no-op
	sim.Cancel()
	if sim.State() != Cancelled {
		tst.Errorf("cancel on terminal state changed it to %q\n", sim.State())
	}
}

func Test_run04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run04. pause freezes the run, resume completes it")

	par := cubeParams(4)
	par.Nincs = 10
	par.StepsInc = 2000
	sim, _ := newCubeSim(tst, par)
	defer sim.Clean()

	// pause before idle is impossible
	if sim.Pause() {
		tst.Errorf("paused an idle simulator\n")
	}

	if err := sim.Start(); err != nil {
		tst.Errorf("Start failed: %v\n", err)
		return
	}
	if err := sim.Start(); err == nil {
		tst.Errorf("double Start was accepted\n")
	}
	if !sim.Pause() {
		tst.Errorf("cannot pause a running simulator\n")
		return
	}

	// let the in-flight step drain, then the history must be frozen
	time.Sleep(100 * time.Millisecond)
	strain1, stress1 := sim.History()
	time.Sleep(100 * time.Millisecond)
	strain2, stress2 := sim.History()
	if sim.State() != Paused {
		tst.Errorf("state is %q, want paused\n", sim.State())
		return
	}
	chk.IntAssert(len(strain1), len(strain2))
	chk.Array(tst, "frozen strain", 1e-15, strain1, strain2)
	chk.Array(tst, "frozen stress", 1e-15, stress1, stress2)

	// resume and wait for completion
	if !sim.Resume() {
		tst.Errorf("cannot resume a paused simulator\n")
		return
	}
	deadline := time.Now().Add(60 * time.Second)
	for sim.State() != Completed {
		if time.Now().After(deadline) {
			tst.Errorf("run did not complete in time\n")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	if sim.Res == nil {
		tst.Errorf("completed run has no results\n")
		return
	}
	chk.IntAssert(len(sim.Res.Strain), par.Nincs+1)
}

func Test_run05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run05. ramp shape overrides the linear schedule")

	par := cubeParams(4)
	par.Nincs = 3
	par.StepsInc = 5
	par.RampType = "cte" // g(τ) = 1: full pressure from the first increment
	par.RampPrms = dbf.Params{&dbf.P{N: "c", V: 1}}
	sim, _ := newCubeSim(tst, par)
	defer sim.Clean()

	res, err := sim.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if res == nil {
		tst.Errorf("Run returned nil results\n")
		return
	}
	chk.Array(tst, "ramped stress", 1e-12, res.Stress, []float64{0, 10, 10, 10})
}

func Test_run06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run06. cancellation during the last increment wins")

	par := cubeParams(4)
	par.Nincs = 3
	par.StepsInc = 5
	sim, _ := newCubeSim(tst, par)
	defer sim.Clean()

	var last Progress
	sim.ProgressFcn = func(p Progress) {
		last = p
		if p.Increment == par.Nincs-1 && p.Status == "running" {
			sim.Cancel()
		}
	}
	sim.CompleteFcn = func(r *out.Results) {
		tst.Errorf("completion notification after cancel\n")
	}

	res, err := sim.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if res != nil {
		tst.Errorf("cancelled run produced results\n")
		return
	}
	if sim.State() != Cancelled {
		tst.Errorf("state after cancel is %q, want cancelled\n", sim.State())
	}
	if last.Status != "cancelled" {
		tst.Errorf("last progress status is %q, want cancelled\n", last.Status)
	}
}

func Test_run07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run07. pause blocks the next increment's loading")

	par := cubeParams(4)
	par.Pfin = 9 // increment targets 3, 6, 9 MPa
	par.Nincs = 3
	par.StepsInc = 50
	sim, _ := newCubeSim(tst, par)
	defer sim.Clean()

	sim.ProgressFcn = func(p Progress) {
		if p.Increment == 0 && p.Status == "running" {
			sim.Pause()
		}
	}
	if err := sim.Start(); err != nil {
		tst.Errorf("Start failed: %v\n", err)
		return
	}
	deadline := time.Now().Add(60 * time.Second)
	for sim.State() != Paused {
		if time.Now().After(deadline) {
			tst.Errorf("run did not pause in time\n")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	// the far plane must still hold the first increment's load; the second
	// increment's boundary write waits for resumption
	idx := sim.Gst.I(2, 2, 4)
	chk.Float64(tst, "paused far-plane szz", 1e-6, sim.Gst.Szz[idx], -3e6)

	if !sim.Resume() {
		tst.Errorf("cannot resume\n")
		return
	}
	for sim.State() != Completed {
		if time.Now().After(deadline) {
			tst.Errorf("run did not complete in time\n")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	chk.IntAssert(len(sim.Res.Stress), par.Nincs+1)
}
