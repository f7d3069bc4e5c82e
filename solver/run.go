// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"time"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/stat"

	"github.com/mattemangia/CTS-sub009/inp"
	"github.com/mattemangia/CTS-sub009/out"
)

// pauseSleep is the polling interval of the busy-wait while paused
const pauseSleep = 10 * time.Millisecond

// run drives the loading loop. It executes on the worker goroutine; all
// transitions out of Running are requested asynchronously through the control
// surface and honoured here at the step boundaries
func (o *Simulator) run() {

	// stable time step and initial fields
	o.CalcStableDt()
	o.Gst.Initialize(o.Vol, o.Par.Label, o.Par.PconfPa())

	// sample length along the loading axis
	length := float64(o.hi-o.lo+1) * o.Par.VoxelSize

	// pressure schedule [MPa]
	sched := utl.LinSpace(o.Par.Pini, o.Par.Pfin, o.Par.Nincs+1)

	// history seeded with the initial state
	o.strain = []float64{0}
	o.stress = []float64{o.Par.Pini}

	// failure bookkeeping
	failed := false
	failInc := out.NoFailure

	// loading loop
	o.msg("> loading: %d increments of %d steps, axis %d\n", o.Par.Nincs, o.Par.StepsInc, o.Par.Axis)
	for inc := 0; inc < o.Par.Nincs; inc++ {

		// honour pause/cancel before touching the stress arrays
		if !o.waitStep() {
			o.emitCancelled(inc)
			return
		}

		// target axial pressure [MPa]
		target := sched[inc+1]
		if o.Par.Ramp != nil {
			τ := float64(inc+1) / float64(o.Par.Nincs)
			target = o.Par.Pini + (o.Par.Pfin-o.Par.Pini)*o.Par.Ramp.F(τ, nil)
		}

		// boundary loading on the far plane
		o.applyAxialLoad(target * inp.MPa)

		// inner time stepping
		for n := 0; n < o.Par.StepsInc; n++ {
			if !o.waitStep() {
				o.emitCancelled(inc)
				return
			}
			o.UpdateStress()
			o.UpdateVelocity()
			if !failed && o.CheckFailure() {
				failed = true
				failInc = inc
				o.cas(Running, Paused)
				o.msg("> failure detected at increment %d\n", inc)
				if o.FailureFcn != nil {
					o.FailureFcn(Failure{
						Axial:     target,
						Strain:    o.sampleStrain(length),
						Increment: inc,
						Nincs:     o.Par.Nincs,
					})
				}
			}
		}

		// strain sampling
		o.strain = append(o.strain, o.sampleStrain(length))
		o.stress = append(o.stress, target)

		// progress
		if o.ProgressFcn != nil {
			pct := 100.0 * float64(inc+1) / float64(o.Par.Nincs)
			o.ProgressFcn(Progress{Percent: pct, Increment: inc, Status: "running"})
		}
		o.msg("> increment %3d: P = %g MPa, strain = %g\n", inc, target, o.strain[len(o.strain)-1])
	}

	// completion: the terminal transition must not override a cancellation
	// or a failure-forced pause landing during the last increment
	o.Res = out.NewResults(o.strain, o.stress, o.Par.Nincs, failed, failInc)
	for !o.cas(Running, Completed) {
		if !o.waitStep() {
			o.Res = nil
			o.emitCancelled(o.Par.Nincs - 1)
			return
		}
	}
	o.msg("> completed: peak stress = %g MPa\n", o.Res.PeakStress)
	if o.CompleteFcn != nil {
		o.CompleteFcn(o.Res)
	}
}

// waitStep polls the run state before a step: it busy-waits with short sleeps
// while paused and returns false when the run was cancelled
func (o *Simulator) waitStep() bool {
	for {
		switch o.State() {
		case Cancelled:
			return false
		case Paused:
			time.Sleep(pauseSleep)
		default:
			return true
		}
	}
}

// emitCancelled sends the distinguished terminal progress notification
func (o *Simulator) emitCancelled(inc int) {
	o.msg("> cancelled at increment %d\n", inc)
	if o.ProgressFcn != nil {
		o.ProgressFcn(Progress{Percent: 0, Increment: inc, Status: "cancelled"})
	}
}

// axisIndex maps a coordinate m along the loading axis and two transverse
// coordinates (a,b) to grid indices
func (o *Simulator) axisIndex(m, a, b int) (i, j, k int) {
	switch o.Par.Axis {
	case inp.AxisX:
		return m, a, b
	case inp.AxisY:
		return a, m, b
	}
	return a, b, m
}

// transverseDims returns the grid dimensions transverse to the loading axis
func (o *Simulator) transverseDims() (na, nb int) {
	switch o.Par.Axis {
	case inp.AxisX:
		return o.Gst.Ny, o.Gst.Nz
	case inp.AxisY:
		return o.Gst.Nx, o.Gst.Nz
	}
	return o.Gst.Nx, o.Gst.Ny
}

// applyAxialLoad writes the axial pressure P [Pa] as negative normal stress
// onto every material voxel of the far boundary plane along the loading axis
func (o *Simulator) applyAxialLoad(P float64) {
	na, nb := o.transverseDims()
	for b := 0; b < nb; b++ {
		for a := 0; a < na; a++ {
			i, j, k := o.axisIndex(o.hi, a, b)
			if o.Vol.GetLabel(i, j, k) != o.Par.Label {
				continue
			}
			idx := o.Gst.I(i, j, k)
			switch o.Par.Axis {
			case inp.AxisX:
				o.Gst.Sxx[idx] = -P
			case inp.AxisY:
				o.Gst.Syy[idx] = -P
			default:
				o.Gst.Szz[idx] = -P
			}
		}
	}
}

// sampleStrain converts the mean displacement of the far boundary plane into
// an engineering strain with compression positive
func (o *Simulator) sampleStrain(length float64) float64 {
	na, nb := o.transverseDims()
	disp := make([]float64, 0, na*nb)
	for b := 0; b < nb; b++ {
		for a := 0; a < na; a++ {
			i, j, k := o.axisIndex(o.hi, a, b)
			if o.Vol.GetLabel(i, j, k) != o.Par.Label {
				continue
			}
			idx := o.Gst.I(i, j, k)
			switch o.Par.Axis {
			case inp.AxisX:
				disp = append(disp, o.Gst.Ux[idx])
			case inp.AxisY:
				disp = append(disp, o.Gst.Uy[idx])
			default:
				disp = append(disp, o.Gst.Uz[idx])
			}
		}
	}
	if len(disp) == 0 {
		return 0
	}
	return -stat.Mean(disp, nil) / length
}
