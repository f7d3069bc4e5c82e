// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "math"

// CalcStableDt computes the CFL-safe time step from the undamaged P-wave
// speed and the minimum density present in the selected material, and stores
// it as the shared step for all subsequent updates. Must run once before the
// first increment; the step is not recomputed mid-run, so damage-softened
// stiffness keeps the original (still stable) step and a fixed step count
func (o *Simulator) CalcStableDt() float64 {
	ρmin := o.Gst.MinDensity(o.Vol, o.Par.Label)
	if ρmin <= 0 {
		ρmin = o.Cte.RhoDflt
	}
	vp := math.Sqrt((o.Par.Lam0 + 2.0*o.Par.Mu0) / ρmin)
	if vp > o.Cte.VpMax {
		vp = o.Cte.VpMax
	}
	dt := o.Cte.Safety * o.Par.VoxelSize / vp
	if dt < o.Cte.DtMin {
		dt = o.Cte.DtMin
	}
	o.Dt = dt
	o.msg("> stable time step: dt = %g s (vp = %g m/s, rho_min = %g kg/m3)\n", dt, vp, ρmin)
	return dt
}
