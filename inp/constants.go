// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Constants holds the numerical policy constants of the explicit integrator.
// These are empirical stabilisation values; they can be tuned but the
// defaults are known to produce stable, qualitatively plausible runs
type Constants struct {

	// clamping
	GradClamp  float64 `json:"gradclamp"`  // bound on velocity spatial derivatives [1/s]
	ForceClamp float64 `json:"forceclamp"` // bound on stress divergence terms [Pa/m]

	// plastic corrector
	ScaleMax float64 `json:"scalemax"` // max deviatoric scale-down per step

	// brittle corrector
	DmgMax  float64 `json:"dmgmax"`  // damage cap; below 1 to keep moduli finite
	DmgRate float64 `json:"dmgrate"` // damage increment per unit overshoot ratio
	DmgStep float64 `json:"dmgstep"` // max damage increment per step

	// momentum update
	Damping float64 `json:"damping"` // fractional velocity decay per step

	// stability
	Safety   float64 `json:"safety"`   // CFL safety factor (< 1)
	VpMax    float64 `json:"vpmax"`    // ceiling on the P-wave speed [m/s]
	RhoFloor float64 `json:"rhofloor"` // minimum density used in updates [kg/m³]
	RhoDflt  float64 `json:"rhodflt"`  // density when no material voxel is found [kg/m³]
	DtMin    float64 `json:"dtmin"`    // floor on the time step [s]

	// failure detection
	FailDmg   float64 `json:"faildmg"`   // per-voxel damage threshold
	FailRatio float64 `json:"failratio"` // fraction of over-threshold voxels declaring failure
	FailDmax  float64 `json:"faildmax"`  // near-unity max damage declaring failure
}

// DefaultConstants returns the default numerical policy
func DefaultConstants() *Constants {
	return &Constants{
		GradClamp:  1e6,
		ForceClamp: 1e12,
		ScaleMax:   0.95,
		DmgMax:     0.95,
		DmgRate:    0.1,
		DmgStep:    0.05,
		Damping:    0.05,
		Safety:     0.2,
		VpMax:      20000.0,
		RhoFloor:   100.0,
		RhoDflt:    2500.0,
		DtMin:      1e-9,
		FailDmg:    0.5,
		FailRatio:  0.10,
		FailDmax:   0.9,
	}
}
