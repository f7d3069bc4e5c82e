// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "math"

// PrincipalStresses solves the cubic characteristic polynomial of the stress
// tensor and returns the eigenvalues sorted as σ1 ≥ σ2 ≥ σ3. The solution
// uses the trigonometric (Cardano) case split; the acos argument is clamped
// to [-1,1] against floating point drift
func PrincipalStresses(σ *Sig) (σ1, σ2, σ3 float64) {

	// isotropic part
	q := (σ.Sxx + σ.Syy + σ.Szz) / 3.0

	// magnitude of the deviatoric part
	p2 := (σ.Sxx-q)*(σ.Sxx-q) + (σ.Syy-q)*(σ.Syy-q) + (σ.Szz-q)*(σ.Szz-q) +
		2.0*(σ.Sxy*σ.Sxy+σ.Syz*σ.Syz+σ.Szx*σ.Szx)
	p := math.Sqrt(p2 / 6.0)
	if p < 1e-20 {
		// hydrostatic state
		return q, q, q
	}

	// r = det(B)/2 with B = (σ - q·I)/p
	bxx := (σ.Sxx - q) / p
	byy := (σ.Syy - q) / p
	bzz := (σ.Szz - q) / p
	bxy := σ.Sxy / p
	byz := σ.Syz / p
	bzx := σ.Szx / p
	detB := bxx*(byy*bzz-byz*byz) - bxy*(bxy*bzz-byz*bzx) + bzx*(bxy*byz-byy*bzx)
	r := detB / 2.0
	if r < -1 {
		r = -1
	}
	if r > 1 {
		r = 1
	}

	// eigenvalues from the trigonometric solution
	θ := math.Acos(r) / 3.0
	σ1 = q + 2.0*p*math.Cos(θ)
	σ3 = q + 2.0*p*math.Cos(θ+2.0*math.Pi/3.0)
	σ2 = 3.0*q - σ1 - σ3
	return
}
