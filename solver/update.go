// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/mattemangia/CTS-sub009/mdl"

// clamp saturates v to [-bound, bound]. Clamping is a silent, intentional
// saturation preventing one unstable voxel from propagating NaN/∞ through
// the grid; it is never reported as an error
func clamp(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}

// UpdateStress performs the constitutive update over all interior material
// voxels: elastic predictor from the clamped central-difference velocity
// gradients, then the plastic and brittle correctors when enabled. Material
// voxels on the far boundary plane along the loading axis are excluded:
// their stress carries the applied boundary traction and must not be eroded
// by the predictor. The scan is parallel over z-slabs; each voxel writes
// only its own stress and damage and reads only the velocity arrays, so the
// full-grid scan is safe
func (o *Simulator) UpdateStress() {
	g := o.Gst
	h2 := 2.0 * g.H
	cg := o.Cte.GradClamp
	dt := o.Dt
	label := o.Par.Label
	axis := o.Par.Axis
	hi := o.hi
	nw := g.Nworkers(g.Nz - 2)
	g.ScanSlabs(1, g.Nz-1, nw, func(iw, ka, kb int) {
		var σ mdl.Sig
		var dv mdl.Grad
		for k := ka; k < kb; k++ {
			for j := 1; j < g.Ny-1; j++ {
				for i := 1; i < g.Nx-1; i++ {
					if o.Vol.GetLabel(i, j, k) != label {
						continue
					}

					// boundary-driven plane
					switch axis {
					case 0:
						if i == hi {
							continue
						}
					case 1:
						if j == hi {
							continue
						}
					default:
						if k == hi {
							continue
						}
					}
					idx := g.I(i, j, k)

					// clamped central differences of the velocity field
					ix, jx := g.I(i+1, j, k), g.I(i-1, j, k)
					iy, jy := g.I(i, j+1, k), g.I(i, j-1, k)
					iz, jz := g.I(i, j, k+1), g.I(i, j, k-1)
					dv.Dxx = clamp((g.Vx[ix]-g.Vx[jx])/h2, cg)
					dv.Dxy = clamp((g.Vx[iy]-g.Vx[jy])/h2, cg)
					dv.Dxz = clamp((g.Vx[iz]-g.Vx[jz])/h2, cg)
					dv.Dyx = clamp((g.Vy[ix]-g.Vy[jx])/h2, cg)
					dv.Dyy = clamp((g.Vy[iy]-g.Vy[jy])/h2, cg)
					dv.Dyz = clamp((g.Vy[iz]-g.Vy[jz])/h2, cg)
					dv.Dzx = clamp((g.Vz[ix]-g.Vz[jx])/h2, cg)
					dv.Dzy = clamp((g.Vz[iy]-g.Vz[jy])/h2, cg)
					dv.Dzz = clamp((g.Vz[iz]-g.Vz[jz])/h2, cg)

					// current stress and damage
					σ.Sxx, σ.Syy, σ.Szz = g.Sxx[idx], g.Syy[idx], g.Szz[idx]
					σ.Sxy, σ.Syz, σ.Szx = g.Sxy[idx], g.Syz[idx], g.Szx[idx]
					dmg := g.Dmg[idx]

					// elastic predictor
					if o.Par.Elastic {
						o.elastic.Increment(&σ, &dv, dmg, dt)
					}

					// plastic corrector
					if o.plastic != nil {
						o.plastic.Correct(&σ)
					}

					// brittle corrector
					if o.brittle != nil {
						newDmg := o.brittle.Correct(&σ, dmg)
						if newDmg != dmg {
							g.Dmg[idx] = newDmg
						}
					}

					// commit
					g.Sxx[idx], g.Syy[idx], g.Szz[idx] = σ.Sxx, σ.Syy, σ.Szz
					g.Sxy[idx], g.Syz[idx], g.Szx[idx] = σ.Sxy, σ.Syz, σ.Szx
				}
			}
		}
	})
}

// UpdateVelocity performs the momentum update over all interior material
// voxels: clamped one-sided (backward) differences of the stress divergence,
// density-floored acceleration, fixed fractional numerical damping, and
// displacement integration for strain sampling. Material voxels on the near
// boundary plane along the loading axis act as the fixed platen and keep
// zero velocity
func (o *Simulator) UpdateVelocity() {
	g := o.Gst
	h := g.H
	cf := o.Cte.ForceClamp
	dt := o.Dt
	keep := 1.0 - o.Cte.Damping
	ρmin := o.Cte.RhoFloor
	label := o.Par.Label
	axis := o.Par.Axis
	lo := o.lo
	nw := g.Nworkers(g.Nz - 2)
	g.ScanSlabs(1, g.Nz-1, nw, func(iw, ka, kb int) {
		for k := ka; k < kb; k++ {
			for j := 1; j < g.Ny-1; j++ {
				for i := 1; i < g.Nx-1; i++ {
					if o.Vol.GetLabel(i, j, k) != label {
						continue
					}

					// fixed support plane
					switch axis {
					case 0:
						if i == lo {
							continue
						}
					case 1:
						if j == lo {
							continue
						}
					default:
						if k == lo {
							continue
						}
					}
					idx := g.I(i, j, k)
					jx := g.I(i-1, j, k)
					jy := g.I(i, j-1, k)
					jz := g.I(i, j, k-1)

					// stress divergence (backward differences)
					fx := clamp((g.Sxx[idx]-g.Sxx[jx])/h, cf) +
						clamp((g.Sxy[idx]-g.Sxy[jy])/h, cf) +
						clamp((g.Szx[idx]-g.Szx[jz])/h, cf)
					fy := clamp((g.Sxy[idx]-g.Sxy[jx])/h, cf) +
						clamp((g.Syy[idx]-g.Syy[jy])/h, cf) +
						clamp((g.Syz[idx]-g.Syz[jz])/h, cf)
					fz := clamp((g.Szx[idx]-g.Szx[jx])/h, cf) +
						clamp((g.Syz[idx]-g.Syz[jy])/h, cf) +
						clamp((g.Szz[idx]-g.Szz[jz])/h, cf)

					// Newton's second law with floored density
					ρ := o.Vol.GetDensity(i, j, k)
					if ρ < ρmin {
						ρ = ρmin
					}

					// damped velocity update and displacement integration
					g.Vx[idx] = g.Vx[idx]*keep + fx/ρ*dt
					g.Vy[idx] = g.Vy[idx]*keep + fy/ρ*dt
					g.Vz[idx] = g.Vz[idx]*keep + fz/ρ*dt
					g.Ux[idx] += g.Vx[idx] * dt
					g.Uy[idx] += g.Vy[idx] * dt
					g.Uz[idx] += g.Vz[idx] * dt
				}
			}
		}
	})
}
