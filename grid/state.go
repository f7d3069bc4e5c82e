// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"runtime"
	"sync"
)

// State holds the dense per-voxel field arrays of the simulation: velocity,
// the six independent components of the symmetric stress tensor, scalar
// damage and accumulated displacement. Each field is an independent flat
// allocation indexed by I(i,j,k) so that parallel scans never alias.
// The arrays are allocated once and never reallocated during a run
type State struct {

	// shape
	Nx, Ny, Nz int     // grid dimensions
	H          float64 // voxel edge length [m]

	// velocity [m/s]
	Vx, Vy, Vz []float64

	// stress [Pa]; negative means compression
	Sxx, Syy, Szz []float64
	Sxy, Syz, Szx []float64

	// damage ∈ [0, dmgmax]
	Dmg []float64

	// accumulated displacement [m]; used for strain sampling only
	Ux, Uy, Uz []float64
}

// NewState allocates all field arrays
func NewState(nx, ny, nz int, h float64) (o *State) {
	o = &State{Nx: nx, Ny: ny, Nz: nz, H: h}
	n := nx * ny * nz
	o.Vx, o.Vy, o.Vz = make([]float64, n), make([]float64, n), make([]float64, n)
	o.Sxx, o.Syy, o.Szz = make([]float64, n), make([]float64, n), make([]float64, n)
	o.Sxy, o.Syz, o.Szx = make([]float64, n), make([]float64, n), make([]float64, n)
	o.Dmg = make([]float64, n)
	o.Ux, o.Uy, o.Uz = make([]float64, n), make([]float64, n), make([]float64, n)
	return
}

// I computes the flat index of voxel (i,j,k)
func (o *State) I(i, j, k int) int { return (k*o.Ny+j)*o.Nx + i }

// Initialize zeroes the dynamic fields and seeds the hydrostatic stress state:
// material voxels get the three normal components set to -σc (compression is
// negative). Idempotent; must be called once before the loading loop
func (o *State) Initialize(vol Volume, label int, σc float64) {
	n := o.Nx * o.Ny * o.Nz
	for i := 0; i < n; i++ {
		o.Vx[i], o.Vy[i], o.Vz[i] = 0, 0, 0
		o.Sxx[i], o.Syy[i], o.Szz[i] = 0, 0, 0
		o.Sxy[i], o.Syz[i], o.Szx[i] = 0, 0, 0
		o.Dmg[i] = 0
		o.Ux[i], o.Uy[i], o.Uz[i] = 0, 0, 0
	}
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				if vol.GetLabel(i, j, k) == label {
					idx := o.I(i, j, k)
					o.Sxx[idx] = -σc
					o.Syy[idx] = -σc
					o.Szz[idx] = -σc
				}
			}
		}
	}
}

// Clean releases the field arrays
func (o *State) Clean() {
	o.Vx, o.Vy, o.Vz = nil, nil, nil
	o.Sxx, o.Syy, o.Szz = nil, nil, nil
	o.Sxy, o.Syz, o.Szx = nil, nil, nil
	o.Dmg = nil
	o.Ux, o.Uy, o.Uz = nil, nil, nil
}

// Extent scans for the minimum and maximum grid coordinate along the given
// axis containing the selected material. Returns lo = hi = -1 if the label
// does not occur
func (o *State) Extent(vol Volume, label, axis int) (lo, hi int) {
	lo, hi = -1, -1
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				if vol.GetLabel(i, j, k) != label {
					continue
				}
				var c int
				switch axis {
				case 0:
					c = i
				case 1:
					c = j
				default:
					c = k
				}
				if lo < 0 || c < lo {
					lo = c
				}
				if c > hi {
					hi = c
				}
			}
		}
	}
	return
}

// CountMaterial returns the number of voxels carrying the selected label
func (o *State) CountMaterial(vol Volume, label int) (n int) {
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				if vol.GetLabel(i, j, k) == label {
					n++
				}
			}
		}
	}
	return
}

// MinDensity scans all material voxels for the minimum positive density.
// The scan runs in parallel with one partial minimum per worker, merged once
// at the end. Returns zero if no material voxel with positive density exists
func (o *State) MinDensity(vol Volume, label int) (ρmin float64) {
	nw := o.Nworkers(o.Nz)
	partial := make([]float64, nw)
	o.ScanSlabs(0, o.Nz, nw, func(iw, ka, kb int) {
		min := 0.0
		for k := ka; k < kb; k++ {
			for j := 0; j < o.Ny; j++ {
				for i := 0; i < o.Nx; i++ {
					if vol.GetLabel(i, j, k) != label {
						continue
					}
					ρ := vol.GetDensity(i, j, k)
					if ρ > 0 && (min == 0 || ρ < min) {
						min = ρ
					}
				}
			}
		}
		partial[iw] = min
	})
	for _, min := range partial {
		if min > 0 && (ρmin == 0 || min < ρmin) {
			ρmin = min
		}
	}
	return
}

// Nworkers returns the number of workers for a scan over nk slabs
func (o *State) Nworkers(nk int) (nw int) {
	nw = runtime.NumCPU()
	if nw > nk {
		nw = nk
	}
	if nw < 1 {
		nw = 1
	}
	return
}

// ScanSlabs partitions the slab range [k0,k1) across nw workers and runs fcn
// on each partition concurrently. fcn receives the worker index and its slab
// sub-range; it must write only to voxels within that sub-range or to
// per-worker storage
func (o *State) ScanSlabs(k0, k1, nw int, fcn func(iw, ka, kb int)) {
	if k1 <= k0 {
		return
	}
	dk := (k1 - k0 + nw - 1) / nw
	var wg sync.WaitGroup
	for iw := 0; iw < nw; iw++ {
		ka := k0 + iw*dk
		kb := ka + dk
		if kb > k1 {
			kb = k1
		}
		if ka >= kb {
			continue
		}
		wg.Add(1)
		go func(iw, ka, kb int) {
			defer wg.Done()
			fcn(iw, ka, kb)
		}(iw, ka, kb)
	}
	wg.Wait()
}
