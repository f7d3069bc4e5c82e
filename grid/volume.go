// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the voxel field arrays and the labelled-volume access
package grid

// NoMaterial is the sentinel label returned for out-of-range voxel queries
const NoMaterial = -1

// Volume answers point queries about the labelled voxel volume. Implementations
// must be bounds-checked: out-of-range label queries return NoMaterial and
// out-of-range density queries return zero, because differencing near the
// boundary may legitimately probe just past the valid range
type Volume interface {
	GetLabel(i, j, k int) int         // material label at voxel (i,j,k)
	GetDensity(i, j, k int) float64   // mass density at voxel (i,j,k) [kg/m³]
	Dims() (nx, ny, nz int)           // grid dimensions
}

// DenseVolume is an in-memory Volume backed by flat label and density arrays.
// It serves tests and the self-test mode of the command line tool
type DenseVolume struct {
	Nx     int       `json:"nx"`     // number of voxels along x
	Ny     int       `json:"ny"`     // number of voxels along y
	Nz     int       `json:"nz"`     // number of voxels along z
	Labels []int     `json:"labels"` // [Nx*Ny*Nz] material labels
	Dens   []float64 `json:"dens"`   // [Nx*Ny*Nz] densities [kg/m³]
}

// NewDenseVolume allocates an empty (all NoMaterial) volume
func NewDenseVolume(nx, ny, nz int) (o *DenseVolume) {
	o = &DenseVolume{Nx: nx, Ny: ny, Nz: nz}
	n := nx * ny * nz
	o.Labels = make([]int, n)
	o.Dens = make([]float64, n)
	for i := 0; i < n; i++ {
		o.Labels[i] = NoMaterial
	}
	return
}

// NewSampleBox allocates an nx × ny × nz volume whose interior, minus a skin
// of pad empty voxels on every side, is filled with the given label and
// density. The skin keeps the loaded boundary plane of the sample inside the
// differencing range
func NewSampleBox(nx, ny, nz, pad, label int, ρ float64) (o *DenseVolume) {
	o = NewDenseVolume(nx, ny, nz)
	for k := pad; k < nz-pad; k++ {
		for j := pad; j < ny-pad; j++ {
			for i := pad; i < nx-pad; i++ {
				o.Set(i, j, k, label, ρ)
			}
		}
	}
	return
}

// NewSampleCube allocates a volume holding an n³ sample cube inside a skin of
// pad empty voxels
func NewSampleCube(n, pad, label int, ρ float64) (o *DenseVolume) {
	N := n + 2*pad
	return NewSampleBox(N, N, N, pad, label, ρ)
}

// I computes the flat index of voxel (i,j,k)
func (o *DenseVolume) I(i, j, k int) int { return (k*o.Ny+j)*o.Nx + i }

// Set sets the label and density of one voxel
func (o *DenseVolume) Set(i, j, k, label int, ρ float64) {
	idx := o.I(i, j, k)
	o.Labels[idx] = label
	o.Dens[idx] = ρ
}

// GetLabel returns the label of voxel (i,j,k) or NoMaterial if out of range
func (o *DenseVolume) GetLabel(i, j, k int) int {
	if i < 0 || i >= o.Nx || j < 0 || j >= o.Ny || k < 0 || k >= o.Nz {
		return NoMaterial
	}
	return o.Labels[o.I(i, j, k)]
}

// GetDensity returns the density of voxel (i,j,k) or zero if out of range
func (o *DenseVolume) GetDensity(i, j, k int) float64 {
	if i < 0 || i >= o.Nx || j < 0 || j >= o.Ny || k < 0 || k >= o.Nz {
		return 0
	}
	return o.Dens[o.I(i, j, k)]
}

// Dims returns the grid dimensions
func (o *DenseVolume) Dims() (nx, ny, nz int) { return o.Nx, o.Ny, o.Nz }
