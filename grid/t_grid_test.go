// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_volume01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("volume01. dense volume queries")

	vol := NewDenseVolume(4, 3, 2)
	chk.IntAssert(vol.GetLabel(0, 0, 0), NoMaterial)
	chk.Float64(tst, "empty density", 1e-15, vol.GetDensity(0, 0, 0), 0)

	vol.Set(1, 2, 1, 7, 2650.0)
	chk.IntAssert(vol.GetLabel(1, 2, 1), 7)
	chk.Float64(tst, "density", 1e-15, vol.GetDensity(1, 2, 1), 2650.0)

	// out-of-range queries return the sentinels, never panic
	chk.IntAssert(vol.GetLabel(-1, 0, 0), NoMaterial)
	chk.IntAssert(vol.GetLabel(4, 0, 0), NoMaterial)
	chk.IntAssert(vol.GetLabel(0, 3, 0), NoMaterial)
	chk.IntAssert(vol.GetLabel(0, 0, 2), NoMaterial)
	chk.Float64(tst, "oob density", 1e-15, vol.GetDensity(0, 0, -1), 0)
}

func Test_volume02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("volume02. sample cube with skin")

	n, pad, label := 3, 1, 1
	vol := NewSampleCube(n, pad, label, 2500.0)
	nx, ny, nz := vol.Dims()
	chk.IntAssert(nx, 5)
	chk.IntAssert(ny, 5)
	chk.IntAssert(nz, 5)

	// the skin is empty, the core is material
	chk.IntAssert(vol.GetLabel(0, 2, 2), NoMaterial)
	chk.IntAssert(vol.GetLabel(4, 2, 2), NoMaterial)
	chk.IntAssert(vol.GetLabel(1, 1, 1), label)
	chk.IntAssert(vol.GetLabel(3, 3, 3), label)

	gst := NewState(nx, ny, nz, 0.001)
	defer gst.Clean()
	chk.IntAssert(gst.CountMaterial(vol, label), n*n*n)
	for axis := 0; axis < 3; axis++ {
		lo, hi := gst.Extent(vol, label, axis)
		chk.IntAssert(lo, pad)
		chk.IntAssert(hi, pad+n-1)
	}

	// missing label
	lo, hi := gst.Extent(vol, 99, 2)
	chk.IntAssert(lo, -1)
	chk.IntAssert(hi, -1)
}

func Test_volume03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("volume03. volume file round trip")

	// the directory does not exist yet; Save must create it
	vol := NewSampleBox(4, 3, 5, 1, 2, 2650.0)
	fn := filepath.Join(tst.TempDir(), "volumes", "sample.vol")
	if err := vol.Save(fn); err != nil {
		tst.Errorf("cannot save volume: %v\n", err)
		return
	}
	got, err := ReadVolume(fn)
	if err != nil {
		tst.Errorf("cannot read volume: %v\n", err)
		return
	}
	chk.IntAssert(got.Nx, 4)
	chk.IntAssert(got.Ny, 3)
	chk.IntAssert(got.Nz, 5)
	chk.Ints(tst, "labels", got.Labels, vol.Labels)
	chk.Array(tst, "densities", 1e-15, got.Dens, vol.Dens)

	// inconsistent file: array lengths must match the dimensions
	bad := filepath.Join(tst.TempDir(), "bad.vol")
	err = os.WriteFile(bad, []byte(`{"nx":2,"ny":2,"nz":2,"labels":[1],"dens":[2500]}`), 0644)
	if err != nil {
		tst.Errorf("cannot write test file: %v\n", err)
		return
	}
	if _, err = ReadVolume(bad); err == nil {
		tst.Errorf("inconsistent volume file was accepted\n")
	}
	if _, err = ReadVolume(filepath.Join(tst.TempDir(), "missing.vol")); err == nil {
		tst.Errorf("missing volume file was accepted\n")
	}
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. initialization seeds confinement")

	vol := NewSampleCube(2, 1, 1, 2500.0)
	gst := NewState(4, 4, 4, 0.001)
	defer gst.Clean()

	// dirty the arrays first: Initialize must be idempotent
	for i := range gst.Vx {
		gst.Vx[i] = 1.0
		gst.Szz[i] = 1.0
		gst.Dmg[i] = 0.5
		gst.Ux[i] = 1.0
	}
	σc := 2e6
	gst.Initialize(vol, 1, σc)

	for k := 0; k < 4; k++ {
		for j := 0; j < 4; j++ {
			for i := 0; i < 4; i++ {
				idx := gst.I(i, j, k)
				if gst.Vx[idx] != 0 || gst.Dmg[idx] != 0 || gst.Ux[idx] != 0 {
					tst.Errorf("dynamic field not zeroed at (%d,%d,%d)\n", i, j, k)
					return
				}
				want := 0.0
				if vol.GetLabel(i, j, k) == 1 {
					want = -σc
				}
				if gst.Sxx[idx] != want || gst.Syy[idx] != want || gst.Szz[idx] != want {
					tst.Errorf("normal stress wrong at (%d,%d,%d)\n", i, j, k)
					return
				}
			}
		}
	}
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. parallel minimum density")

	vol := NewSampleCube(6, 1, 1, 2500.0)
	vol.Set(3, 3, 3, 1, 1800.0)
	vol.Set(4, 4, 4, 1, 0.0) // zero density must be skipped

	gst := NewState(8, 8, 8, 0.001)
	defer gst.Clean()
	chk.Float64(tst, "min density", 1e-15, gst.MinDensity(vol, 1), 1800.0)

	// no material at all
	empty := NewDenseVolume(8, 8, 8)
	chk.Float64(tst, "empty min density", 1e-15, gst.MinDensity(empty, 1), 0)
}

func Test_state03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state03. slab partitioning covers the range once")

	gst := NewState(4, 4, 16, 0.001)
	defer gst.Clean()

	// per-worker writes go to disjoint slabs; no lock needed
	hits := make([]int, 16)
	gst.ScanSlabs(1, 15, 4, func(iw, ka, kb int) {
		for k := ka; k < kb; k++ {
			hits[k]++
		}
	})
	for k := 0; k < 16; k++ {
		want := 1
		if k < 1 || k >= 15 {
			want = 0
		}
		if hits[k] != want {
			tst.Errorf("slab %d visited %d times\n", k, hits[k])
		}
	}

	// empty and degenerate ranges are no-ops
	gst.ScanSlabs(5, 5, 4, func(iw, ka, kb int) { tst.Errorf("empty range visited\n") })
	gst.ScanSlabs(7, 3, 4, func(iw, ka, kb int) { tst.Errorf("inverted range visited\n") })
}
