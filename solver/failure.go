// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

// CheckFailure aggregates the per-voxel damage into a global failure
// determination: failure holds if the fraction of voxels above the damage
// threshold exceeds the configured ratio, or if the maximum damage anywhere
// exceeds the near-unity bound. Pure; no state is modified. The scan runs in
// parallel with per-worker partial counts merged once
func (o *Simulator) CheckFailure() bool {
	g := o.Gst
	label := o.Par.Label
	thr := o.Cte.FailDmg
	nw := g.Nworkers(g.Nz)
	counts := make([]int, nw)
	maxima := make([]float64, nw)
	g.ScanSlabs(0, g.Nz, nw, func(iw, ka, kb int) {
		n := 0
		max := 0.0
		for k := ka; k < kb; k++ {
			for j := 0; j < g.Ny; j++ {
				for i := 0; i < g.Nx; i++ {
					if o.Vol.GetLabel(i, j, k) != label {
						continue
					}
					d := g.Dmg[g.I(i, j, k)]
					if d > thr {
						n++
					}
					if d > max {
						max = d
					}
				}
			}
		}
		counts[iw] = n
		maxima[iw] = max
	})
	nfail := 0
	maxDmg := 0.0
	for iw := 0; iw < nw; iw++ {
		nfail += counts[iw]
		if maxima[iw] > maxDmg {
			maxDmg = maxima[iw]
		}
	}
	if o.nmat > 0 && float64(nfail)/float64(o.nmat) > o.Cte.FailRatio {
		return true
	}
	return maxDmg > o.Cte.FailDmax
}
