// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the simulation results container and its persistence
package out

import (
	"bytes"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// NoFailure is the sentinel increment index when no failure was detected
const NoFailure = -1

// Results holds the stress-strain history of one completed run. Strain and
// stress are index-aligned; the first entry is the seeded (0, initial axial
// pressure) sample and one entry follows per completed pressure increment.
// Immutable once the simulation ends
type Results struct {

	// history
	Strain []float64 // [nincs+1] engineering strain; compression positive
	Stress []float64 // [nincs+1] axial pressure [MPa]

	// summary
	Nincs      int     // number of increments executed
	Failed     bool    // material failure was detected
	FailureInc int     // increment of first failure detection; NoFailure if none
	PeakStress float64 // maximum axial pressure reached [MPa]
	PeakStrain float64 // strain at peak stress
}

// NewResults builds a Results structure and computes the peak values
func NewResults(strain, stress []float64, nincs int, failed bool, failureInc int) (o *Results) {
	o = &Results{
		Strain:     strain,
		Stress:     stress,
		Nincs:      nincs,
		Failed:     failed,
		FailureInc: failureInc,
	}
	if !failed {
		o.FailureInc = NoFailure
	}
	if len(stress) > 0 {
		idx := floats.MaxIdx(stress)
		o.PeakStress = stress[idx]
		o.PeakStrain = strain[idx]
	}
	return
}

// Save saves the results to dirout/fnkey.res using the given encoder type
// ("gob" or "json"), creating the output directory if absent
func (o *Results) Save(dirout, fnkey, enctype string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot save results to %q: %v", dirout, r)
		}
	}()
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode results: %v", err)
	}
	io.WriteFileD(dirout, resfn(fnkey, enctype), &buf)
	return
}

// ReadResults reads results back from dirout/fnkey.res
func ReadResults(dirout, fnkey, enctype string) (o *Results, err error) {
	fn := respath(dirout, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open results file %q: %v", fn, err)
	}
	defer fil.Close()
	o = new(Results)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode results from %q: %v", fn, err)
	}
	return
}

// Report prints a summary table of the run
func (o *Results) Report() {
	io.Pf("\nincrements  = %d\n", o.Nincs)
	io.Pf("peak stress = %g MPa at strain = %g\n", o.PeakStress, o.PeakStrain)
	if o.Failed {
		io.PfRed("failure detected at increment %d\n", o.FailureInc)
	} else {
		io.PfGreen("no failure detected\n")
	}
	io.Pf("\n%14s%14s\n", "strain", "stress [MPa]")
	for i := range o.Strain {
		io.Pf("%14.6e%14.6e\n", o.Strain[i], o.Stress[i])
	}
}

// resfn assembles the results file name
func resfn(fnkey, enctype string) string {
	return io.Sf("%s_res.%s", fnkey, enctype)
}

// respath assembles the results file path
func respath(dirout, fnkey, enctype string) string {
	return path.Join(dirout, resfn(fnkey, enctype))
}
