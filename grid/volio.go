// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadVolume reads a DenseVolume from a (.vol) JSON file and checks the
// array lengths against the declared dimensions
func ReadVolume(fnamepath string) (o *DenseVolume, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("cannot read volume file %q: %v", fnamepath, r)
		}
	}()
	b := io.ReadFile(fnamepath)
	o = new(DenseVolume)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse volume file %q: %v", fnamepath, err)
	}
	n := o.Nx * o.Ny * o.Nz
	if n < 1 {
		return nil, chk.Err("volume file %q has invalid dimensions %d x %d x %d", fnamepath, o.Nx, o.Ny, o.Nz)
	}
	if len(o.Labels) != n || len(o.Dens) != n {
		return nil, chk.Err("volume file %q has %d labels and %d densities; want %d of each", fnamepath, len(o.Labels), len(o.Dens), n)
	}
	return
}

// Save saves the volume to a (.vol) JSON file, creating the directory if
// absent
func (o *DenseVolume) Save(fnamepath string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot save volume to %q: %v", fnamepath, r)
		}
	}()
	b, err := json.Marshal(o)
	if err != nil {
		return chk.Err("cannot encode volume: %v", err)
	}
	io.WriteFileD(filepath.Dir(fnamepath), filepath.Base(fnamepath), bytes.NewBuffer(b))
	return
}
