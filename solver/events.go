// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/mattemangia/CTS-sub009/out"

// Progress carries one progress notification. A cancelled run emits a final
// Progress with Percent = 0 and Status = "cancelled"
type Progress struct {
	Percent   float64 // completion percentage ∈ [0,100]
	Increment int     // current pressure increment index
	Status    string  // free-form status text
}

// Failure carries the material failure notification. Failure is advisory:
// the run pauses and may be resumed to observe post-failure loading
type Failure struct {
	Axial     float64 // axial pressure at detection [MPa]
	Strain    float64 // sample strain at detection
	Increment int     // increment of detection
	Nincs     int     // total number of increments
}

// Callback function types. Callbacks are invoked from the worker goroutine;
// they must not block for long and must not touch the grid arrays
type (
	ProgressFcn func(p Progress)      // progress and cancellation notifications
	FailureFcn  func(f Failure)       // first failure detection within a run
	CompleteFcn func(r *out.Results)  // normal completion with full history
)
