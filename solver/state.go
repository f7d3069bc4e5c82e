// Copyright 2016 The CTS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

// RunState represents the state machine of one simulation run:
//
//	Idle → Running ⇄ Paused
//	       Running → Completed
//	       any non-terminal → Cancelled
//
// Failure detection forces Paused; Completed and Cancelled are terminal
type RunState int32

const (
	Idle RunState = iota
	Running
	Paused
	Completed
	Cancelled
)

// String returns the name of the state
func (o RunState) String() string {
	switch o {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal tells whether the state admits no further transitions
func (o RunState) Terminal() bool { return o == Completed || o == Cancelled }
