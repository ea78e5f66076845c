// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gotenx is the simulation CLI described in §6: `gotenx run` loads
// a JSON configuration and drives a simulation to completion, `gotenx
// validate` runs the pre-run checks in internal/validate without
// simulating anything.
package main

func main() {
	Execute()
}
