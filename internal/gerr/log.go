// Copyright 2026 The Gotenx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gerr

import (
	"github.com/sirupsen/logrus"
)

// Log is the package-level structured logger used by the orchestrator and
// the composite source/transport models to report recoverable conditions
// (conservation drift, physics-model recovery, Newton retries) without
// aborting the run. Embedding applications may replace it wholesale.
var Log = logrus.New()

// WithStep returns a logger entry tagged with the current step number, the
// orchestrator's usual call site.
func WithStep(step int) *logrus.Entry {
	return Log.WithField("step", step)
}
