// trace.go - discard-by-default parse tracing.
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import "io"

// traceWriter receives a line-oriented trace of the classifier's
// left-to-right scan. It is package-level and discards by default;
// replacing it (for example with a buffer) captures that narrative.
var traceWriter io.Writer = io.Discard
