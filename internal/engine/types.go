// types.go - shared scan-local types.
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

// tokenPos pairs a token with its index into the command level's Args,
// so that errors raised well after a token was queued (e.g. during
// positional grouping, long after the classifier moved past it) still
// report the position the user would expect.
type tokenPos struct {
	text string
	pos  int
}
