// argfile.go - argument-file preprocessor (spec §4.3).
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package argfile implements flagrant's @file preprocessor: given the raw
token sequence and the configured prefix, it produces an expanded
sequence in which each "@PATH" token is replaced in place by the
referenced file's lines.

It produces a new token slice from an old one rather than mutating argv
in place, and tracks recursion depth explicitly so a cycle of files that
reference each other fails with a bounded error instead of looping
forever.
*/
package argfile

import (
	"os"
	"strings"

	"github.com/aclaf/flagrant/pkg/ferrors"
)

// Expand expands every "@PATH" token in argv, recursively, honoring the
// "--" end-of-preprocessing rule and the "@@" escape, and stopping with
// [ferrors.ArgFileCycle] past cycleLimit levels of recursion.
//
// path and originalArgs are only used to populate the [ferrors.ParseError]
// fields of any error raised; they do not affect expansion.
func Expand(argv []string, prefix string, cycleLimit int, path, originalArgs []string) ([]string, error) {
	return scanSequence(argv, prefix, cycleLimit, 0, path, originalArgs, indexOffsets(argv))
}

// indexOffsets returns, for the top-level token sequence, the position of
// each token within itself (identity mapping). Nested (file-derived)
// sequences reuse the origin index of the token that dereferenced them,
// so that errors raised deep inside an expansion still point back at the
// @file token the user actually typed.
func indexOffsets(argv []string) []int {
	offsets := make([]int, len(argv))
	for i := range argv {
		offsets[i] = i
	}
	return offsets
}

func scanSequence(tokens []string, prefix string, limit, depth int, path, originalArgs []string, positions []int) ([]string, error) {
	var out []string
	afterEnd := false
	escape := prefix + prefix

	for i, tok := range tokens {
		pos := i
		if i < len(positions) {
			pos = positions[i]
		}

		switch {
		case afterEnd:
			out = append(out, tok)

		case tok == "--":
			afterEnd = true
			out = append(out, tok)

		case strings.HasPrefix(tok, escape):
			out = append(out, prefix+tok[len(escape):])

		case strings.HasPrefix(tok, prefix) && len(tok) > len(prefix):
			if depth >= limit {
				return nil, ferrors.NewArgFileCycle(path, originalArgs, pos, tok, limit)
			}
			filePath := tok[len(prefix):]
			lines, err := readLines(filePath)
			if err != nil {
				if os.IsNotExist(err) {
					return nil, ferrors.NewArgFileNotFound(path, originalArgs, pos, tok)
				}
				return nil, ferrors.NewArgFileReadError(path, originalArgs, pos, tok, err)
			}
			nestedPositions := make([]int, len(lines))
			for j := range nestedPositions {
				nestedPositions[j] = pos
			}
			expanded, err := scanSequence(lines, prefix, limit, depth+1, path, originalArgs, nestedPositions)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)

		default:
			out = append(out, tok)
		}
	}
	return out, nil
}

// readLines reads filePath and returns one token per non-empty,
// non-comment line, trailing newline stripped, internal whitespace
// preserved.
func readLines(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	rawLines := strings.Split(text, "\n")
	var tokens []string
	for _, line := range rawLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tokens = append(tokens, line)
	}
	return tokens, nil
}
