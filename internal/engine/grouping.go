// grouping.go - positional distribution across positional specs (spec §4.7).
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/aclaf/flagrant/pkg/ferrors"
	"github.com/aclaf/flagrant/pkg/spec"
)

// groupPositionals distributes queue across specs per spec §4.7's
// reservation arithmetic: each positional takes as many leading tokens
// as it can while leaving enough for every later positional's minimum.
// When specs is empty, an implicit "args" positional of arity (0,
// unbounded) absorbs the entire queue.
func groupPositionals(path, args []string, specs []*spec.PositionalSpecification, queue []tokenPos) (map[string][]string, error) {
	if len(specs) == 0 {
		return map[string][]string{"args": texts(queue)}, nil
	}

	result := make(map[string][]string, len(specs))
	remaining := len(queue)
	offset := 0

	for i, p := range specs {
		if p.Greedy {
			take := remaining
			result[p.CanonicalName] = texts(queue[offset : offset+take])
			offset += take
			remaining -= take
			continue
		}

		reserved := 0
		for j := i + 1; j < len(specs); j++ {
			reserved += specs[j].Arity.Min
		}
		available := remaining - reserved
		if available < 0 {
			available = 0
		}

		take := available
		if p.Arity.Bounded() && take > p.Arity.Max {
			take = p.Arity.Max
		}
		if take < p.Arity.Min {
			take = p.Arity.Min
			if take > available {
				take = available
			}
		}

		if take < p.Arity.Min {
			received := queue[offset : offset+take]
			position := positionOf(received, args)
			return nil, ferrors.NewPositionalMissingValue(path, args, position, p.CanonicalName,
				ferrors.ArityRange{Min: p.Arity.Min, Max: p.Arity.Max}, texts(received))
		}

		result[p.CanonicalName] = texts(queue[offset : offset+take])
		offset += take
		remaining -= take
	}

	if remaining > 0 {
		surplus := queue[offset:]
		last := specs[len(specs)-1]
		return nil, ferrors.NewPositionalUnexpectedValue(path, args, positionOf(surplus, args), last.CanonicalName, texts(surplus))
	}

	return result, nil
}

// positionOf picks a sensible error position: the first token's own
// position when the slice is non-empty, otherwise one past the end of
// args.
func positionOf(received []tokenPos, args []string) int {
	if len(received) > 0 {
		return received[0].pos
	}
	return len(args)
}
