// consume.go - value consumption under arity constraints (spec §4.5).
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"regexp"

	"github.com/aclaf/flagrant/pkg/resolver"
	"github.com/aclaf/flagrant/pkg/spec"
)

// negativeNumberPattern matches spec §4.4 rule 5 / §3's
// allow_negative_numbers grammar: an optional leading '-', one or more
// digits, an optional fractional part.
var negativeNumberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

func isNegativeNumber(tok string) bool {
	return negativeNumberPattern.MatchString(tok)
}

// looksLikeOption reports whether tok would be classified as an option
// token (long, short, or cluster) rather than a positional, ignoring the
// negative-number carve-out (the caller applies that separately).
func looksLikeOption(tok string) bool {
	return len(tok) >= 2 && tok[0] == '-'
}

// consumeValues implements spec §4.5: given an option starting right
// after its own token, collect subsequent tokens from queue until the
// arity's max is reached, a stopping token is seen, or input ends. greedy
// overrides every stopping condition except "--" and end-of-input.
// positionalsExist reports whether the current command level declares
// any positional spec at all; it gates the negative-number carve-out in
// isStoppingToken the same way the top-level classifier gates it.
func consumeValues(queue *deque[tokenPos], arity spec.Arity, greedy bool, cfg *spec.ParserConfiguration, subResolver *resolver.SubcommandResolver, positionalsExist bool) []tokenPos {
	var collected []tokenPos
	for {
		if !greedy && arity.Bounded() && len(collected) >= arity.Max {
			break
		}
		tok, ok := queue.Front()
		if !ok {
			break
		}
		if tok.text == "--" {
			break
		}
		if !greedy {
			if isStoppingToken(tok.text, cfg, subResolver, positionalsExist) {
				break
			}
		}
		queue.PopFront()
		collected = append(collected, tok)
	}
	return collected
}

// isStoppingToken reports whether tok would halt non-greedy value
// consumption: it looks like an option (and isn't a negative number under
// allow_negative_numbers, provided the current command level defines at
// least one positional spec), or it uniquely resolves as a subcommand
// name at the current level.
func isStoppingToken(tok string, cfg *spec.ParserConfiguration, subResolver *resolver.SubcommandResolver, positionalsExist bool) bool {
	if looksLikeOption(tok) {
		if cfg.AllowNegativeNumbers && positionalsExist && isNegativeNumber(tok) {
			return false
		}
		return true
	}
	if subResolver != nil {
		if res := subResolver.Resolve(tok); res.Outcome == resolver.Unique {
			return true
		}
	}
	return false
}

func texts(tokens []tokenPos) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.text
	}
	return out
}
