// consume_test.go - value consumption unit tests (spec §4.5).
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"testing"

	"github.com/aclaf/flagrant/pkg/spec"
)

func TestIsNegativeNumber(t *testing.T) {
	cases := map[string]bool{
		"-5":     true,
		"-5.25":  true,
		"5":      true, // the leading '-' is optional
		"-abc":   false,
		"--long": false,
		"-":      false,
	}
	for in, want := range cases {
		if got := isNegativeNumber(in); got != want {
			t.Errorf("isNegativeNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsumeValuesStopsAtArityMax(t *testing.T) {
	q := newDeque(tp("a", "b", "c"))
	got := consumeValues(q, spec.Arity{Min: 0, Max: 2}, false, &spec.ParserConfiguration{}, nil, false)
	if len(got) != 2 {
		t.Fatalf("got %d values, want 2", len(got))
	}
	if q.Len() != 1 {
		t.Fatalf("expected 1 token left in queue, got %d", q.Len())
	}
}

func TestConsumeValuesStopsAtOptionLookingToken(t *testing.T) {
	q := newDeque(tp("a", "--flag"))
	got := consumeValues(q, spec.ONE_OR_MORE, false, &spec.ParserConfiguration{}, nil, false)
	if len(got) != 1 || got[0].text != "a" {
		t.Fatalf("got %v, want just [a]", got)
	}
}

func TestConsumeValuesGreedyIgnoresOptionLookingTokens(t *testing.T) {
	q := newDeque(tp("a", "--flag", "b"))
	got := consumeValues(q, spec.ONE_OR_MORE, true, &spec.ParserConfiguration{}, nil, false)
	if len(got) != 3 {
		t.Fatalf("got %d values, want all 3 under greedy", len(got))
	}
}

func TestConsumeValuesStopsAtEndOfOptionsEvenGreedy(t *testing.T) {
	q := newDeque(tp("a", "--", "b"))
	got := consumeValues(q, spec.ONE_OR_MORE, true, &spec.ParserConfiguration{}, nil, false)
	if len(got) != 1 || got[0].text != "a" {
		t.Fatalf("got %v, want greedy consumption to still stop at --", got)
	}
}

func TestConsumeValuesNegativeNumberNotStoppingWhenPositionalsExist(t *testing.T) {
	q := newDeque(tp("-5", "--flag"))
	cfg := &spec.ParserConfiguration{AllowNegativeNumbers: true}
	got := consumeValues(q, spec.ONE_OR_MORE, false, cfg, nil, true)
	if len(got) != 1 || got[0].text != "-5" {
		t.Fatalf("got %v, want [-5] consumed as a value", got)
	}
}

func TestConsumeValuesNegativeNumberStopsWhenNoPositionalsExist(t *testing.T) {
	q := newDeque(tp("-5", "--flag"))
	cfg := &spec.ParserConfiguration{AllowNegativeNumbers: true}
	got := consumeValues(q, spec.ONE_OR_MORE, false, cfg, nil, false)
	if len(got) != 0 {
		t.Fatalf("got %v, want consumption to stop immediately with no positional spec at this level", got)
	}
	if q.Len() != 2 {
		t.Fatalf("expected both tokens left in queue, got %d", q.Len())
	}
}
