// grouping_test.go - positional distribution tests (spec §4.7).
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"errors"
	"testing"

	"github.com/aclaf/flagrant/pkg/ferrors"
	"github.com/aclaf/flagrant/pkg/spec"
	"github.com/google/go-cmp/cmp"
)

func tp(texts ...string) []tokenPos {
	out := make([]tokenPos, len(texts))
	for i, s := range texts {
		out[i] = tokenPos{text: s, pos: i}
	}
	return out
}

func TestGroupPositionalsImplicitArgs(t *testing.T) {
	got, err := groupPositionals(nil, nil, nil, tp("a", "b", "c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string][]string{"args": {"a", "b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestGroupPositionalsReservationArithmetic(t *testing.T) {
	// sources: (1, unbounded); destination: (1, 1); input a,b,c,d.
	specs := []*spec.PositionalSpecification{
		spec.NewPositional("sources", spec.ONE_OR_MORE),
		spec.NewPositional("destination", spec.EXACTLY_ONE),
	}
	got, err := groupPositionals(nil, []string{"a", "b", "c", "d"}, specs, tp("a", "b", "c", "d"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string][]string{
		"sources":     {"a", "b", "c"},
		"destination": {"d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestGroupPositionalsGreedyClaimsEverythingLeavingLaterSpecStarved(t *testing.T) {
	// A greedy positional overrides the normal reservation arithmetic and
	// claims the whole remaining queue, even at the cost of starving a
	// later positional's minimum.
	specs := []*spec.PositionalSpecification{
		{CanonicalName: "sources", Arity: spec.ONE_OR_MORE, Greedy: true},
		spec.NewPositional("destination", spec.EXACTLY_ONE),
	}
	_, err := groupPositionals([]string{"cp"}, []string{"a", "b", "c"}, specs, tp("a", "b", "c"))
	if err == nil {
		t.Fatal("expected destination to fail its minimum once sources greedily took everything")
	}
	var pme ferrors.PositionalMissingValue
	if !errors.As(err, &pme) {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestGroupPositionalsGreedyLastSpecTakesAll(t *testing.T) {
	specs := []*spec.PositionalSpecification{
		spec.NewPositional("first", spec.EXACTLY_ONE),
		{CanonicalName: "rest", Arity: spec.ZERO_OR_MORE, Greedy: true},
	}
	got, err := groupPositionals(nil, []string{"a", "b", "c"}, specs, tp("a", "b", "c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string][]string{"first": {"a"}, "rest": {"b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestGroupPositionalsMissingRequired(t *testing.T) {
	specs := []*spec.PositionalSpecification{
		spec.NewPositional("name", spec.EXACTLY_ONE),
	}
	_, err := groupPositionals([]string{"dig"}, nil, specs, nil)
	if err == nil {
		t.Fatal("expected PositionalMissingValue")
	}
	var pme ferrors.PositionalMissingValue
	if !errors.As(err, &pme) {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestGroupPositionalsSurplusValues(t *testing.T) {
	specs := []*spec.PositionalSpecification{
		spec.NewPositional("name", spec.EXACTLY_ONE),
	}
	_, err := groupPositionals([]string{"dig"}, []string{"a", "b"}, specs, tp("a", "b"))
	if err == nil {
		t.Fatal("expected PositionalUnexpectedValue")
	}
	var pue ferrors.PositionalUnexpectedValue
	if !errors.As(err, &pue) {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestGroupPositionalsExactFitAcrossMultipleSpecs(t *testing.T) {
	specs := []*spec.PositionalSpecification{
		spec.NewPositional("src", spec.ONE_OR_MORE),
		spec.NewPositional("dst", spec.EXACTLY_ONE),
	}
	got, err := groupPositionals(nil, []string{"only", "out"}, specs, tp("only", "out"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string][]string{"src": {"only"}, "dst": {"out"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}
