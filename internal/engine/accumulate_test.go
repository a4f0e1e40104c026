// accumulate_test.go - accumulation slot tests (spec §4.6).
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"testing"

	"github.com/aclaf/flagrant/pkg/spec"
	"github.com/google/go-cmp/cmp"
)

func TestSlotFlagLastWins(t *testing.T) {
	opt := spec.NewFlag("verbose", []string{"verbose"}, nil)
	s := newSlot(opt)

	s.recordFlag(false)
	s.recordFlag(true)

	got := s.finalize(false)
	want := spec.OptionValue{Kind: spec.FlagNegated}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestSlotFlagCount(t *testing.T) {
	opt := spec.NewFlag("verbose", []string{"verbose"}, nil)
	opt.Accumulation = spec.Count
	s := newSlot(opt)

	for i := 0; i < 3; i++ {
		s.recordFlag(false)
	}

	got := s.finalize(false)
	want := spec.OptionValue{Kind: spec.FlagCount, Count: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestSlotFlagErrorModeRejectsRepeat(t *testing.T) {
	opt := spec.NewFlag("verbose", []string{"verbose"}, nil)
	opt.Accumulation = spec.Error
	s := newSlot(opt)

	if repeated := s.recordFlag(false); repeated {
		t.Fatal("first occurrence must not be reported repeated")
	}
	if repeated := s.recordFlag(false); !repeated {
		t.Fatal("second occurrence under Error mode must be reported repeated")
	}
}

func TestSlotNonRepeatableCollapsesToError(t *testing.T) {
	opt := spec.NewFlag("verbose", []string{"verbose"}, nil)
	opt.Accumulation = spec.Last // would otherwise tolerate repeats
	opt.Repeatable = false
	s := newSlot(opt)

	s.recordFlag(false)
	if repeated := s.recordFlag(false); !repeated {
		t.Fatal("Repeatable=false must force Error semantics regardless of Accumulation")
	}
}

func TestSlotValueAppendNested(t *testing.T) {
	opt := spec.NewValue("tag", []string{"tag"}, nil, spec.ONE_OR_MORE)
	opt.Accumulation = spec.Append
	s := newSlot(opt)

	s.recordValue([]string{"a", "b"})
	s.recordValue([]string{"c"})

	got := s.finalize(false)
	want := spec.OptionValue{Kind: spec.NestedSequence, Groups: [][]string{{"a", "b"}, {"c"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestSlotValueAppendFlattened(t *testing.T) {
	opt := spec.NewValue("tag", []string{"tag"}, nil, spec.ONE_OR_MORE)
	opt.Accumulation = spec.Append
	s := newSlot(opt)

	s.recordValue([]string{"a", "b"})
	s.recordValue([]string{"c"})

	got := s.finalize(true)
	want := spec.OptionValue{Kind: spec.Sequence, Texts: []string{"a", "b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestSlotValueExtend(t *testing.T) {
	opt := spec.NewValue("tag", []string{"tag"}, nil, spec.ONE_OR_MORE)
	opt.Accumulation = spec.Extend
	s := newSlot(opt)

	s.recordValue([]string{"a", "b"})
	s.recordValue([]string{"c"})

	got := s.finalize(false)
	want := spec.OptionValue{Kind: spec.Sequence, Texts: []string{"a", "b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestSlotValueSingleWhenArityMaxOne(t *testing.T) {
	opt := spec.NewValue("output", []string{"output"}, nil, spec.EXACTLY_ONE)
	s := newSlot(opt)

	s.recordValue([]string{"out.bin"})

	got := s.finalize(false)
	want := spec.OptionValue{Kind: spec.Single, Text: "out.bin"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestSlotValueFirstKeepsEarliest(t *testing.T) {
	opt := spec.NewValue("output", []string{"output"}, nil, spec.EXACTLY_ONE)
	opt.Accumulation = spec.First
	s := newSlot(opt)

	s.recordValue([]string{"first.bin"})
	s.recordValue([]string{"second.bin"})

	got := s.finalize(false)
	want := spec.OptionValue{Kind: spec.Single, Text: "first.bin"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestSlotDictMerge(t *testing.T) {
	opt := spec.NewDict("meta", []string{"meta"}, nil, spec.ONE_OR_MORE)
	s := newSlot(opt)

	a, b := "1", "2"
	s.recordDict(&spec.DictNode{Children: map[string]*spec.DictNode{"a": {Leaf: &a}}})
	s.recordDict(&spec.DictNode{Children: map[string]*spec.DictNode{"b": {Leaf: &b}}})

	got := s.finalize(false)
	if got.Kind != spec.Tree {
		t.Fatalf("Kind = %v, want Tree", got.Kind)
	}
	if len(got.Tree.Children) != 2 {
		t.Fatalf("expected both keys merged, got %+v", got.Tree)
	}
}
