// accumulate.go - per-option accumulation across repeated occurrences.
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"github.com/aclaf/flagrant/pkg/dictparse"
	"github.com/aclaf/flagrant/pkg/spec"
)

// slot accumulates every occurrence of one option across a single
// command-level scan, then is finalized into the [spec.OptionValue]
// recorded in that level's [spec.ParseResult]. Kept data-only and
// error-free so the classifier decides, with full path/args/position
// context, how to report a repeated non-repeatable option.
type slot struct {
	opt         *spec.OptionSpecification
	occurrences int

	// Flag state.
	negated bool
	count   int

	// Value state.
	firstValues []string
	lastValues  []string
	sequence    []string
	groups      [][]string

	// Dict state.
	firstTree  *spec.DictNode
	lastTree   *spec.DictNode
	mergedTree *spec.DictNode
}

func newSlot(opt *spec.OptionSpecification) *slot {
	return &slot{opt: opt}
}

// effectiveMode returns the option's accumulation mode, collapsed to
// [spec.Error] when the option was declared non-repeatable (spec §4.6).
func effectiveMode(opt *spec.OptionSpecification) spec.AccumulationMode {
	if !opt.Repeatable {
		return spec.Error
	}
	return opt.Accumulation
}

// recordFlag applies one flag occurrence. repeated is true when the
// option's effective mode is [spec.Error] and this is not the first
// occurrence; the caller must raise [ferrors.OptionNotRepeatable] and
// stop, rather than trust any other field of s.
func (s *slot) recordFlag(negated bool) (repeated bool) {
	mode := effectiveMode(s.opt)
	if mode == spec.Error && s.occurrences > 0 {
		return true
	}
	switch mode {
	case spec.First:
		if s.occurrences == 0 {
			s.negated = negated
		}
	case spec.Count:
		s.count++
		s.negated = negated
	default: // Last, Error (first occurrence)
		s.negated = negated
	}
	s.occurrences++
	return false
}

func (s *slot) finalizeFlag() spec.OptionValue {
	if effectiveMode(s.opt) == spec.Count {
		return spec.OptionValue{Kind: spec.FlagCount, Count: s.count}
	}
	if s.negated {
		return spec.OptionValue{Kind: spec.FlagNegated}
	}
	return spec.OptionValue{Kind: spec.FlagPresent}
}

// recordValue applies one value-option occurrence's consumed tuple.
func (s *slot) recordValue(values []string) (repeated bool) {
	mode := effectiveMode(s.opt)
	if mode == spec.Error && s.occurrences > 0 {
		return true
	}
	switch mode {
	case spec.First:
		if s.occurrences == 0 {
			s.firstValues = values
		}
	case spec.Append:
		s.groups = append(s.groups, values)
	case spec.Extend:
		s.sequence = append(s.sequence, values...)
	default: // Last, Error (first occurrence)
		s.lastValues = values
	}
	s.occurrences++
	return false
}

// finalizeValue resolves the accumulated value-option state into its
// [spec.OptionValue], applying flatten for [spec.Append].
func (s *slot) finalizeValue(flatten bool) spec.OptionValue {
	switch effectiveMode(s.opt) {
	case spec.First:
		return singleOrSequence(s.opt, s.firstValues)
	case spec.Extend:
		return spec.OptionValue{Kind: spec.Sequence, Texts: s.sequence}
	case spec.Append:
		if flatten {
			var flat []string
			for _, g := range s.groups {
				flat = append(flat, g...)
			}
			return spec.OptionValue{Kind: spec.Sequence, Texts: flat}
		}
		return spec.OptionValue{Kind: spec.NestedSequence, Groups: s.groups}
	default: // Last, Error
		return singleOrSequence(s.opt, s.lastValues)
	}
}

// singleOrSequence represents a value tuple as [spec.Single] when the
// option's arity admits at most one value per occurrence, or
// [spec.Sequence] otherwise.
func singleOrSequence(opt *spec.OptionSpecification, values []string) spec.OptionValue {
	if opt.Arity.Max == 1 {
		var text string
		if len(values) > 0 {
			text = values[0]
		}
		return spec.OptionValue{Kind: spec.Single, Text: text}
	}
	return spec.OptionValue{Kind: spec.Sequence, Texts: values}
}

// recordDict applies one dict-option occurrence's parsed tree.
func (s *slot) recordDict(tree *spec.DictNode) (repeated bool) {
	mode := effectiveMode(s.opt)
	if mode == spec.Error && s.occurrences > 0 {
		return true
	}
	switch mode {
	case spec.First:
		if s.occurrences == 0 {
			s.firstTree = tree
		}
	case spec.Merge:
		s.mergedTree = dictparse.Merge(s.mergedTree, tree)
	default: // Last, Error (first occurrence)
		s.lastTree = tree
	}
	s.occurrences++
	return false
}

func (s *slot) finalizeDict() spec.OptionValue {
	switch effectiveMode(s.opt) {
	case spec.First:
		return spec.OptionValue{Kind: spec.Tree, Tree: s.firstTree}
	case spec.Merge:
		return spec.OptionValue{Kind: spec.Tree, Tree: s.mergedTree}
	default: // Last, Error
		return spec.OptionValue{Kind: spec.Tree, Tree: s.lastTree}
	}
}

// finalize dispatches to the kind-appropriate finalizer.
func (s *slot) finalize(flatten bool) spec.OptionValue {
	switch s.opt.Kind {
	case spec.KindFlag:
		return s.finalizeFlag()
	case spec.KindDict:
		return s.finalizeDict()
	default:
		return s.finalizeValue(flatten)
	}
}
