// resolver.go - option and subcommand name resolution (spec §4.2).
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package resolver implements flagrant's name resolver: given a user-supplied
name and a command's option (or subcommand) table, it returns either a
unique canonical match, an ambiguity, or not-found.

It builds its lookup tables once, up front, and queries them repeatedly
rather than re-scanning the option/subcommand tables on every call, and
applies case-folding, underscore-conversion, abbreviation, and negation
rules on top of the exact-match lookup.
*/
package resolver

import (
	"sort"
	"strings"

	"github.com/aclaf/flagrant/pkg/spec"
)

// Outcome discriminates the three possible resolutions of §4.2.
type Outcome int

const (
	// NotFound means no option/subcommand matched the given name.
	NotFound Outcome = iota

	// Unique means exactly one option/subcommand matched.
	Unique

	// Ambiguous means more than one option/subcommand matched (only
	// possible via abbreviation).
	Ambiguous
)

// Resolution is the result of a name lookup.
type Resolution struct {
	Outcome Outcome

	// Option is populated when Outcome == Unique and the lookup was for
	// an option.
	Option *spec.OptionSpecification

	// Negated is true when Option was matched via a negation prefix
	// (spec §4.2's negation resolution rule).
	Negated bool

	// Command is populated when Outcome == Unique and the lookup was for
	// a subcommand.
	Command *spec.CommandSpecification

	// Matched lists the canonical names that matched when
	// Outcome == Ambiguous.
	Matched []string
}

// OptionResolver caches the normalized lookup tables for one command
// level's option table. The engine builds one each time it scans a
// command level; it is read-only after construction and so is safe to
// share across concurrent parses (spec §5).
type OptionResolver struct {
	cfg *spec.ParserConfiguration

	// long maps a normalized long name to its option.
	long map[string]*spec.OptionSpecification

	// short maps a normalized short name to its option.
	short map[string]*spec.OptionSpecification

	// canonicalLongs is a sorted, normalized list of every long name,
	// used for abbreviation prefix scans.
	canonicalLongs []string

	// negationFlags is allocated but never populated; negation is
	// resolved from negationWords, the sorted set of normalized negation
	// prefixes declared by any flag, by stripping one and looking the
	// remainder up in long.
	negationFlags map[string]*spec.OptionSpecification
	negationWords []string
}

// NewOptionResolver builds the lookup tables for cmd's option table.
func NewOptionResolver(cmd *spec.CommandSpecification) *OptionResolver {
	cfg := cmd.Config
	if cfg == nil {
		cfg = &spec.ParserConfiguration{}
	}
	r := &OptionResolver{
		cfg:           cfg,
		long:          map[string]*spec.OptionSpecification{},
		short:         map[string]*spec.OptionSpecification{},
		negationFlags: map[string]*spec.OptionSpecification{},
	}
	wordSet := map[string]bool{}
	for _, opt := range cmd.Options {
		for _, long := range opt.LongNames {
			r.long[r.normalize(long)] = opt
			r.canonicalLongs = append(r.canonicalLongs, r.normalize(long))
		}
		for _, short := range opt.ShortNames {
			r.short[r.normalize(short)] = opt
		}
		if opt.IsFlag() {
			for _, word := range opt.NegationPrefixes {
				wordSet[r.normalize(word)] = true
			}
		}
	}
	for word := range wordSet {
		r.negationWords = append(r.negationWords, word)
	}
	sort.Strings(r.negationWords)
	sort.Strings(r.canonicalLongs)
	return r
}

func (r *OptionResolver) normalize(name string) string {
	if r.cfg.FoldOptionCase {
		name = strings.ToLower(name)
	}
	if r.cfg.ConvertUnderscores {
		name = strings.ReplaceAll(name, "_", "-")
	}
	return name
}

// ResolveLong resolves a long option name (the text after "--", before
// any "=value"), applying exact match, then negation, then abbreviation,
// in that precedence order (spec §4.2: "exact match wins over
// abbreviation").
func (r *OptionResolver) ResolveLong(userName string) Resolution {
	norm := r.normalize(userName)

	if opt, ok := r.long[norm]; ok {
		return Resolution{Outcome: Unique, Option: opt}
	}

	if res, ok := r.resolveNegation(norm); ok {
		return res
	}

	if r.cfg.AllowAbbreviatedOptions && len(userName) >= r.cfg.EffectiveMinimumAbbreviationLength() {
		var matchedCanonical []string
		var matchedOption *spec.OptionSpecification
		seen := map[*spec.OptionSpecification]bool{}
		for _, long := range r.canonicalLongs {
			if strings.HasPrefix(long, norm) {
				opt := r.long[long]
				if !seen[opt] {
					seen[opt] = true
					matchedCanonical = append(matchedCanonical, opt.CanonicalName)
					matchedOption = opt
				}
			}
		}
		switch len(matchedCanonical) {
		case 0:
			// fall through to NotFound
		case 1:
			return Resolution{Outcome: Unique, Option: matchedOption}
		default:
			sort.Strings(matchedCanonical)
			return Resolution{Outcome: Ambiguous, Matched: matchedCanonical}
		}
	}

	return Resolution{Outcome: NotFound}
}

// resolveNegation implements spec §4.2's negation resolution: if the
// normalized input decomposes as "prefix-rest" where prefix is a
// negation word of some flag and rest is that flag's long name, resolve
// to that flag, negated.
func (r *OptionResolver) resolveNegation(norm string) (Resolution, bool) {
	for _, word := range r.negationWords {
		prefix := word + "-"
		if !strings.HasPrefix(norm, prefix) {
			continue
		}
		rest := norm[len(prefix):]
		if opt, ok := r.long[rest]; ok && opt.IsFlag() && hasNegationWord(opt, word) {
			return Resolution{Outcome: Unique, Option: opt, Negated: true}, true
		}
	}
	return Resolution{}, false
}

func hasNegationWord(opt *spec.OptionSpecification, normalizedWord string) bool {
	for _, w := range opt.NegationPrefixes {
		if strings.EqualFold(w, normalizedWord) || strings.ReplaceAll(strings.ToLower(w), "_", "-") == normalizedWord {
			return true
		}
	}
	return false
}

// ResolveShort resolves a single-letter short option name (no
// abbreviation, no negation via prefix words -- spec §4.2 only describes
// abbreviation/negation for long names). A short name may still
// independently be declared in [OptionSpecification.NegationShortNames].
func (r *OptionResolver) ResolveShort(c rune) Resolution {
	norm := r.normalize(string(c))
	if opt, ok := r.short[norm]; ok {
		return Resolution{Outcome: Unique, Option: opt}
	}
	for _, table := range []map[string]*spec.OptionSpecification{r.short, r.long} {
		for _, opt := range table {
			for _, neg := range opt.NegationShortNames {
				if r.normalize(neg) == norm {
					return Resolution{Outcome: Unique, Option: opt, Negated: true}
				}
			}
		}
	}
	return Resolution{Outcome: NotFound}
}

// SubcommandResolver mirrors [OptionResolver] for a command's subcommand
// table, per spec §4.2 ("Subcommand resolution is analogous").
type SubcommandResolver struct {
	cfg     *spec.ParserConfiguration
	byName  map[string]*spec.CommandSpecification
	sortedN []string
}

// NewSubcommandResolver builds the lookup table for cmd's subcommand
// table.
func NewSubcommandResolver(cmd *spec.CommandSpecification) *SubcommandResolver {
	cfg := cmd.Config
	if cfg == nil {
		cfg = &spec.ParserConfiguration{}
	}
	r := &SubcommandResolver{cfg: cfg, byName: map[string]*spec.CommandSpecification{}}
	for _, sub := range cmd.Subcommands {
		r.byName[r.normalize(sub.CanonicalName)] = sub
		r.sortedN = append(r.sortedN, r.normalize(sub.CanonicalName))
	}
	sort.Strings(r.sortedN)
	return r
}

func (r *SubcommandResolver) normalize(name string) string {
	if r.cfg.FoldOptionCase {
		name = strings.ToLower(name)
	}
	if r.cfg.ConvertUnderscores {
		name = strings.ReplaceAll(name, "_", "-")
	}
	return name
}

// Resolve resolves a candidate token as a subcommand name.
func (r *SubcommandResolver) Resolve(userName string) Resolution {
	norm := r.normalize(userName)
	if cmd, ok := r.byName[norm]; ok {
		return Resolution{Outcome: Unique, Command: cmd}
	}
	if r.cfg.AllowAbbreviatedSubcommands && len(userName) >= r.cfg.EffectiveMinimumAbbreviationLength() {
		var matched []string
		var matchedCmd *spec.CommandSpecification
		for _, name := range r.sortedN {
			if strings.HasPrefix(name, norm) {
				matched = append(matched, r.byName[name].CanonicalName)
				matchedCmd = r.byName[name]
			}
		}
		switch len(matched) {
		case 0:
		case 1:
			return Resolution{Outcome: Unique, Command: matchedCmd}
		default:
			sort.Strings(matched)
			return Resolution{Outcome: Ambiguous, Matched: matched}
		}
	}
	return Resolution{Outcome: NotFound}
}
