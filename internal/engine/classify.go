// classify.go - single-pass left-to-right argument classifier (spec §4.4).
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"fmt"
	"strings"

	"github.com/aclaf/flagrant/internal/assert"
	"github.com/aclaf/flagrant/pkg/dictparse"
	"github.com/aclaf/flagrant/pkg/ferrors"
	"github.com/aclaf/flagrant/pkg/resolver"
	"github.com/aclaf/flagrant/pkg/spec"
)

// scanResult is what one command level's classification pass produces,
// before positional grouping and subcommand recursion.
type scanResult struct {
	slots       map[string]*slot
	slotOrder   []string
	positionals []tokenPos
	trailing    []string

	// subcommandAt is the index into args of a matched subcommand token,
	// or -1 if none matched.
	subcommandAt int
	subcommand   *spec.CommandSpecification
}

// scanLevel runs spec §4.4's classifier over args at one command level,
// resolving option names and consuming values as it goes, and stopping
// early (without error) the moment a subcommand token is recognized --
// the remaining tail is the caller's job to recurse on.
func scanLevel(path, args []string, cmd *spec.CommandSpecification, cfg *spec.ParserConfiguration) (*scanResult, error) {
	// Resolve names under the merged configuration for this level, not
	// just cmd's own override.
	levelCmd := *cmd
	levelCmd.Config = cfg
	optResolver := resolver.NewOptionResolver(&levelCmd)
	var subResolver *resolver.SubcommandResolver
	if len(cmd.Subcommands) > 0 {
		subResolver = resolver.NewSubcommandResolver(&levelCmd)
	}

	positioned := make([]tokenPos, len(args))
	for i, a := range args {
		positioned[i] = tokenPos{text: a, pos: i}
	}
	queue := newDeque(positioned)

	res := &scanResult{
		slots:        map[string]*slot{},
		subcommandAt: -1,
	}
	slotFor := func(opt *spec.OptionSpecification) *slot {
		s, ok := res.slots[opt.CanonicalName]
		if !ok {
			s = newSlot(opt)
			res.slots[opt.CanonicalName] = s
			res.slotOrder = append(res.slotOrder, opt.CanonicalName)
		}
		return s
	}

	positionalsExist := len(cmd.Positionals) > 0
	var afterEnd, seenPositional bool

	for !queue.Empty() {
		cur, _ := queue.Front()
		queue.PopFront()
		t := cur.text
		fmt.Fprintf(traceWriter, "token[%d]=%q afterEnd=%v seenPositional=%v\n", cur.pos, t, afterEnd, seenPositional)

		switch {
		case afterEnd:
			res.trailing = append(res.trailing, t)

		case t == "--":
			afterEnd = true

		case cfg.StrictOptionsBeforePositionals && seenPositional:
			res.positionals = append(res.positionals, cur)

		case t == "-":
			res.positionals = append(res.positionals, cur)
			seenPositional = true

		case cfg.AllowNegativeNumbers && len(cmd.Positionals) > 0 && isNegativeNumber(t):
			res.positionals = append(res.positionals, cur)

		case strings.HasPrefix(t, "--"):
			if err := classifyLong(path, args, cur, queue, cmd, cfg, optResolver, subResolver, slotFor, positionalsExist); err != nil {
				return nil, err
			}

		case strings.HasPrefix(t, "-") && len(t) >= 2:
			if err := classifyShortCluster(path, args, cur, queue, cfg, optResolver, subResolver, slotFor, positionalsExist); err != nil {
				return nil, err
			}

		default:
			if subResolver != nil {
				subRes := subResolver.Resolve(t)
				switch subRes.Outcome {
				case resolver.Unique:
					res.subcommand = subRes.Command
					res.subcommandAt = cur.pos
					return res, nil
				case resolver.Ambiguous:
					return nil, ferrors.NewUnknownSubcommand(path, args, cur.pos,
						t+" (ambiguous: "+strings.Join(subRes.Matched, ", ")+")")
				}
			}
			res.positionals = append(res.positionals, cur)
			seenPositional = true
		}
	}

	assert.True(queue.Empty(), "expected queue fully drained at end of scan")
	return res, nil
}

// classifyLong implements spec §4.4 rule 6: a "--name[=value]" token.
func classifyLong(path, args []string, cur tokenPos, queue *deque[tokenPos], cmd *spec.CommandSpecification,
	cfg *spec.ParserConfiguration, optResolver *resolver.OptionResolver, subResolver *resolver.SubcommandResolver,
	slotFor func(*spec.OptionSpecification) *slot, positionalsExist bool) error {

	body := cur.text[2:]
	name := body
	var inline string
	var hasInline bool
	if idx := strings.IndexByte(body, '='); idx >= 0 {
		name = body[:idx]
		inline = body[idx+1:]
		hasInline = true
	}

	res := optResolver.ResolveLong(name)
	switch res.Outcome {
	case resolver.NotFound:
		return ferrors.NewUnknownOption(path, args, cur.pos, "--"+name)
	case resolver.Ambiguous:
		return ferrors.NewAmbiguousOption(path, args, cur.pos, name, res.Matched)
	}
	opt := res.Option
	s := slotFor(opt)

	if opt.IsFlag() {
		if hasInline {
			if res.Negated {
				return ferrors.NewFlagWithValue(path, args, cur.pos, name, inline)
			}
			return ferrors.NewOptionValueNotAllowed(path, args, cur.pos, name, inline)
		}
		if s.recordFlag(res.Negated) {
			return ferrors.NewOptionNotRepeatable(path, args, cur.pos, opt.CanonicalName, cur.text)
		}
		return nil
	}

	if opt.IsDict() {
		return classifyDictOccurrence(path, args, cur, queue, opt, cfg, subResolver, s, inline, hasInline, positionalsExist)
	}

	// Value variant.
	if hasInline {
		if opt.Arity.Min > 1 {
			return ferrors.NewOptionMissingValue(path, args, cur.pos, opt.CanonicalName,
				ferrors.ArityRange{Min: opt.Arity.Min, Max: opt.Arity.Max}, []string{inline})
		}
		if s.recordValue([]string{inline}) {
			return ferrors.NewOptionNotRepeatable(path, args, cur.pos, opt.CanonicalName, inline)
		}
		return nil
	}

	values := consumeValues(queue, opt.Arity, opt.Greedy, cfg, subResolver, positionalsExist)
	if len(values) < opt.Arity.Min {
		return ferrors.NewOptionMissingValue(path, args, cur.pos, opt.CanonicalName,
			ferrors.ArityRange{Min: opt.Arity.Min, Max: opt.Arity.Max}, texts(values))
	}
	if s.recordValue(texts(values)) {
		return ferrors.NewOptionNotRepeatable(path, args, cur.pos, opt.CanonicalName, strings.Join(texts(values), " "))
	}
	return nil
}

// classifyDictOccurrence handles one "--dictopt[=key=value]" occurrence.
func classifyDictOccurrence(path, args []string, cur tokenPos, queue *deque[tokenPos], opt *spec.OptionSpecification,
	cfg *spec.ParserConfiguration, subResolver *resolver.SubcommandResolver, s *slot, inline string, hasInline bool,
	positionalsExist bool) error {

	var rawTokens []string
	if hasInline {
		if opt.Arity.Min > 1 {
			return ferrors.NewOptionMissingValue(path, args, cur.pos, opt.CanonicalName,
				ferrors.ArityRange{Min: opt.Arity.Min, Max: opt.Arity.Max}, []string{inline})
		}
		rawTokens = []string{inline}
	} else {
		values := consumeValues(queue, opt.Arity, opt.Greedy, cfg, subResolver, positionalsExist)
		if len(values) < opt.Arity.Min {
			return ferrors.NewOptionMissingValue(path, args, cur.pos, opt.CanonicalName,
				ferrors.ArityRange{Min: opt.Arity.Min, Max: opt.Arity.Max}, texts(values))
		}
		rawTokens = texts(values)
	}

	tree, err := dictparse.ParseTokens(path, args, cur.pos, opt.CanonicalName, rawTokens, opt.StrictStructure)
	if err != nil {
		if opt.JSONFallback != "" && len(rawTokens) == 1 {
			tree, err = dictparse.FromJSON(path, args, cur.pos, opt.CanonicalName, rawTokens[0])
		}
		if err != nil {
			return err
		}
	}
	if s.recordDict(tree) {
		return ferrors.NewOptionNotRepeatable(path, args, cur.pos, opt.CanonicalName, strings.Join(rawTokens, " "))
	}
	return nil
}

// classifyShortCluster implements spec §4.4 rule 7.
func classifyShortCluster(path, args []string, cur tokenPos, queue *deque[tokenPos], cfg *spec.ParserConfiguration,
	optResolver *resolver.OptionResolver, subResolver *resolver.SubcommandResolver,
	slotFor func(*spec.OptionSpecification) *slot, positionalsExist bool) error {

	body := cur.text[1:]
	for len(body) > 0 {
		c := rune(body[0])
		rest := body[1:]

		res := optResolver.ResolveShort(c)
		if res.Outcome == resolver.NotFound {
			return ferrors.NewUnknownOption(path, args, cur.pos, "-"+string(c))
		}
		opt := res.Option
		s := slotFor(opt)

		if opt.IsFlag() {
			if s.recordFlag(res.Negated) {
				return ferrors.NewOptionNotRepeatable(path, args, cur.pos, opt.CanonicalName, "-"+string(c))
			}
			body = rest
			continue
		}

		// Value (or dict) option: last option in the cluster by
		// construction. Whatever remains is its attached value, minus a
		// leading '=' if present; an explicit "-o=" attaches an empty
		// string rather than falling through to normal consumption.
		var rawTokens []string
		switch {
		case rest == "":
			values := consumeValues(queue, opt.Arity, opt.Greedy, cfg, subResolver, positionalsExist)
			rawTokens = texts(values)
		case strings.HasPrefix(rest, "="):
			rawTokens = []string{rest[1:]}
		default:
			rawTokens = []string{rest}
		}
		if len(rawTokens) < opt.Arity.Min {
			return ferrors.NewOptionMissingValue(path, args, cur.pos, opt.CanonicalName,
				ferrors.ArityRange{Min: opt.Arity.Min, Max: opt.Arity.Max}, rawTokens)
		}

		if opt.IsDict() {
			tree, err := dictparse.ParseTokens(path, args, cur.pos, opt.CanonicalName, rawTokens, opt.StrictStructure)
			if err != nil {
				if opt.JSONFallback != "" && len(rawTokens) == 1 {
					tree, err = dictparse.FromJSON(path, args, cur.pos, opt.CanonicalName, rawTokens[0])
				}
				if err != nil {
					return err
				}
			}
			if s.recordDict(tree) {
				return ferrors.NewOptionNotRepeatable(path, args, cur.pos, opt.CanonicalName, strings.Join(rawTokens, " "))
			}
		} else {
			if s.recordValue(rawTokens) {
				return ferrors.NewOptionNotRepeatable(path, args, cur.pos, opt.CanonicalName, strings.Join(rawTokens, " "))
			}
		}
		return nil // cluster ends at the first value-taking option
	}
	return nil
}
