// dict.go - dict option structural parser.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package dictparse implements the structural grammar of flagrant's [Dict]
option variant: "key=value" tokens with dot-notation nested keys
(a.b.c=1), bracket-index notation (items[0]=x), backslash-escaping of
literal '.'/'['/']', a strict_structure toggle, and a JSON-fallback parse
path for tokens that are not key=value pairs at all.

It is kept as an isolated subcomponent because its grammar is large
enough to live behind its own interface, consumed by the value consumer
rather than inlined into the classifier.
*/
package dictparse

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aclaf/flagrant/pkg/ferrors"
	"github.com/aclaf/flagrant/pkg/spec"
)

// Segment is one decoded step of a dict key path: either a named field
// (IsIndex == false) or a bracket index (IsIndex == true).
type Segment struct {
	Name    string
	Index   int
	IsIndex bool
}

// SplitKeyPath decomposes a dict key (the part before "=") into its path
// segments, honoring '.' as a field separator, '[' '...' ']' as an index,
// and '\' as an escape for a literal '.', '[', ']', or '\'.
func SplitKeyPath(key string) ([]Segment, error) {
	var segments []Segment
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, Segment{Name: current.String()})
			current.Reset()
		}
	}

	runes := []rune(key)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes):
			current.WriteRune(runes[i+1])
			i++

		case r == '.':
			flush()

		case r == '[':
			flush()
			j := i + 1
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("unescaped-bracket: missing closing ']' in %q", key)
			}
			idxText := string(runes[i+1 : j])
			idx, err := strconv.Atoi(idxText)
			if err != nil {
				return nil, fmt.Errorf("unescaped-bracket: invalid index %q in %q", idxText, key)
			}
			segments = append(segments, Segment{Index: idx, IsIndex: true})
			i = j

		case r == ']':
			return nil, fmt.Errorf("unescaped-bracket: stray ']' in %q", key)

		default:
			current.WriteRune(r)
		}
	}
	flush()

	if len(segments) == 0 {
		return nil, fmt.Errorf("unescaped-bracket: empty key")
	}
	return segments, nil
}

// SplitPair splits a "key=value" token on its first unescaped '='. ok is
// false when no unescaped '=' is present (the caller should then attempt
// the JSON-fallback path, if configured).
func SplitPair(token string) (key, value string, ok bool) {
	runes := []rune(token)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			i++
			continue
		}
		if runes[i] == '=' {
			return string(runes[:i]), string(runes[i+1:]), true
		}
	}
	return "", "", false
}

// Insert sets value at the path described by segments inside root,
// creating intermediate containers as needed and returning the resulting
// root (root may be nil on the first call). When strict is true, a
// segment that would require a node to be simultaneously a scalar leaf
// and a container is rejected.
func Insert(root *spec.DictNode, segments []Segment, value string, strict bool) (*spec.DictNode, error) {
	if root == nil {
		root = &spec.DictNode{}
	}
	node := root
	for i, seg := range segments {
		key := seg.Name
		if seg.IsIndex {
			key = strconv.Itoa(seg.Index)
		}
		last := i == len(segments)-1

		if node.Leaf != nil {
			if strict {
				return nil, fmt.Errorf("strict-structure-conflict: %q is already a scalar value", key)
			}
			node.Leaf = nil
			node.Children = nil
		}
		if node.Children == nil {
			node.Children = map[string]*spec.DictNode{}
		}
		if seg.IsIndex && strict {
			if seg.Index < 0 || seg.Index > len(node.Children) {
				return nil, fmt.Errorf("index-out-of-bounds-policy-violation: index %d skips ahead of %d existing elements", seg.Index, len(node.Children))
			}
		}

		child, ok := node.Children[key]
		if !ok {
			child = &spec.DictNode{}
			node.Children[key] = child
		}
		if last {
			if child.Children != nil && strict {
				return nil, fmt.Errorf("strict-structure-conflict: %q is already a container", key)
			}
			v := value
			child.Leaf = &v
			child.Children = nil
		}
		node = child
	}
	return root, nil
}

// Merge structurally merges src into dst (later keys win), matching the
// [spec.Merge] accumulation mode's semantics. Either argument may be nil.
func Merge(dst, src *spec.DictNode) *spec.DictNode {
	if src == nil {
		return dst
	}
	if dst == nil {
		return cloneNode(src)
	}
	if src.Leaf != nil {
		return cloneNode(src)
	}
	if dst.Children == nil {
		dst.Children = map[string]*spec.DictNode{}
	}
	dst.Leaf = nil
	for key, child := range src.Children {
		dst.Children[key] = Merge(dst.Children[key], child)
	}
	return dst
}

func cloneNode(n *spec.DictNode) *spec.DictNode {
	if n == nil {
		return nil
	}
	out := &spec.DictNode{}
	if n.Leaf != nil {
		v := *n.Leaf
		out.Leaf = &v
		return out
	}
	if n.Children != nil {
		out.Children = make(map[string]*spec.DictNode, len(n.Children))
		for k, v := range n.Children {
			out.Children[k] = cloneNode(v)
		}
	}
	return out
}

// ParseTokens parses a full occurrence's worth of "key=value" tokens into
// one [spec.DictNode] tree, reporting errors through the taxonomy's
// [ferrors.DictParseError] subkinds.
func ParseTokens(path, args []string, position int, option string, tokens []string, strict bool) (*spec.DictNode, error) {
	var root *spec.DictNode
	for _, tok := range tokens {
		key, value, ok := SplitPair(tok)
		if !ok {
			return nil, ferrors.NewDictParseError(path, args, position, option,
				ferrors.DictUnescapedBracket, tok, "missing unescaped '=' separator")
		}
		segments, err := SplitKeyPath(key)
		if err != nil {
			return nil, classify(path, args, position, option, tok, err)
		}
		root, err = Insert(root, segments, value, strict)
		if err != nil {
			return nil, classify(path, args, position, option, tok, err)
		}
	}
	return root, nil
}

// FromJSON parses raw as a single JSON document and converts it into a
// [spec.DictNode] tree, for the JSON-fallback sibling mechanism (spec
// §3's "JSON-fallback sibling option").
func FromJSON(path, args []string, position int, option, raw string) (*spec.DictNode, error) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, ferrors.NewDictParseError(path, args, position, option,
			ferrors.DictJSONFallbackParseFailure, raw, err.Error())
	}
	return fromAny(decoded), nil
}

func fromAny(v any) *spec.DictNode {
	switch val := v.(type) {
	case map[string]any:
		node := &spec.DictNode{Children: map[string]*spec.DictNode{}}
		for k, child := range val {
			node.Children[k] = fromAny(child)
		}
		return node
	case []any:
		node := &spec.DictNode{Children: map[string]*spec.DictNode{}}
		for i, child := range val {
			node.Children[strconv.Itoa(i)] = fromAny(child)
		}
		return node
	default:
		text := fmt.Sprintf("%v", val)
		if val == nil {
			text = "null"
		}
		return &spec.DictNode{Leaf: &text}
	}
}

func classify(path, args []string, position int, option, token string, err error) error {
	msg := err.Error()
	kind := ferrors.DictUnescapedBracket
	switch {
	case strings.HasPrefix(msg, "index-out-of-bounds-policy-violation"):
		kind = ferrors.DictIndexOutOfBoundsPolicy
	case strings.HasPrefix(msg, "strict-structure-conflict"):
		kind = ferrors.DictStrictStructureConflict
	}
	return ferrors.NewDictParseError(path, args, position, option, kind, token, msg)
}
