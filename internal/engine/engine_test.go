// engine_test.go - end-to-end classifier/grouper/dispatcher tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package engine

import (
	"errors"
	"testing"

	"github.com/aclaf/flagrant/pkg/ferrors"
	"github.com/aclaf/flagrant/pkg/spec"
	"github.com/google/go-cmp/cmp"
)

func buildCommand() *spec.CommandSpecification {
	cmd := spec.NewCommand("build")
	output := spec.NewValue("output", []string{"output"}, []string{"o"}, spec.EXACTLY_ONE)
	verbose := spec.NewFlag("verbose", []string{"verbose"}, []string{"v"})
	verbose.NegationPrefixes = []string{"no"}
	color := spec.NewFlag("color", []string{"color"}, nil)
	color.NegationPrefixes = []string{"no"}
	cmd.Options = []*spec.OptionSpecification{output, verbose, color}
	cmd.Positionals = []*spec.PositionalSpecification{
		spec.NewPositional("sources", spec.ONE_OR_MORE),
	}

	deploy := spec.NewCommand("deploy")
	deploy.Options = []*spec.OptionSpecification{
		spec.NewValue("target", []string{"target"}, []string{"t"}, spec.EXACTLY_ONE),
	}
	deploy.Positionals = []*spec.PositionalSpecification{
		spec.NewPositional("artifact", spec.EXACTLY_ONE),
	}
	cmd.Subcommands = []*spec.CommandSpecification{deploy}
	return cmd
}

func mustValidate(t *testing.T, cmd *spec.CommandSpecification) {
	t.Helper()
	if err := cmd.Validate(); err != nil {
		t.Fatalf("invalid fixture specification: %v", err)
	}
}

// Boundary scenario 1: mixed options and positionals in arbitrary order.
func TestParseMixedOptionsAndPositionals(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	result, err := Parse(cmd, []string{"--output", "out.bin", "--verbose", "src/a.go", "src/b.go"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(spec.OptionValue{Kind: spec.Single, Text: "out.bin"}, result.Options["output"]); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff(spec.OptionValue{Kind: spec.FlagPresent}, result.Options["verbose"]); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"src/a.go", "src/b.go"}, result.Positionals["sources"]); diff != "" {
		t.Fatal(diff)
	}
}

// Boundary scenario 2: the end-of-options delimiter hides later tokens
// from classification entirely, even ones that look like options.
func TestParseEndOfOptionsDelimiter(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	result, err := Parse(cmd, []string{"src.go", "--", "--verbose", "-o"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"--verbose", "-o"}, result.Trailing); diff != "" {
		t.Fatal(diff)
	}
	if _, ok := result.Options["verbose"]; ok {
		t.Fatal("--verbose after -- must not be classified as an option")
	}
}

// Boundary scenario 3: a short cluster whose last letter attaches its
// value directly, with no separating token.
func TestParseShortClusterAttachedValue(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	result, err := Parse(cmd, []string{"-voout.bin", "src.go"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(spec.OptionValue{Kind: spec.FlagPresent}, result.Options["verbose"]); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff(spec.OptionValue{Kind: spec.Single, Text: "out.bin"}, result.Options["output"]); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseShortClusterExplicitEmptyValue(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	result, err := Parse(cmd, []string{"-o=", "src.go"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(spec.OptionValue{Kind: spec.Single, Text: ""}, result.Options["output"]); diff != "" {
		t.Fatal(diff)
	}
}

// Boundary scenario 4: an abbreviated long option that matches more than
// one declared name is rejected as ambiguous.
func TestParseAmbiguousAbbreviation(t *testing.T) {
	cmd := spec.NewCommand("build")
	cmd.Config = &spec.ParserConfiguration{AllowAbbreviatedOptions: true}
	cmd.Options = []*spec.OptionSpecification{
		spec.NewValue("output", []string{"output"}, nil, spec.EXACTLY_ONE),
		spec.NewValue("outline", []string{"outline"}, nil, spec.EXACTLY_ONE),
	}
	mustValidate(t, cmd)

	_, err := Parse(cmd, []string{"--out", "x"}, nil)
	if err == nil {
		t.Fatal("expected AmbiguousOption error")
	}
	var ae ferrors.AmbiguousOption
	if !errors.As(err, &ae) {
		t.Fatalf("got %T: %v", err, err)
	}
}

// Boundary scenario 6: negation, including the disallowed
// "--no-color=bright" form.
func TestParseNegation(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	result, err := Parse(cmd, []string{"--no-color", "src.go"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(spec.OptionValue{Kind: spec.FlagNegated}, result.Options["color"]); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseNegatedFlagRejectsAttachedValue(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	_, err := Parse(cmd, []string{"--no-color=bright", "src.go"}, nil)
	if err == nil {
		t.Fatal("expected FlagWithValue error")
	}
	var fe ferrors.FlagWithValue
	if !errors.As(err, &fe) {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestParseSubcommandRecursion(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	result, err := Parse(cmd, []string{"src.go", "deploy", "--target", "prod", "artifact.tar"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"src.go"}, result.Positionals["sources"]); diff != "" {
		t.Fatal(diff)
	}
	if result.Subcommand == nil {
		t.Fatal("expected a subcommand result")
	}
	if diff := cmp.Diff("deploy", result.Subcommand.Command); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff(spec.OptionValue{Kind: spec.Single, Text: "prod"}, result.Subcommand.Options["target"]); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"artifact.tar"}, result.Subcommand.Positionals["artifact"]); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseUnknownOption(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	_, err := Parse(cmd, []string{"--bogus"}, nil)
	if err == nil {
		t.Fatal("expected UnknownOption error")
	}
	var ue ferrors.UnknownOption
	if !errors.As(err, &ue) {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestParseNotRepeatableOption(t *testing.T) {
	cmd := buildCommand()
	for _, opt := range cmd.Options {
		if opt.CanonicalName == "output" {
			opt.Accumulation = spec.Error
		}
	}
	mustValidate(t, cmd)

	_, err := Parse(cmd, []string{"--output", "a", "--output", "b", "src.go"}, nil)
	if err == nil {
		t.Fatal("expected OptionNotRepeatable error")
	}
	var re ferrors.OptionNotRepeatable
	if !errors.As(err, &re) {
		t.Fatalf("got %T: %v", err, err)
	}
}

func TestParseArgsTruncatedAtSubcommandBoundary(t *testing.T) {
	cmd := buildCommand()
	mustValidate(t, cmd)

	argv := []string{"src.go", "deploy", "--target", "prod", "artifact.tar"}
	result, err := Parse(cmd, argv, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"src.go", "deploy"}
	if diff := cmp.Diff(want, result.Args); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseNegativeNumberAsPositional(t *testing.T) {
	cmd := spec.NewCommand("calc")
	cmd.Config = &spec.ParserConfiguration{AllowNegativeNumbers: true}
	cmd.Positionals = []*spec.PositionalSpecification{
		spec.NewPositional("operands", spec.ONE_OR_MORE),
	}
	mustValidate(t, cmd)

	result, err := Parse(cmd, []string{"-5", "3.2"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"-5", "3.2"}, result.Positionals["operands"]); diff != "" {
		t.Fatal(diff)
	}
}
