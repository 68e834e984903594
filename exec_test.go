// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"code.hybscloud.com/gll"
)

func TestParseFunction(t *testing.T) {
	function := gll.Named("[function]",
		gll.Seq(gll.Lit("def"), gll.Capture("{"), gll.Lit("{"), gll.Lit("}")))

	rs := gll.Parse(function, "def test {}")
	if len(rs) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(rs))
	}
	if !gll.Complete(rs[0]) || gll.Remaining(rs[0]).Len() != 0 {
		t.Fatalf("outcome %v not a complete success", rs[0])
	}
}

func TestParseTopLevelDefinitions(t *testing.T) {
	grammar := gll.NewRule("grammar")
	function := gll.Named("[function]",
		gll.Seq(gll.Lit("def"), gll.Capture("{"), gll.Lit("{"), gll.Lit("}")))
	class := gll.Named("[class]",
		gll.Seq(gll.Lit("struct"), gll.Capture("{"), gll.Lit("{"), gll.Lit("}")))
	topLevel := gll.Seq(gll.Alt(function, class), gll.Optional(grammar))
	grammar.Assign(gll.Layout(topLevel, " \t\r\n"))

	rs := gll.Parse(grammar, "def test {}\nstruct cls {}")
	if len(rs) != 1 || !gll.Complete(rs[0]) {
		t.Fatalf("got %d outcomes, %d complete; want 1 complete", len(rs), completes(rs))
	}

	rs = gll.Parse(grammar, "def test {}\nclass cls {}")
	if completes(rs) != 0 || len(rs) == 0 {
		t.Fatalf("unknown keyword accepted: %v", rs)
	}
}

func TestParseArithmeticDefinitions(t *testing.T) {
	number := gll.Named("number", gll.Capture(" +*\n"))
	sum := gll.Named("sum", gll.Seq(number, gll.Lit("+"), number))
	product := gll.Named("product", gll.Seq(number, gll.Lit("*"), number))
	program := gll.NewRule("program")
	program.Assign(gll.Layout(gll.Seq(gll.Alt(sum, product), gll.Optional(program)), " \n"))

	const input = "1 + 2\n3 * 4"
	rs := gll.Parse(program, input)
	if len(rs) != 1 || !gll.Complete(rs[0]) {
		t.Fatalf("got %d outcomes, %d complete; want 1 complete", len(rs), completes(rs))
	}

	r := gll.Start(program, input)
	for !r.Done() {
		if err := r.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if len(r.Successes()) != 1 {
		t.Fatalf("got %d successes, want 1", len(r.Successes()))
	}
	mismatched := false
	for _, o := range r.Failures() {
		if f := failure(o); f != nil && errors.Is(f, gll.ErrMismatch) {
			mismatched = true
		}
	}
	if !mismatched {
		t.Fatal("failed alternative missing from the failure set")
	}
}

func TestParseReportsFailuresOnlyWithoutSuccess(t *testing.T) {
	p := gll.Alt(gll.Lit("ab"), gll.Lit("a"), gll.Lit("x"))
	rs := gll.Parse(p, "ab")
	if len(rs) != 1 || !gll.Complete(rs[0]) {
		t.Fatalf("failures leaked next to a success: %v", rs)
	}

	rs = gll.Parse(p, "zz")
	if len(rs) != 3 {
		t.Fatalf("got %d failures, want one per alternative", len(rs))
	}
	for _, o := range rs {
		if gll.Complete(o) || gll.Diagnostic(o) == "" {
			t.Fatalf("failure without diagnostic: %v", o)
		}
	}
}

func TestParseIsDeterministic(t *testing.T) {
	e := catalan()
	first := gll.Start(e, "n+n+n+n")
	second := gll.Start(e, "n+n+n+n")
	for _, r := range []*gll.Run{first, second} {
		for !r.Done() {
			if err := r.Advance(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if first.Steps() != second.Steps() {
		t.Fatalf("steps differ: %d != %d", first.Steps(), second.Steps())
	}
	if !reflect.DeepEqual(offsets(first.Successes()), offsets(second.Successes())) {
		t.Fatal("successes differ between runs")
	}
	if !reflect.DeepEqual(offsets(first.Failures()), offsets(second.Failures())) {
		t.Fatal("failures differ between runs")
	}
}

func TestParseWithLayoutOption(t *testing.T) {
	p := gll.Seq(gll.Lit("a"), gll.Lit("b"))
	if gll.Accept(p, " a b") {
		t.Fatal("default layout skipped spaces")
	}
	if !gll.Accept(p, " a b", gll.WithLayout(" ")) {
		t.Fatal("initial layout not applied")
	}
}

func TestFailureError(t *testing.T) {
	rs := gll.Parse(gll.Seq(gll.Lit("a"), gll.Named("semicolon", gll.Lit(";"))), "a,")
	f := failure(rs[0])
	if f == nil {
		t.Fatal("expected failure")
	}
	msg := f.Error()
	for _, want := range []string{"gll: mismatch", "offset 1", "semicolon", `expected ";"`} {
		if !strings.Contains(msg, want) {
			t.Fatalf("%q does not contain %q", msg, want)
		}
	}

	rs = gll.Parse(gll.Lit("a"), "ab")
	if msg := failure(rs[0]).Error(); !strings.HasPrefix(msg, "gll: incomplete parse at offset 1:") {
		t.Fatalf("incomplete message %q", msg)
	}
}

func TestFailureKindString(t *testing.T) {
	cases := map[gll.FailureKind]string{
		gll.Mismatch:   "mismatch",
		gll.Unassigned: "unassigned rule",
		gll.Incomplete: "incomplete parse",
		0:              "FailureKind(0)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
