// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

// Rule is a shared, lazily assigned reference to a parser.
//
// Copies of a Rule alias the same slot, so a rule can be used inside an
// expression before its body exists:
//
//	expr := gll.NewRule("expr")
//	expr.Assign(gll.Seq(gll.Optional(expr), gll.Lit("n")))
//
// Building the expression never reads the slot; only parsing does.
// Attempting a rule whose slot is empty reports an Unassigned failure.
type Rule struct {
	cell *ruleCell
	name string
}

type ruleCell struct {
	body Parser
}

// NewRule returns an empty rule.
func NewRule(name string) Rule {
	return Rule{cell: &ruleCell{}, name: name}
}

// RuleOf returns a rule whose slot holds p.
func RuleOf(name string, p Parser) Rule {
	r := NewRule(name)
	r.Assign(p)
	return r
}

// Assign stores p in the rule's slot, replacing any previous body.
// Assign belongs to grammar construction; it must not race with a parse.
func (r Rule) Assign(p Parser) Rule {
	mustParser(p)
	if r.cell == nil {
		panic("gll: assign to a Rule not created by NewRule")
	}
	r.cell.body = p
	return r
}

// Defined reports whether the rule's slot holds a parser.
func (r Rule) Defined() bool {
	return r.cell != nil && r.cell.body != nil
}

func (r Rule) Name() string { return r.name }

func (r Rule) rename(name string) Parser {
	r.name = name
	return r
}

// memoKey identifies one rule attempted at one position under one layout.
type memoKey struct {
	cell   *ruleCell
	off    int
	layout ByteSet
}

// memoEntry collects the callers of a rule at one key and every outcome
// its body has reported there so far.
type memoEntry struct {
	conts    []Continuation
	outcomes []Outcome
}

// Attempt runs the rule's body once per key and shares its outcomes
// with every caller at that key. A caller arriving while the body is
// still running, as in left recursion, is registered and replayed
// instead of re-entering the body.
func (r Rule) Attempt(t *Trampoline, layout ByteSet, c Cursor, k Continuation) {
	k, prev := t.open(r.name, c, k)
	defer func() { t.scope = prev }()

	if !r.Defined() {
		k(t, Fail(Unassigned, r.name, c, "rule %q has no definition", r.name))
		return
	}

	key := memoKey{cell: r.cell, off: c.Offset(), layout: layout}
	if e, ok := t.memo[key]; ok {
		e.conts = append(e.conts, k)
		n := len(e.outcomes)
		for i := 0; i < n; i++ {
			e.deliver(t, k, e.outcomes[i])
		}
		return
	}
	e := &memoEntry{conts: []Continuation{k}}
	t.memo[key] = e
	r.cell.body.Attempt(t, layout, c, e.record)
}

// record is the continuation of the body. Each new outcome is delivered
// to the callers registered so far; later callers get it by replay.
func (e *memoEntry) record(t *Trampoline, o Outcome) {
	if t.guarded(guard{entry: e, end: Remaining(o).Offset(), failed: o.IsLeft()}) {
		return
	}
	e.outcomes = append(e.outcomes, o)
	n := len(e.conts)
	for i := 0; i < n; i++ {
		e.deliver(t, e.conts[i], o)
	}
}

// deliver defers k(o) under a guard for o.
func (e *memoEntry) deliver(t *Trampoline, k Continuation, o Outcome) {
	g := guard{entry: e, end: Remaining(o).Offset(), failed: o.IsLeft()}
	t.pushGuarded(g, func() {
		k(t, o)
	})
}
