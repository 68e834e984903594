// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

// Sequence matches lhs and then rhs from where lhs stopped.
type Sequence struct {
	lhs, rhs Parser
	name     string
}

// Seq returns the sequence of ps, grouped from the left.
// Seq() is Empty() and Seq(p) is p.
func Seq(ps ...Parser) Parser {
	mustParser(ps...)
	switch len(ps) {
	case 0:
		return Empty()
	case 1:
		return ps[0]
	}
	p := ps[0]
	for _, rhs := range ps[1:] {
		p = Sequence{lhs: p, rhs: rhs}
	}
	return p
}

func (s Sequence) Name() string { return s.name }

func (s Sequence) rename(name string) Parser {
	s.name = name
	return s
}

// Attempt runs rhs once per success of lhs. Failures of either operand
// are forwarded unchanged; rhs is never attempted after an lhs failure.
func (s Sequence) Attempt(t *Trampoline, layout ByteSet, c Cursor, k Continuation) {
	k, prev := t.open(s.name, c, k)
	s.lhs.Attempt(t, layout, c, func(t *Trampoline, o Outcome) {
		next, ok := o.GetRight()
		if !ok {
			k(t, o)
			return
		}
		s.rhs.Attempt(t, layout, next, k)
	})
	t.scope = prev
}

// Disjunction defers each of its alternatives onto the trampoline.
type Disjunction struct {
	alts []Parser
	name string
}

// Alt returns the alternation of ps. Unnamed nested alternations are
// flattened into one list; rules and named parsers stay opaque, so
// building an alternation never looks inside a rule.
func Alt(ps ...Parser) Parser {
	mustParser(ps...)
	var alts []Parser
	for _, p := range ps {
		alts = gather(alts, p)
	}
	return Disjunction{alts: alts}
}

func gather(alts []Parser, p Parser) []Parser {
	if d, ok := p.(Disjunction); ok && d.name == "" {
		return append(alts, d.alts...)
	}
	return append(alts, p)
}

// Optional returns the alternation of p and Empty().
func Optional(p Parser) Parser {
	return Alt(p, Empty())
}

func (d Disjunction) Name() string { return d.name }

func (d Disjunction) rename(name string) Parser {
	d.name = name
	return d
}

// Alternatives returns the number of gathered alternatives.
func (d Disjunction) Alternatives() int {
	return len(d.alts)
}

// Attempt enqueues one work item per alternative and returns without
// running any of them. Every alternative runs exactly once when the
// trampoline is drained, and all of its outcomes reach k.
func (d Disjunction) Attempt(t *Trampoline, layout ByteSet, c Cursor, k Continuation) {
	k, prev := t.open(d.name, c, k)
	for _, alt := range d.alts {
		t.Push(func() {
			alt.Attempt(t, layout, c, k)
		})
	}
	t.scope = prev
}

// LayoutScope replaces the layout for its subtree.
type LayoutScope struct {
	inner Parser
	skip  ByteSet
	name  string
}

// Layout returns p with the bytes of skip stripped before every literal
// and capture inside p. Parsers outside p keep the enclosing layout.
func Layout(p Parser, skip string) Parser {
	mustParser(p)
	return LayoutScope{inner: p, skip: Bytes(skip)}
}

func (l LayoutScope) Name() string { return l.name }

func (l LayoutScope) rename(name string) Parser {
	l.name = name
	return l
}

func (l LayoutScope) Attempt(t *Trampoline, _ ByteSet, c Cursor, k Continuation) {
	k, prev := t.open(l.name, c, k)
	l.inner.Attempt(t, l.skip, c, k)
	t.scope = prev
}
