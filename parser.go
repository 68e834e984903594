// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

// Continuation receives the outcomes of a match attempt.
// It may be called any number of times, once per derivation.
type Continuation func(t *Trampoline, o Outcome)

// Parser is a grammar fragment.
//
// Attempt matches the fragment at c, skipping bytes of layout before each
// primitive match, and reports every outcome to k. It never returns a
// result directly: alternatives may be deferred onto t and report later,
// after Attempt has returned. Attempt must not mutate the parser.
type Parser interface {
	Attempt(t *Trampoline, layout ByteSet, c Cursor, k Continuation)
	Name() string
}

// renamer is implemented by the built-in combinators, which copy
// themselves under a new display name.
type renamer interface {
	rename(name string) Parser
}

// Named returns p with the display name used in traces and diagnostics.
// p itself is left unchanged.
func Named(name string, p Parser) Parser {
	mustParser(p)
	if r, ok := p.(renamer); ok {
		return r.rename(name)
	}
	return named{inner: p, name: name}
}

// named gives a display name to a parser defined outside the package.
type named struct {
	inner Parser
	name  string
}

func (n named) Name() string { return n.name }

func (n named) rename(name string) Parser {
	n.name = name
	return n
}

func (n named) Attempt(t *Trampoline, layout ByteSet, c Cursor, k Continuation) {
	k, prev := t.open(n.name, c, k)
	n.inner.Attempt(t, layout, c, k)
	t.scope = prev
}

func mustParser(ps ...Parser) {
	for _, p := range ps {
		if p == nil {
			panic("gll: nil parser")
		}
	}
}
