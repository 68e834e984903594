// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll_test

import (
	"code.hybscloud.com/gll"
	"code.hybscloud.com/iox"
)

// recorder collects trace events in order.
type recorder struct {
	events []gll.Event
}

func (r *recorder) Trace(ev gll.Event) {
	r.events = append(r.events, ev)
}

// stallTracer refuses the first stalls flushes with iox.ErrWouldBlock.
type stallTracer struct {
	recorder
	stalls int
}

func (s *stallTracer) Flush() error {
	if s.stalls > 0 {
		s.stalls--
		return iox.ErrWouldBlock
	}
	return nil
}

// counting wraps a parser and counts its attempts.
type counting struct {
	inner gll.Parser
	n     *int
}

func count(p gll.Parser) (gll.Parser, *int) {
	n := new(int)
	return counting{inner: p, n: n}, n
}

func (c counting) Attempt(t *gll.Trampoline, layout gll.ByteSet, cur gll.Cursor, k gll.Continuation) {
	*c.n++
	c.inner.Attempt(t, layout, cur, k)
}

func (c counting) Name() string { return "" }

// completes returns the number of complete successes in rs.
func completes(rs []gll.Outcome) int {
	n := 0
	for _, o := range rs {
		if gll.Complete(o) {
			n++
		}
	}
	return n
}

// failure returns the failure of o, or nil for a success.
func failure(o gll.Outcome) *gll.Failure {
	f, _ := o.GetLeft()
	return f
}

// offsets returns the remaining offset of each outcome.
func offsets(rs []gll.Outcome) []int {
	out := make([]int, len(rs))
	for i, o := range rs {
		out[i] = gll.Remaining(o).Offset()
	}
	return out
}

// catalan returns E := E "+" E | "n", which has Catalan-many
// derivations of "n+n+...+n".
func catalan() gll.Rule {
	e := gll.NewRule("E")
	e.Assign(gll.Alt(gll.Seq(e, gll.Lit("+"), e), gll.Lit("n")))
	return e
}
