// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// trampolineHandler implements kont.Handler for driver effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch
// into blocking evaluation for Parse.
type trampolineHandler struct {
	t *Trampoline
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h trampolineHandler) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	top, ok := op.(trampolineDispatcher)
	if !ok {
		panic("gll: unhandled effect in trampolineHandler")
	}
	return dispatchWait(h.t, top), true
}

// dispatchWait blocks until DispatchTrampoline succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff.
func dispatchWait(t *Trampoline, top trampolineDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := top.DispatchTrampoline(t)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Parse matches g against the whole of input.
//
// It runs the grammar's attempt, then drains every deferred alternative.
// A success that leaves input unconsumed is reported as an Incomplete
// failure. Parse returns every complete success in the order they were
// reported; if there is none it returns every failure instead.
//
// Parse does not modify g, so a grammar may be reused across calls.
func Parse(g Parser, input string, opts ...Option) []Outcome {
	t := begin(g, input, opts)
	kont.Handle(drain(), trampolineHandler{t: t})
	return t.results()
}

// Accept reports whether g has at least one complete derivation of input.
func Accept(g Parser, input string, opts ...Option) bool {
	rs := Parse(g, input, opts...)
	return len(rs) > 0 && Complete(rs[0])
}
