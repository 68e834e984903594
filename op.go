// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import (
	"code.hybscloud.com/kont"
)

// trampolineDispatcher is the structural interface for driver operations.
// DispatchTrampoline is non-blocking: it returns iox.ErrWouldBlock when a
// buffering tracer cannot accept the events of the previous work item.
type trampolineDispatcher interface {
	DispatchTrampoline(t *Trampoline) (kont.Resumed, error)
}

// Pre-boxed Resumed values for Bounce dispatch.
var (
	bounceMore kont.Resumed = true
	bounceDone kont.Resumed = false
)

// Bounce is the effect operation that executes one deferred work item.
// Perform(Bounce{}) resumes with true after running an item, or false
// once the trampoline has no work left.
type Bounce struct {
	kont.Phantom[bool]
}

// DispatchTrampoline handles Bounce on the trampoline.
// Buffered trace events are flushed first, so every event produced by
// the parse has been handed over by the time Bounce reports false.
func (Bounce) DispatchTrampoline(t *Trampoline) (kont.Resumed, error) {
	if f, ok := t.tracer.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return nil, err
		}
	}
	if !t.bounce() {
		return bounceDone, nil
	}
	return bounceMore, nil
}
