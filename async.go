// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// traceCapacity is the bounded capacity of the AsyncTracer queue.
const traceCapacity = 64

// AsyncTracer forwards events to a sink Tracer on its own goroutine.
//
// The parse goroutine is the single producer and the forwarding
// goroutine the single consumer of a bounded lock-free SPSC queue.
// Trace only buffers; events enter the queue when the driver calls
// Flush between work items. A full queue makes Flush return
// iox.ErrWouldBlock, which holds back the next work item.
type AsyncTracer struct {
	q       lfq.SPSC[Event]
	pending []Event
	sink    Tracer
	done    chan struct{}
}

// NewAsyncTracer starts forwarding to sink. Close must be called to
// stop the forwarding goroutine.
func NewAsyncTracer(sink Tracer) *AsyncTracer {
	a := &AsyncTracer{sink: sink, done: make(chan struct{})}
	a.q.Init(traceCapacity)
	go a.forward()
	return a
}

// Trace implements Tracer.
func (a *AsyncTracer) Trace(ev Event) {
	a.pending = append(a.pending, ev)
}

// Flush moves buffered events into the queue.
// It returns iox.ErrWouldBlock if the queue fills before the buffer drains.
func (a *AsyncTracer) Flush() error {
	i := 0
	for ; i < len(a.pending); i++ {
		if err := a.q.Enqueue(&a.pending[i]); err != nil {
			a.pending = a.pending[:copy(a.pending, a.pending[i:])]
			return err
		}
	}
	a.pending = a.pending[:0]
	return nil
}

// Close flushes the remaining events and waits until the sink has
// received all of them.
func (a *AsyncTracer) Close() {
	var bo iox.Backoff
	for a.Flush() != nil {
		bo.Wait()
	}
	stop := Event{Status: stopped}
	for a.q.Enqueue(&stop) != nil {
		bo.Wait()
	}
	<-a.done
}

func (a *AsyncTracer) forward() {
	defer close(a.done)
	var bo iox.Backoff
	for {
		ev, err := a.q.Dequeue()
		if err != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
		if ev.Status == stopped {
			return
		}
		a.sink.Trace(ev)
	}
}
