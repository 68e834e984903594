// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gll

import (
	"fmt"
	"io"
)

// Status is the state a trace event reports for a node.
type Status uint8

const (
	// Entered is reported once, when the node is attempted.
	Entered Status = iota
	// Succeeded is reported for every successful outcome of the node.
	Succeeded
	// Failed is reported for every failed outcome of the node.
	Failed

	// stopped terminates an AsyncTracer consumer.
	stopped
)

func (s Status) String() string {
	switch s {
	case Entered:
		return "entered"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Event is one trace notification.
// ID is unique within a parse call; Parent is the ID of the node that was
// active when this one was attempted, or 0 for the driver.
type Event struct {
	Serial Serial
	ID     int
	Parent int
	Name   string
	Offset int
	Status Status
}

// Tracer observes combinator attempts. Tracers cannot influence outcomes.
type Tracer interface {
	Trace(ev Event)
}

// TraceFunc adapts a function to Tracer.
type TraceFunc func(ev Event)

// Trace calls f(ev).
func (f TraceFunc) Trace(ev Event) { f(ev) }

// Flusher is implemented by tracers that buffer events. The driver calls
// Flush between work items; iox.ErrWouldBlock postpones the next item.
type Flusher interface {
	Flush() error
}

type nodeKey struct {
	serial Serial
	id     int
}

// GraphWriter renders trace events as a Graphviz digraph.
// Each outcome becomes an edge from the parent node to the node, colored
// green for success and red for failure. Nodes are labeled
// "offset: name", so repeated attempts at one position share a node.
type GraphWriter struct {
	w      io.Writer
	labels map[nodeKey]string
	begun  bool
	err    error
}

// NewGraphWriter returns a GraphWriter writing to w.
// Close must be called to terminate the graph.
func NewGraphWriter(w io.Writer) *GraphWriter {
	return &GraphWriter{w: w, labels: make(map[nodeKey]string)}
}

// Trace implements Tracer.
func (g *GraphWriter) Trace(ev Event) {
	g.begin()
	label := fmt.Sprintf("%d: %s", ev.Offset, ev.Name)
	if ev.Status == Entered {
		g.labels[nodeKey{ev.Serial, ev.ID}] = label
		return
	}
	from := "initial"
	if l, ok := g.labels[nodeKey{ev.Serial, ev.Parent}]; ok {
		from = l
	}
	color := "green"
	if ev.Status == Failed {
		color = "red"
	}
	g.printf("    %q -> %q\n    %q [color=%s, penwidth=5]\n\n", from, label, label, color)
}

// Close ends the graph and returns the first write error.
func (g *GraphWriter) Close() error {
	g.begin()
	g.printf("}\n")
	return g.err
}

func (g *GraphWriter) begin() {
	if g.begun {
		return
	}
	g.begun = true
	g.printf("digraph {\n    rankdir=LR;\n")
}

func (g *GraphWriter) printf(format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}
