// Package boruvka provides tunable options, round statistics and error
// definitions for Borůvka contraction over a core.Graph.
package boruvka

import (
	"errors"
	"fmt"
)

// Sentinel errors for contraction and MST drivers.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("boruvka: graph is nil")

	// ErrDisconnectedNode is returned by a contraction round when some vertex
	// has no incident non-loop edge. The offending vertex ID is wrapped in.
	ErrDisconnectedNode = errors.New("boruvka: vertex has no incident edge")

	// ErrGraphTooSmall is returned by Rounds and Hybrid when n <= 2, where
	// log2(log2(n)) is not a positive round count.
	ErrGraphTooSmall = errors.New("boruvka: graph too small for hybrid rounds")

	// ErrDisconnected is returned when the collected edges cannot span the
	// graph: two or more components carry edges.
	ErrDisconnected = errors.New("boruvka: graph is disconnected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("boruvka: invalid option supplied")

	// ErrNotSpanning is returned by IsSpanningTree when the edges leave some
	// vertex unreached.
	ErrNotSpanning = errors.New("boruvka: edges do not span the graph")

	// ErrCycle is returned by IsSpanningTree when an edge closes a cycle, and by
	// Hybrid when the solver returns more edges than a spanning tree holds.
	ErrCycle = errors.New("boruvka: edges contain a cycle")

	// ErrForeignEdge is returned when an edge does not belong to the graph
	// it is checked or resolved against.
	ErrForeignEdge = errors.New("boruvka: edge not in graph")
)

// RoundStats describes one completed contraction round.
type RoundStats struct {
	// Round is the 1-based round number.
	Round int

	// Vertices and Edges count the graph the round consumed.
	Vertices int
	Edges    int

	// Fixed is the number of distinct edges the round selected into the MST.
	Fixed int

	// Contracted is the vertex count of the graph the round produced.
	Contracted int
}

// Option configures contraction and MST drivers via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded internally
// and surfaced as ErrOptionViolation when a driver is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by Contract, MST, Hybrid
// and Forest.
type Options struct {
	// Solver is the exact MST algorithm Hybrid runs on the residual graph.
	Solver Solver

	// Workers is the number of goroutines scanning for cheapest edges.
	// 1 scans sequentially.
	Workers int

	// OnRound is called after every contraction round of MST and Hybrid.
	OnRound func(RoundStats)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Kruskal as the exact solver
//   - sequential scanning (Workers == 1)
//   - a no-op OnRound hook.
func DefaultOptions() Options {
	return Options{
		Solver:  KruskalSolver{},
		Workers: 1,
		OnRound: func(RoundStats) {},
		err:     nil,
	}
}

// WithSolver selects the exact solver used by Hybrid.
// A nil solver is an ErrOptionViolation.
func WithSolver(s Solver) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: solver cannot be nil", ErrOptionViolation)
			return
		}
		o.Solver = s
	}
}

// WithWorkers sets the number of goroutines used for the cheapest-edge scan.
//
//	n >= 1: use n workers (1 means sequential)
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnRound registers a callback run after every contraction round.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// buildOptions applies opts over the defaults and reports any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
