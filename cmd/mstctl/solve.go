package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/katalvlaran/boruvka/boruvka"
	"github.com/katalvlaran/boruvka/core"
	"github.com/katalvlaran/boruvka/graphio"
	"github.com/katalvlaran/boruvka/prim_kruskal"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type solveInput struct {
	algorithm string
	solver    string
	root      string
	workers   int
	verify    bool
	out       string
	format    string
}

// algorithm computes a spanning tree or forest of g.
type algorithm func(g *core.Graph, in *solveInput) ([]core.Edge, float64, error)

var algorithms = map[string]algorithm{
	"boruvka": func(g *core.Graph, in *solveInput) ([]core.Edge, float64, error) {
		return boruvka.MST(g, boruvkaOptions(in)...)
	},
	"hybrid": func(g *core.Graph, in *solveInput) ([]core.Edge, float64, error) {
		s, err := exactSolver(in.solver)
		if err != nil {
			return nil, 0, err
		}
		return boruvka.Hybrid(g, append(boruvkaOptions(in), boruvka.WithSolver(s))...)
	},
	"forest": func(g *core.Graph, in *solveInput) ([]core.Edge, float64, error) {
		return boruvka.Forest(g, boruvkaOptions(in)...)
	},
	"kruskal": func(g *core.Graph, _ *solveInput) ([]core.Edge, float64, error) {
		return prim_kruskal.Kruskal(g)
	},
	"prim": func(g *core.Graph, in *solveInput) ([]core.Edge, float64, error) {
		return prim_kruskal.Compute(g,
			prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(in.root))
	},
	"gonum": func(g *core.Graph, _ *solveInput) ([]core.Edge, float64, error) {
		edges, total, err := boruvka.GonumSolver{}.Solve(g)
		if err != nil {
			return nil, 0, err
		}
		if n := g.VertexCount(); n > 0 && len(edges) < n-1 {
			return nil, 0, boruvka.ErrDisconnected
		}
		return edges, total, nil
	},
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func exactSolver(name string) (boruvka.Solver, error) {
	switch name {
	case "kruskal":
		return boruvka.KruskalSolver{}, nil
	case "prim":
		return boruvka.PrimSolver{}, nil
	case "gonum":
		return boruvka.GonumSolver{}, nil
	case "gonum-prim":
		return boruvka.GonumSolver{Prim: true}, nil
	default:
		return nil, errors.Errorf("unknown solver %q", name)
	}
}

// boruvkaOptions maps flags to options and logs every contraction round.
func boruvkaOptions(in *solveInput) []boruvka.Option {
	return []boruvka.Option{
		boruvka.WithWorkers(in.workers),
		boruvka.WithOnRound(func(s boruvka.RoundStats) {
			log.WithFields(log.Fields{
				"round":      s.Round,
				"vertices":   s.Vertices,
				"edges":      s.Edges,
				"fixed":      s.Fixed,
				"contracted": s.Contracted,
			}).Debug("contraction round")
		}),
	}
}

func newSolveCommand() *cobra.Command {
	in := new(solveInput)
	cmd := &cobra.Command{
		Use:   "solve [graph file]",
		Short: "Compute a minimum spanning tree",
		Long: "Compute a minimum spanning tree of a graph file (YAML or edge list, " +
			"\"-\" or no argument reads an edge list from stdin).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			return runSolve(cmd, path, in)
		},
	}
	cmd.Flags().StringVarP(&in.algorithm, "algorithm", "a", "boruvka",
		fmt.Sprintf("algorithm, one of %v", algorithmNames()))
	cmd.Flags().StringVar(&in.solver, "solver", "kruskal", "exact solver for hybrid: kruskal, prim, gonum or gonum-prim")
	cmd.Flags().StringVar(&in.root, "root", "", "root vertex for prim (default: smallest vertex ID)")
	cmd.Flags().IntVarP(&in.workers, "workers", "w", 1, "goroutines for the cheapest-edge scan")
	cmd.Flags().BoolVar(&in.verify, "verify", false, "check the result is a spanning tree")
	cmd.Flags().StringVarP(&in.out, "out", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().StringVar(&in.format, "format", "", "result format: yaml or edgelist (default: from --out, else edgelist)")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, in *solveInput) error {
	run, ok := algorithms[in.algorithm]
	if !ok {
		return errors.Errorf("unknown algorithm %q, want one of %v", in.algorithm, algorithmNames())
	}

	var (
		g   *core.Graph
		err error
	)
	if path == "-" {
		g, err = graphio.ReadEdgeList(cmd.InOrStdin())
	} else {
		g, err = graphio.Load(path)
	}
	if err != nil {
		return errors.Wrap(err, "loading graph")
	}
	log.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Debugf("loaded %s", path)

	start := time.Now()
	edges, total, err := run(g, in)
	if err != nil {
		return errors.Wrapf(err, "%s", in.algorithm)
	}
	log.WithFields(log.Fields{
		"algorithm": in.algorithm,
		"edges":     len(edges),
		"total":     total,
		"elapsed":   time.Since(start),
	}).Info("solved")

	if in.verify && in.algorithm != "forest" {
		if err = boruvka.IsSpanningTree(g, edges); err != nil {
			return errors.Wrap(err, "verify")
		}
		log.Debug("verified spanning tree")
	}

	format := graphio.FormatEdgeList
	if in.out != "" {
		format = graphio.FormatOf(in.out)
	}
	if in.format != "" {
		format = graphio.Format(in.format)
	}

	result := graphio.NewResult(in.algorithm, g, edges, total)
	if in.out == "" {
		return errors.Wrap(graphio.WriteResult(cmd.OutOrStdout(), result, format), "writing result")
	}

	fh, err := os.Create(in.out)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err = graphio.WriteResult(fh, result, format); err != nil {
		fh.Close()
		return errors.Wrap(err, "writing result")
	}

	return errors.Wrap(fh.Close(), "closing output")
}
