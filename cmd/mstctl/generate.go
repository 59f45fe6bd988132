package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/boruvka/builder"
	"github.com/katalvlaran/boruvka/core"
	"github.com/katalvlaran/boruvka/graphio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateInput struct {
	topology string
	n        int
	extra    int
	rows     int
	cols     int
	p        float64
	seed     int64
	weights  string
	out      string
	format   string
}

func newGenerateCommand() *cobra.Command {
	in := new(generateInput)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a weighted test graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, in)
		},
	}
	cmd.Flags().StringVarP(&in.topology, "topology", "t", "random-connected",
		"path, cycle, star, complete, grid, random-sparse or random-connected")
	cmd.Flags().IntVarP(&in.n, "vertices", "n", 16, "number of vertices")
	cmd.Flags().IntVar(&in.extra, "extra", 0, "random-connected: edges beyond the spanning tree")
	cmd.Flags().IntVar(&in.rows, "rows", 4, "grid rows")
	cmd.Flags().IntVar(&in.cols, "cols", 4, "grid columns")
	cmd.Flags().Float64VarP(&in.p, "probability", "p", 0.1, "random-sparse edge probability")
	cmd.Flags().Int64Var(&in.seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&in.weights, "weights", "int:1:100", "const:W, uniform:MIN:MAX, int:MIN:MAX or exp:RATE")
	cmd.Flags().StringVarP(&in.out, "out", "o", "", "write the graph to a file instead of stdout")
	cmd.Flags().StringVar(&in.format, "format", "", "yaml or edgelist (default: from --out, else edgelist)")

	return cmd
}

func runGenerate(cmd *cobra.Command, in *generateInput) error {
	ctor, err := topology(in)
	if err != nil {
		return err
	}
	weights, err := parseWeights(in.weights)
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(in.seed), weights},
		ctor,
	)
	if err != nil {
		return errors.Wrap(err, "generating graph")
	}
	log.WithFields(log.Fields{
		"topology": in.topology,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"seed":     in.seed,
	}).Debug("generated")

	if in.out != "" && in.format == "" {
		return errors.Wrap(graphio.Save(in.out, g), "saving graph")
	}
	format := graphio.FormatEdgeList
	if in.format != "" {
		format = graphio.Format(in.format)
	}

	return errors.Wrap(graphio.Write(cmd.OutOrStdout(), g, format), "writing graph")
}

func topology(in *generateInput) (builder.Constructor, error) {
	switch in.topology {
	case "path":
		return builder.Path(in.n), nil
	case "cycle":
		return builder.Cycle(in.n), nil
	case "star":
		return builder.Star(in.n), nil
	case "complete":
		return builder.Complete(in.n), nil
	case "grid":
		return builder.Grid(in.rows, in.cols), nil
	case "random-sparse":
		return builder.RandomSparse(in.n, in.p), nil
	case "random-connected":
		return builder.RandomConnected(in.n, in.extra), nil
	default:
		return nil, errors.Errorf("unknown topology %q", in.topology)
	}
}

// parseWeights turns a "kind:arg[:arg]" flag value into a weight option. The
// builder constructors panic on out-of-range arguments, so ranges are
// checked here first.
func parseWeights(def string) (builder.BuilderOption, error) {
	parts := strings.Split(def, ":")
	args := make([]float64, 0, len(parts)-1)
	for _, s := range parts[1:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "weights %q", def)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Errorf("weights %q: %s is not finite", def, s)
		}
		args = append(args, v)
	}

	bad := errors.Errorf("bad weights %q", def)
	switch {
	case parts[0] == "const" && len(args) == 1:
		return builder.WithConstantWeight(args[0]), nil
	case parts[0] == "uniform" && len(args) == 2 && args[0] <= args[1]:
		return builder.WithUniformWeight(args[0], args[1]), nil
	case parts[0] == "int" && len(args) == 2 && args[0] <= args[1]:
		return builder.WithIntegerWeight(int(args[0]), int(args[1])), nil
	case parts[0] == "exp" && len(args) == 1 && args[0] > 0:
		return builder.WithExponentialWeight(args[0]), nil
	default:
		return nil, bad
	}
}
