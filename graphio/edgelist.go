package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/boruvka/core"
)

// defaultWeight is the weight of an edge record without a weight field.
const defaultWeight = 1

// ReadEdgeList parses the edge list format from r.
func ReadEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(graphOptions...)
	var result *multierror.Error

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := addRecord(g, strings.Fields(text)); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: line %d: %v", ErrBadFormat, line, err))
		}
	}
	if err := sc.Err(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return g, nil
}

func addRecord(g *core.Graph, fields []string) error {
	switch len(fields) {
	case 1:
		return g.AddVertex(fields[0])
	case 2:
		_, err := g.AddEdge(fields[0], fields[1], defaultWeight)
		return err
	case 3:
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("weight %q: %v", fields[2], err)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("weight %q is not finite", fields[2])
		}
		_, err = g.AddEdge(fields[0], fields[1], w)
		return err
	default:
		return fmt.Errorf("want 1 to 3 fields, got %d", len(fields))
	}
}

// WriteEdgeList writes g as an edge list: edges in ID order, then every
// vertex without an edge on a line of its own.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s %s %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 0 {
			fmt.Fprintln(bw, v)
		}
	}

	return bw.Flush()
}
