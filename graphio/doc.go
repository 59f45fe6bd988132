// Package graphio loads and saves core.Graph values and MST results.
//
// Two graph formats are supported:
//
//   - YAML (gopkg.in/yaml.v3):
//
//     vertices: [a, b, c]      # optional; endpoints are added implicitly
//     edges:
//     - {from: a, to: b, weight: 3}
//     - {from: b, to: c, weight: 1.5}
//
//   - Edge list: one record per line, fields separated by whitespace.
//     "u v w" adds an edge, "u v" adds an edge of weight 1 and "u" adds a
//     lone vertex. Blank lines and lines starting with '#' are skipped.
//
// Loaded graphs are weighted and admit parallel edges and self-loops, so any
// input an MST routine accepts can be read back unchanged. Edge IDs follow
// file order ("e1", "e2", ...).
//
// Parsing does not stop at the first bad line: every malformed record is
// reported, aggregated with github.com/hashicorp/go-multierror, and each one
// wraps ErrBadFormat.
package graphio
