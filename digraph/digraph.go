// digraph.go — construction and flat-file loading of the
// predecessor-list graph.

package digraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FromEdges builds a Digraph over n nodes from the given edge slice.
// Predecessor lists preserve the slice order of the edges into each node.
// Returns ErrEdgeRange if any endpoint lies outside [0, n), or
// ErrBadHeader if n is negative.
func FromEdges(n int, edges []Edge) (*Digraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrBadHeader, n)
	}
	// First pass: in-degrees.
	indeg := make([]int, n)
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) with N=%d", ErrEdgeRange, e.U, e.V, n)
		}
		indeg[e.V]++
	}
	// Prefix sums into offsets.
	offsets := make([]int, n+1)
	for v := 0; v < n; v++ {
		offsets[v+1] = offsets[v] + indeg[v]
	}
	// Second pass: fill predecessor slots in edge order.
	preds := make([]int, offsets[n])
	next := make([]int, n)
	copy(next, offsets[:n])
	for _, e := range edges {
		preds[next[e.V]] = e.U
		next[e.V]++
	}

	return &Digraph{n: n, offsets: offsets, preds: preds}, nil
}

// Load reads a graph file from path. See Read for the format.
func Load(path string) (*Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("digraph: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("digraph: %s: %w", path, err)
	}

	return g, nil
}

// Read parses the flat graph format from r:
//
//	N M
//	u v
//	u v
//	...
//
// The first significant line must hold two integers N and M; M is
// advisory only (capacity hint) and is not checked against the number of
// edge lines actually read. Blank lines and lines starting with '#' are
// skipped. Each remaining line must begin with two integers u and v,
// both in [0, N); extra tokens on a line are ignored.
func Read(r io.Reader) (*Digraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, m, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, m)
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		u, v, err := parseEdge(text)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, line)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) with N=%d (line %d)", ErrEdgeRange, u, v, n, line)
		}
		edges = append(edges, Edge{U: u, V: v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("digraph: read: %w", err)
	}

	return FromEdges(n, edges)
}

// readHeader scans past blanks/comments to the "N M" line.
func readHeader(sc *bufio.Scanner) (n, m int, err error) {
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, text)
		}
		if n, err = strconv.Atoi(fields[0]); err != nil {
			return 0, 0, fmt.Errorf("%w: node count %q", ErrBadHeader, fields[0])
		}
		if m, err = strconv.Atoi(fields[1]); err != nil {
			return 0, 0, fmt.Errorf("%w: edge count %q", ErrBadHeader, fields[1])
		}
		if n < 0 {
			return 0, 0, fmt.Errorf("%w: negative node count %d", ErrBadHeader, n)
		}
		if m < 0 {
			m = 0 // advisory only; never trust it as capacity
		}

		return n, m, nil
	}
	if err = sc.Err(); err != nil {
		return 0, 0, fmt.Errorf("digraph: read: %w", err)
	}

	return 0, 0, fmt.Errorf("%w: empty input", ErrBadHeader)
}

// parseEdge extracts the leading "u v" pair from an edge line.
func parseEdge(text string) (u, v int, err error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadEdge, text)
	}
	if u, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: source %q", ErrBadEdge, fields[0])
	}
	if v, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: target %q", ErrBadEdge, fields[1])
	}

	return u, v, nil
}
