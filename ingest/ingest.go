package ingest

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tonewave/digraph"
)

// Sentinel errors for data preparation.
var (
	// ErrBadEdgeLine is returned when an edge line has fewer than two
	// whitespace-separated tokens.
	ErrBadEdgeLine = errors.New("ingest: malformed edge line")

	// ErrMissingColumn is returned when the scores CSV lacks a user_id
	// or sentiment column.
	ErrMissingColumn = errors.New("ingest: missing CSV column")

	// ErrBadScore is returned when a sentiment cell does not parse as a
	// real number.
	ErrBadScore = errors.New("ingest: malformed sentiment value")
)

// Dataset is a raw edge list re-indexed onto dense zero-based nodes.
// Nodes holds original IDs in index order; Index is the inverse mapping.
type Dataset struct {
	Nodes []string
	Index map[string]int
	Edges []digraph.Edge
}

// ReadEdgeList parses whitespace-separated "u v" pairs with arbitrary
// string IDs from r. Blank lines and '#' comments are skipped; extra
// tokens per line are ignored. Dense indices are assigned in first-seen
// order (sources before targets within a line), and duplicate edges are
// preserved.
func ReadEdgeList(r io.Reader) (*Dataset, error) {
	d := &Dataset{Index: make(map[string]int)}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %q (line %d)", ErrBadEdgeLine, text, line)
		}
		u := d.index(fields[0])
		v := d.index(fields[1])
		d.Edges = append(d.Edges, digraph.Edge{U: u, V: v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read: %w", err)
	}

	return d, nil
}

// index returns the dense index of id, assigning the next free one on
// first sight.
func (d *Dataset) index(id string) int {
	if i, ok := d.Index[id]; ok {
		return i
	}
	i := len(d.Nodes)
	d.Index[id] = i
	d.Nodes = append(d.Nodes, id)

	return i
}

// N returns the number of distinct nodes seen.
func (d *Dataset) N() int { return len(d.Nodes) }

// Graph builds the predecessor-list digraph over the dataset's dense
// indices.
func (d *Dataset) Graph() (*digraph.Digraph, error) {
	return digraph.FromEdges(d.N(), d.Edges)
}

// States maps per-user scores onto node indices in index order. Users
// absent from scores receive the neutral tone 0.0.
func (d *Dataset) States(scores map[string]float64) []float64 {
	vals := make([]float64, d.N())
	for i, id := range d.Nodes {
		vals[i] = scores[id] // zero value is the documented default
	}

	return vals
}

// WriteIndex persists the original-ID → dense-index mapping as JSON, the
// node_index companion file of every prepared graph.
func (d *Dataset) WriteIndex(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(d.Index); err != nil {
		return fmt.Errorf("ingest: write index: %w", err)
	}

	return nil
}

// ReadScoresCSV parses a per-user sentiment CSV from r. The header must
// contain user_id and sentiment columns (matched case-insensitively);
// column order and extra columns are irrelevant. Duplicate users keep
// the last row's score.
func ReadScoresCSV(r io.Reader) (map[string]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged exports happen; validate per row

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: read CSV header: %w", err)
	}
	userCol, scoreCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "user_id":
			userCol = i
		case "sentiment":
			scoreCol = i
		}
	}
	if userCol < 0 {
		return nil, fmt.Errorf("%w: user_id", ErrMissingColumn)
	}
	if scoreCol < 0 {
		return nil, fmt.Errorf("%w: sentiment", ErrMissingColumn)
	}

	scores := make(map[string]float64)
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read CSV: %w", err)
		}
		row++
		if userCol >= len(rec) || scoreCol >= len(rec) {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrMissingColumn, row, len(rec))
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(rec[scoreCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (row %d)", ErrBadScore, rec[scoreCol], row)
		}
		scores[rec[userCol]] = score
	}

	return scores, nil
}
