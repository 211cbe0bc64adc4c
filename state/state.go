package state

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for state-vector loading.
var (
	// ErrBadValue is returned when a significant line cannot be parsed
	// as a real number.
	ErrBadValue = errors.New("state: malformed state value")

	// ErrCountMismatch is returned when the number of parsed values
	// differs from the expected node count.
	ErrCountMismatch = errors.New("state: state count mismatch")
)

// Load reads expectedN state values from the file at path.
func Load(path string, expectedN int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("state: open %s: %w", path, err)
	}
	defer f.Close()

	vals, err := Read(f, expectedN)
	if err != nil {
		return nil, fmt.Errorf("state: %s: %w", path, err)
	}

	return vals, nil
}

// Read parses one real number per significant line from r and requires
// exactly expectedN of them. Blank lines and '#' comment lines are
// skipped. No clamping or normalization is applied.
func Read(r io.Reader, expectedN int) ([]float64, error) {
	vals, err := ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(vals) != expectedN {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrCountMismatch, len(vals), expectedN)
	}

	return vals, nil
}

// ReadAll parses one real number per significant line from r, without a
// count constraint. Used for history files, whose length is the step
// count of whatever run produced them.
func ReadAll(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	vals := make([]float64, 0, 64)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (line %d)", ErrBadValue, text, line)
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("state: read: %w", err)
	}

	return vals, nil
}

// Save writes vals to the file at path, one value per line. See Write.
func Save(path string, vals []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("state: create %s: %w", path, err)
	}
	if err = Write(f, vals); err != nil {
		f.Close()
		return fmt.Errorf("state: %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("state: close %s: %w", path, err)
	}

	return nil
}

// Write emits one value per line in index order, using the shortest
// decimal form that round-trips float64 exactly.
func Write(w io.Writer, vals []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range vals {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("state: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("state: write: %w", err)
	}

	return nil
}

// Mean returns the arithmetic mean of vals, summed in index order.
// Returns 0 for an empty vector.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return sum / float64(len(vals))
}

// Converged reports whether every component moved by at most tol between
// old and new. Vectors of unequal length are never converged.
// Diagnostic only: the simulation driver does not early-exit on it.
func Converged(old, new []float64, tol float64) bool {
	if len(old) != len(new) {
		return false
	}
	for i := range old {
		if math.Abs(new[i]-old[i]) > tol {
			return false
		}
	}

	return true
}
