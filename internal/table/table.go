// SPDX-License-Identifier: MIT

// Package table reads and writes member tables: whitespace-delimited numeric
// text with one row per PDF member (row 0 = central) and one column per
// observable. Blank lines and lines starting with '#' are skipped.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pdfunc/matrix"
)

// ErrMalformed is returned for unparsable numbers, ragged rows or empty input.
var ErrMalformed = errors.New("table: malformed member table")

// Read parses a member table into a members×observables Dense.
func Read(r io.Reader) (*matrix.Dense, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrMalformed, line, j+1, f)
			}
			row[j] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformed, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("table: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}

	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err = matrix.ValidateFinite(d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return d, nil
}

// Write prints m with one row per line, columns separated by a space, in
// %.8e so that Read(Write(m)) keeps every value to nine significant digits.
func Write(w io.Writer, m *matrix.Dense) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%.8e", m.AtUnchecked(i, j)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
