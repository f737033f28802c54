// SPDX-License-Identifier: MIT

package inout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sgl1d/fault"
)

// tableFormat is the per-value format of every output table.
const tableFormat = "%.10e"

// WriteTable writes m row by row, values separated by one space.
func WriteTable(w io.Writer, m mat.Matrix) error {
	bw := bufio.NewWriter(w)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, tableFormat, m.At(i, j))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ReadTable reads a whitespace-separated numeric table. Blank lines and
// '#' comments are skipped; every row must have the same width.
func ReadTable(r io.Reader) (*mat.Dense, error) {
	var (
		data  []float64
		width int
		rows  int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if rows == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fault.Configuration("line", line,
				fmt.Errorf("want %d columns, got %d: %w", width, len(fields), ErrMalformedTable))
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fault.Configuration("line", line, fmt.Errorf("%w: %w", ErrMalformedTable, err))
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fault.Configuration("", nil, fmt.Errorf("%w: %w", ErrMalformedTable, err))
	}
	if rows == 0 {
		return nil, fault.Configuration("", nil, ErrEmptyTable)
	}

	return mat.NewDense(rows, width, data), nil
}

// ReadTableFile is ReadTable on the named file.
func ReadTableFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fault.Configuration("path", path, err)
	}
	defer f.Close()

	m, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
