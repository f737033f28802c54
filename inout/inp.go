// SPDX-License-Identifier: MIT

package inout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/sgl1d/config"
	"github.com/katalvlaran/sgl1d/fault"
)

// InputFile is the file name looked up when ReadInp is given a directory.
const InputFile = "schrodinger.inp"

const opReadInp = "ReadInp"

// ReadInp reads a schrodinger.inp file. path may name the file itself or
// the directory holding it; the problem is named after that directory.
func ReadInp(path string) (config.Problem, error) {
	file := path
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		file = filepath.Join(path, InputFile)
	}

	f, err := os.Open(file)
	if err != nil {
		return config.Problem{}, fmt.Errorf("%s: %w", opReadInp, fault.Configuration("path", file, err))
	}
	defer f.Close()

	p, err := ParseInp(f, filepath.Base(filepath.Dir(file)))
	if err != nil {
		return config.Problem{}, fmt.Errorf("%s %s: %w", opReadInp, file, err)
	}

	return p, nil
}

// record is one non-blank, comment-stripped input line.
type record struct {
	line   int
	fields []string
}

// ParseInp parses the legacy layout from r and validates the result.
func ParseInp(r io.Reader, name string) (config.Problem, error) {
	recs, err := scanRecords(r)
	if err != nil {
		return config.Problem{}, err
	}

	p := config.Problem{Name: name}
	next := 0
	take := func(field string, n int) (record, error) {
		if next >= len(recs) {
			return record{}, fault.Configuration(field, nil, fmt.Errorf("unexpected end of file: %w", ErrMalformedInput))
		}
		rec := recs[next]
		next++
		if len(rec.fields) < n {
			return record{}, fault.Configuration(field, rec.line,
				fmt.Errorf("line %d: want %d values, got %d: %w", rec.line, n, len(rec.fields), ErrMalformedInput))
		}

		return rec, nil
	}

	rec, err := take("mass", 1)
	if err != nil {
		return config.Problem{}, err
	}
	if p.Mass, err = parseFloat("mass", rec, 0); err != nil {
		return config.Problem{}, err
	}

	if rec, err = take("xMin/xMax/nPoint", 3); err != nil {
		return config.Problem{}, err
	}
	if p.XMin, err = parseFloat("xMin", rec, 0); err != nil {
		return config.Problem{}, err
	}
	if p.XMax, err = parseFloat("xMax", rec, 1); err != nil {
		return config.Problem{}, err
	}
	if p.NPoint, err = parseInt("nPoint", rec, 2); err != nil {
		return config.Problem{}, err
	}

	if rec, err = take("first/last", 2); err != nil {
		return config.Problem{}, err
	}
	if p.First, err = parseInt("first", rec, 0); err != nil {
		return config.Problem{}, err
	}
	if p.Last, err = parseInt("last", rec, 1); err != nil {
		return config.Problem{}, err
	}

	if rec, err = take("interpol_method", 1); err != nil {
		return config.Problem{}, err
	}
	p.Method = strings.ToLower(rec.fields[0])

	if rec, err = take("interpol_num", 1); err != nil {
		return config.Problem{}, err
	}
	if p.InterpolNum, err = parseInt("interpol_num", rec, 0); err != nil {
		return config.Problem{}, err
	}

	rest := recs[next:]
	if len(rest) != p.InterpolNum {
		return config.Problem{}, fault.Configuration("interpol_num", p.InterpolNum,
			fmt.Errorf("found %d support lines: %w", len(rest), ErrMalformedInput))
	}
	p.XDecl = make([]float64, len(rest))
	p.YDecl = make([]float64, len(rest))
	for i, rec := range rest {
		if len(rec.fields) != 2 {
			return config.Problem{}, fault.Configuration(fmt.Sprintf("x_decl[%d]", i), rec.line,
				fmt.Errorf("line %d: want \"x y\": %w", rec.line, ErrMalformedInput))
		}
		if p.XDecl[i], err = parseFloat(fmt.Sprintf("x_decl[%d]", i), rec, 0); err != nil {
			return config.Problem{}, err
		}
		if p.YDecl[i], err = parseFloat(fmt.Sprintf("y_decl[%d]", i), rec, 1); err != nil {
			return config.Problem{}, err
		}
	}

	if err := p.Validate(); err != nil {
		return config.Problem{}, err
	}

	return p, nil
}

// WriteInp writes p in the legacy layout; ParseInp reads it back unchanged.
func WriteInp(w io.Writer, p config.Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s # mass\n", formatFloat(p.Mass))
	fmt.Fprintf(bw, "%s %s %d # xMin xMax nPoint\n", formatFloat(p.XMin), formatFloat(p.XMax), p.NPoint)
	fmt.Fprintf(bw, "%d %d # first last\n", p.First, p.Last)
	fmt.Fprintf(bw, "%s # interpolation method\n", p.Method)
	fmt.Fprintf(bw, "%d # number of support points\n", len(p.XDecl))
	for i := range p.XDecl {
		fmt.Fprintf(bw, "%s %s\n", formatFloat(p.XDecl[i]), formatFloat(p.YDecl[i]))
	}

	return bw.Flush()
}

func scanRecords(r io.Reader) ([]record, error) {
	var recs []record
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		recs = append(recs, record{line: line, fields: fields})
	}
	if err := sc.Err(); err != nil {
		return nil, fault.Configuration("", nil, fmt.Errorf("%w: %w", ErrMalformedInput, err))
	}

	return recs, nil
}

func parseFloat(field string, rec record, idx int) (float64, error) {
	v, err := strconv.ParseFloat(rec.fields[idx], 64)
	if err != nil {
		return 0, fault.Configuration(field, rec.fields[idx],
			fmt.Errorf("line %d: %w: %w", rec.line, ErrMalformedInput, err))
	}

	return v, nil
}

func parseInt(field string, rec record, idx int) (int, error) {
	v, err := strconv.Atoi(rec.fields[idx])
	if err != nil {
		return 0, fault.Configuration(field, rec.fields[idx],
			fmt.Errorf("line %d: %w: %w", rec.line, ErrMalformedInput, err))
	}

	return v, nil
}

// formatFloat prints the shortest representation that parses back exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
