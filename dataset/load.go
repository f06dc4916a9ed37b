package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// LoadOptions configures CSV/TSV parsing.
//
// Fields:
//   - Delimiter — field separator; 0 means comma (FromFile switches to tab
//     for .tsv/.tab extensions).
//   - Drop — column names to discard, e.g. row-label or categorical columns
//     that cannot enter a numeric benchmark.
type LoadOptions struct {
	Delimiter rune
	Drop      []string
}

// DefaultLoadOptions returns the standard comma-separated configuration.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Delimiter: ','}
}

// FromCSV parses a header-row numeric table from r.
//
// Contracts:
//   - The first record is the header; every later record is one observation.
//   - Every retained cell must parse as a float; failures surface as a
//     positioned ParseError.
//   - The resulting Dataset satisfies the no-missing-values invariant.
//
// Complexity: O(n·p) time and memory.
func FromCSV(r io.Reader, opts *LoadOptions) (*Dataset, error) {
	o := DefaultLoadOptions()
	if opts != nil {
		o = *opts
		if o.Delimiter == 0 {
			o.Delimiter = ','
		}
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Delimiter
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyDataset
	}

	header := records[0]
	keep := keepIndexes(header, o.Drop)
	if len(keep) == 0 {
		return nil, ErrEmptyDataset
	}

	n := len(records) - 1
	p := len(keep)
	data := make([]float64, n*p)
	names := make([]string, p)
	for j, src := range keep {
		names[j] = strings.TrimSpace(header[src])
	}

	var i, j int
	for i = 0; i < n; i++ {
		row := records[i+1]
		for j = 0; j < p; j++ {
			src := keep[j]
			if src >= len(row) {
				return nil, ParseError{Row: i + 1, Col: src + 1, Field: ""}
			}
			field := strings.TrimSpace(row[src])
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, ParseError{Row: i + 1, Col: src + 1, Field: field}
			}
			data[i*p+j] = v
		}
	}

	return New(names, mat.NewDense(n, p, data))
}

// FromFile loads a CSV or TSV table from path. When opts leaves Delimiter
// unset, .tsv and .tab extensions select a tab separator.
func FromFile(path string, opts *LoadOptions) (*Dataset, error) {
	o := DefaultLoadOptions()
	if opts != nil {
		o = *opts
	}
	if o.Delimiter == 0 {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".tsv", ".tab":
			o.Delimiter = '\t'
		default:
			o.Delimiter = ','
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return FromCSV(f, &o)
}

// FromURL downloads url once and parses the body as a CSV table. There is no
// retry policy: the registry datasets are small and the call is one-shot.
func FromURL(ctx context.Context, url string, opts *LoadOptions) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: request %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset: fetch %s: unexpected status %s", url, resp.Status)
	}

	return FromCSV(resp.Body, opts)
}

// keepIndexes maps the header to the retained column indexes, preserving
// header order and skipping every name listed in drop.
func keepIndexes(header, drop []string) []int {
	dropped := make(map[string]struct{}, len(drop))
	for _, name := range drop {
		dropped[strings.TrimSpace(name)] = struct{}{}
	}
	keep := make([]int, 0, len(header))
	for idx, name := range header {
		if _, skip := dropped[strings.TrimSpace(name)]; skip {
			continue
		}
		keep = append(keep, idx)
	}
	return keep
}
