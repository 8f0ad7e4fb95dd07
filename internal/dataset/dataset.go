// Package dataset loads gene-correlation tables and filters them by score.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one row of the correlation table.
type Record struct {
	Gene   string
	Tissue string
	PCC    float64
}

// Columns names the required header columns.
type Columns struct {
	Gene   string
	Tissue string
	Score  string
}

// DefaultColumns matches the upstream co-expression export format.
func DefaultColumns() Columns {
	return Columns{Gene: "Gene Symbol", Tissue: "Tumor", Score: "PCC"}
}

// Result holds the loaded rows plus parse bookkeeping.
type Result struct {
	Records []Record
	Skipped int // rows dropped for unparseable scores or short records
}

// Load reads a CSV file and extracts the named columns.
// Rows whose score does not parse are skipped, not fatal.
func Load(path string, cols Columns) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	geneIdx, tissueIdx, scoreIdx := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case cols.Gene:
			geneIdx = i
		case cols.Tissue:
			tissueIdx = i
		case cols.Score:
			scoreIdx = i
		}
	}
	if geneIdx < 0 {
		return nil, fmt.Errorf("dataset %s: missing column %q", path, cols.Gene)
	}
	if tissueIdx < 0 {
		return nil, fmt.Errorf("dataset %s: missing column %q", path, cols.Tissue)
	}
	if scoreIdx < 0 {
		return nil, fmt.Errorf("dataset %s: missing column %q", path, cols.Score)
	}

	res := &Result{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		if len(row) <= geneIdx || len(row) <= tissueIdx || len(row) <= scoreIdx {
			res.Skipped++
			continue
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(row[scoreIdx]), 64)
		if err != nil {
			res.Skipped++
			continue
		}

		res.Records = append(res.Records, Record{
			Gene:   strings.TrimSpace(row[geneIdx]),
			Tissue: strings.TrimSpace(row[tissueIdx]),
			PCC:    score,
		})
	}

	return res, nil
}

// Filter keeps records whose score meets the threshold, preserving order.
func Filter(records []Record, threshold float64) []Record {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.PCC >= threshold {
			kept = append(kept, r)
		}
	}
	return kept
}

// Tissues returns the distinct tissue labels in first-seen order.
func Tissues(records []Record) []string {
	seen := make(map[string]bool)
	var tissues []string
	for _, r := range records {
		if !seen[r.Tissue] {
			seen[r.Tissue] = true
			tissues = append(tissues, r.Tissue)
		}
	}
	return tissues
}

// CountByTissue returns the number of records per tissue label.
func CountByTissue(records []Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Tissue]++
	}
	return counts
}

// ByTissue returns the records for one tissue, preserving input order.
func ByTissue(records []Record, tissue string) []Record {
	var out []Record
	for _, r := range records {
		if r.Tissue == tissue {
			out = append(out, r)
		}
	}
	return out
}
