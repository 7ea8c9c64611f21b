// Package dataset loads the symptom/diagnosis CSV and answers read-only
// queries over it: summary statistics and the rule-based symptom checker.
// It holds no credential state; access is gated by the caller after login.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DiagnosisColumn is the label column expected in the CSV header
// (matched case-insensitively).
const DiagnosisColumn = "diagnosis"

// Dataset is an immutable in-memory copy of the tabular dataset. Every
// column except the diagnosis label is treated as a symptom column; values
// that do not parse as numbers count as 0, mirroring how the data is
// produced (0/1 presence flags with occasional blanks).
type Dataset struct {
	SymptomCols []string

	diagnoses []string    // per-row diagnosis label
	values    [][]float64 // per-row symptom values, aligned with SymptomCols
}

// Load reads the dataset from a CSV file on disk.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return ds, nil
}

// New parses a CSV stream. The first record is the header and must contain
// a diagnosis column.
func New(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty dataset")
		}
		return nil, err
	}

	diagIdx := -1
	var symptomCols []string
	var symptomIdx []int
	for i, col := range header {
		name := strings.TrimSpace(col)
		if strings.EqualFold(name, DiagnosisColumn) {
			diagIdx = i
			continue
		}
		symptomCols = append(symptomCols, NormalizeSymptomName(name))
		symptomIdx = append(symptomIdx, i)
	}
	if diagIdx < 0 {
		return nil, fmt.Errorf("dataset has no %q column", DiagnosisColumn)
	}

	ds := &Dataset{SymptomCols: symptomCols}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make([]float64, len(symptomIdx))
		for j, idx := range symptomIdx {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
			if err != nil {
				v = 0
			}
			row[j] = v
		}
		ds.diagnoses = append(ds.diagnoses, strings.TrimSpace(record[diagIdx]))
		ds.values = append(ds.values, row)
	}

	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.diagnoses)
}

// NormalizeSymptomName converts a symptom name to a column-like token
// (lowercase, underscores for spaces).
func NormalizeSymptomName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// ParseSymptomInput splits a comma-separated symptom list into normalized
// tokens, dropping empty entries.
func ParseSymptomInput(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, NormalizeSymptomName(p))
	}
	return out
}
