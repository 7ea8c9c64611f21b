package dataset

// SymptomCount is a symptom column with its value total across all records.
type SymptomCount struct {
	Symptom string
	Total   float64
}

// Summary holds the dataset overview shown after login.
type Summary struct {
	Records               int
	TopDiagnoses          []DiagnosisCount
	SymptomTotals         []SymptomCount
	MeanSymptomsPerRecord float64
}

// Stats computes the dataset overview: the most common diagnoses (top 5),
// per-symptom totals in column order, and the mean number of symptom points
// per record.
func (d *Dataset) Stats() Summary {
	s := Summary{Records: d.Len()}

	diagCounts := make(map[string]int)
	for _, diag := range d.diagnoses {
		diagCounts[diag]++
	}
	s.TopDiagnoses = topCounts(diagCounts, 5)

	totals := make([]float64, len(d.SymptomCols))
	var grand float64
	for _, row := range d.values {
		for i, v := range row {
			totals[i] += v
			grand += v
		}
	}
	for i, col := range d.SymptomCols {
		s.SymptomTotals = append(s.SymptomTotals, SymptomCount{Symptom: col, Total: totals[i]})
	}
	if s.Records > 0 {
		s.MeanSymptomsPerRecord = grand / float64(s.Records)
	}

	return s
}
