package cli

import (
	"fmt"

	"symptomexplorer/internal/dataset"
)

func (a *App) showStats() {
	if a.data == nil {
		fmt.Fprintln(a.out, "Dataset is not available.")
		return
	}

	s := a.data.Stats()
	fmt.Fprintf(a.out, "\nRecords: %d\n", s.Records)

	fmt.Fprintln(a.out, "\nMost common diagnoses:")
	for _, d := range s.TopDiagnoses {
		fmt.Fprintf(a.out, "  %-30s %d\n", d.Diagnosis, d.Count)
	}

	fmt.Fprintln(a.out, "\nSymptom totals:")
	for _, sc := range s.SymptomTotals {
		fmt.Fprintf(a.out, "  %-20s %.0f\n", sc.Symptom, sc.Total)
	}

	fmt.Fprintf(a.out, "\nAverage number of symptoms per record: %.2f\n", s.MeanSymptomsPerRecord)
}

func (a *App) symptomChecker() error {
	if a.data == nil {
		fmt.Fprintln(a.out, "Dataset is not available.")
		return nil
	}

	fmt.Fprintln(a.out, "\n--- Symptom checker (educational, not medical advice) ---")
	fmt.Fprintln(a.out, "Known symptoms:")
	for _, col := range a.data.SymptomCols {
		fmt.Fprintf(a.out, "  %s\n", col)
	}

	threshold, err := getFloat(a.reader, "Symptom threshold (present if > threshold)", 0, a.out)
	if err != nil {
		return err
	}
	raw, err := a.getLine("Symptoms (comma-separated, e.g., fever,cough): ")
	if err != nil {
		return err
	}

	result := a.data.Suggest(dataset.ParseSymptomInput(raw), threshold, 3)

	for _, n := range result.Notes {
		fmt.Fprintln(a.out, "NOTE:", n)
	}
	if result.MatchedCount > 0 {
		fmt.Fprintf(a.out, "\nMatched records: %d\n", result.MatchedCount)
		fmt.Fprintln(a.out, "Suggested diagnoses (most frequent among matches):")
		for _, d := range result.Diagnoses {
			fmt.Fprintf(a.out, "  %s: %d\n", d.Diagnosis, d.Count)
		}
	}
	return nil
}
