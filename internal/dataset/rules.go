package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// DiagnosisCount is a diagnosis label with its record count among matches.
type DiagnosisCount struct {
	Diagnosis string
	Count     int
}

// Suggestion is the result of the rule-based symptom checker. This is an
// educational record filter, not a medical diagnosis.
type Suggestion struct {
	MatchedCount int
	Diagnoses    []DiagnosisCount
	Notes        []string
}

// Suggest filters records where every entered symptom value exceeds the
// threshold and ranks the most frequent diagnoses among the matches.
// Unknown symptoms are ignored with a note.
func (d *Dataset) Suggest(userSymptoms []string, threshold float64, topK int) Suggestion {
	if len(userSymptoms) == 0 {
		return Suggestion{Notes: []string{"No symptoms entered."}}
	}

	colIdx := make(map[string]int, len(d.SymptomCols))
	for i, c := range d.SymptomCols {
		colIdx[c] = i
	}

	var resolved []int
	var unknown []string
	for _, s := range userSymptoms {
		if i, ok := colIdx[s]; ok {
			resolved = append(resolved, i)
		} else {
			unknown = append(unknown, s)
		}
	}

	var notes []string
	if len(unknown) > 0 {
		notes = append(notes, fmt.Sprintf("Ignored unknown symptom(s): %s", strings.Join(unknown, ", ")))
	}
	if len(resolved) == 0 {
		notes = append(notes, "None of the entered symptoms matched dataset symptom columns.")
		return Suggestion{Notes: notes}
	}

	counts := make(map[string]int)
	matched := 0
	for row, vals := range d.values {
		all := true
		for _, i := range resolved {
			if vals[i] <= threshold {
				all = false
				break
			}
		}
		if all {
			matched++
			counts[d.diagnoses[row]]++
		}
	}

	if matched == 0 {
		notes = append(notes, "No matching records found for that symptom set.")
		return Suggestion{Notes: notes}
	}

	return Suggestion{
		MatchedCount: matched,
		Diagnoses:    topCounts(counts, topK),
		Notes:        notes,
	}
}

// topCounts ranks labels by count descending, ties alphabetical, keeping k.
func topCounts(counts map[string]int, k int) []DiagnosisCount {
	ranked := make([]DiagnosisCount, 0, len(counts))
	for label, n := range counts {
		ranked = append(ranked, DiagnosisCount{Diagnosis: label, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Diagnosis < ranked[j].Diagnosis
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
