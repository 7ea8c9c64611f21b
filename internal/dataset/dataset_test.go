package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `fever,cough,fatigue,diagnosis
1,1,0,Flu
1,0,1,Flu
0,1,0,Cold
1,1,1,Flu
0,0,1,Fatigue Syndrome
`

func sampleDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	return ds
}

func TestNew_ParsesHeaderAndRows(t *testing.T) {
	ds := sampleDataset(t)

	assert.Equal(t, []string{"fever", "cough", "fatigue"}, ds.SymptomCols)
	assert.Equal(t, 5, ds.Len())
}

func TestNew_RequiresDiagnosisColumn(t *testing.T) {
	_, err := New(strings.NewReader("a,b\n1,2\n"))
	assert.ErrorContains(t, err, `no "diagnosis" column`)
}

func TestNew_EmptyInput(t *testing.T) {
	_, err := New(strings.NewReader(""))
	assert.ErrorContains(t, err, "empty dataset")
}

func TestNew_NonNumericValuesCoercedToZero(t *testing.T) {
	ds, err := New(strings.NewReader("fever,diagnosis\nn/a,Flu\n1,Flu\n"))
	require.NoError(t, err)

	got := ds.Suggest([]string{"fever"}, 0, 3)
	assert.Equal(t, 1, got.MatchedCount, "non-numeric cell must count as absent")
}

func TestNormalizeSymptomName(t *testing.T) {
	assert.Equal(t, "loss_smell", NormalizeSymptomName("  Loss Smell "))
	assert.Equal(t, "fever", NormalizeSymptomName("FEVER"))
}

func TestParseSymptomInput(t *testing.T) {
	got := ParseSymptomInput(" Fever, , muscle pain ,cough")
	assert.Equal(t, []string{"fever", "muscle_pain", "cough"}, got)

	assert.Nil(t, ParseSymptomInput("  "))
}

func TestSuggest_RanksMatchingDiagnoses(t *testing.T) {
	ds := sampleDataset(t)

	got := ds.Suggest([]string{"fever", "cough"}, 0, 3)
	assert.Equal(t, 2, got.MatchedCount)
	assert.Equal(t, []DiagnosisCount{{Diagnosis: "Flu", Count: 2}}, got.Diagnoses)
	assert.Empty(t, got.Notes)
}

func TestSuggest_TopKAndTies(t *testing.T) {
	ds := sampleDataset(t)

	got := ds.Suggest([]string{"fatigue"}, 0, 1)
	assert.Equal(t, 3, got.MatchedCount)
	// Flu (2) outranks Fatigue Syndrome (1); only top-1 kept
	assert.Equal(t, []DiagnosisCount{{Diagnosis: "Flu", Count: 2}}, got.Diagnoses)
}

func TestSuggest_UnknownSymptomsNoted(t *testing.T) {
	ds := sampleDataset(t)

	got := ds.Suggest([]string{"fever", "glowing"}, 0, 3)
	assert.Equal(t, 3, got.MatchedCount)
	require.Len(t, got.Notes, 1)
	assert.Contains(t, got.Notes[0], "glowing")
}

func TestSuggest_NoResolvedSymptoms(t *testing.T) {
	ds := sampleDataset(t)

	got := ds.Suggest([]string{"glowing"}, 0, 3)
	assert.Zero(t, got.MatchedCount)
	assert.Contains(t, got.Notes[len(got.Notes)-1], "matched dataset symptom columns")
}

func TestSuggest_NoInput(t *testing.T) {
	ds := sampleDataset(t)

	got := ds.Suggest(nil, 0, 3)
	assert.Zero(t, got.MatchedCount)
	assert.Equal(t, []string{"No symptoms entered."}, got.Notes)
}

func TestSuggest_Threshold(t *testing.T) {
	ds := sampleDataset(t)

	got := ds.Suggest([]string{"fever"}, 1, 3)
	assert.Zero(t, got.MatchedCount, "values equal to the threshold are not matches")
}

func TestStats(t *testing.T) {
	ds := sampleDataset(t)

	s := ds.Stats()
	assert.Equal(t, 5, s.Records)
	assert.Equal(t, []DiagnosisCount{
		{Diagnosis: "Flu", Count: 3},
		{Diagnosis: "Cold", Count: 1},
		{Diagnosis: "Fatigue Syndrome", Count: 1},
	}, s.TopDiagnoses)
	assert.Equal(t, []SymptomCount{
		{Symptom: "fever", Total: 3},
		{Symptom: "cough", Total: 3},
		{Symptom: "fatigue", Total: 3},
	}, s.SymptomTotals)
	assert.InDelta(t, 1.8, s.MeanSymptomsPerRecord, 1e-9)
}
