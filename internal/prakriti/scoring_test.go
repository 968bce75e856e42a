package prakriti

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullAnswers(vata, pitta, kapha int) Answers {
	fill := func(dosha string, score int) map[string]int {
		m := make(map[string]int)
		for _, id := range QuestionIDs[dosha] {
			m[id] = score
		}
		return m
	}
	return Answers{
		Vata:  fill("vata", vata),
		Pitta: fill("pitta", pitta),
		Kapha: fill("kapha", kapha),
	}
}

func TestScoreTotalsWithinBounds(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
	}{
		{"all zeros", fullAnswers(0, 0, 0)},
		{"all max", fullAnswers(6, 6, 6)},
		{"mixed", fullAnswers(3, 1, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, summary, err := Score(tt.answers)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, totals.VataTotal, 0)
			assert.LessOrEqual(t, totals.VataTotal, MaxQuestionScore*len(QuestionIDs["vata"]))
			assert.GreaterOrEqual(t, totals.PittaTotal, 0)
			assert.LessOrEqual(t, totals.PittaTotal, MaxQuestionScore*len(QuestionIDs["pitta"]))
			assert.GreaterOrEqual(t, totals.KaphaTotal, 0)
			assert.LessOrEqual(t, totals.KaphaTotal, MaxQuestionScore*len(QuestionIDs["kapha"]))
			assert.NotEmpty(t, summary.Dominant)
			assert.NotEmpty(t, summary.Explanation)
		})
	}
}

func TestClassifySingleDominant(t *testing.T) {
	summary := Classify(Totals{VataTotal: 72, PittaTotal: 10, KaphaTotal: 8})
	assert.Equal(t, "Vata", summary.Dominant)
	assert.Contains(t, summary.Explanation, "creative")
	assert.Empty(t, summary.Mixed)
}

func TestClassifyDualConstitution(t *testing.T) {
	summary := Classify(Totals{VataTotal: 40, PittaTotal: 38, KaphaTotal: 5})
	assert.Equal(t, "Vata-Pitta", summary.Dominant)
	assert.Equal(t, []string{"Vata", "Pitta"}, summary.Mixed)
	assert.Contains(t, summary.Explanation, "mixed constitution")
}

func TestClassifyTridoshic(t *testing.T) {
	tests := []struct {
		name   string
		totals Totals
	}{
		{"exact three-way tie", Totals{VataTotal: 30, PittaTotal: 30, KaphaTotal: 30}},
		{"all within threshold", Totals{VataTotal: 40, PittaTotal: 35, KaphaTotal: 31}},
		{"degenerate all zeros", Totals{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Classify(tt.totals)
			assert.Equal(t, "Tridoshic", summary.Dominant)
			assert.Equal(t, []string{"Vata", "Pitta", "Kapha"}, summary.Mixed)
		})
	}
}

func TestClassifyDominantNeverEmpty(t *testing.T) {
	// Sweep a coarse grid of totals; dominant must always be a dosha name,
	// a hyphenated pair, or Tridoshic.
	valid := map[string]bool{
		"Vata": true, "Pitta": true, "Kapha": true,
		"Vata-Pitta": true, "Pitta-Vata": true,
		"Vata-Kapha": true, "Kapha-Vata": true,
		"Pitta-Kapha": true, "Kapha-Pitta": true,
		"Tridoshic": true,
	}
	for v := 0; v <= 72; v += 9 {
		for p := 0; p <= 72; p += 9 {
			for k := 0; k <= 72; k += 9 {
				summary := Classify(Totals{VataTotal: v, PittaTotal: p, KaphaTotal: k})
				assert.True(t, valid[summary.Dominant], "unexpected dominant %q for %d/%d/%d", summary.Dominant, v, p, k)
			}
		}
	}
}

func TestScoreRejectsMalformedInput(t *testing.T) {
	unknown := fullAnswers(3, 3, 3)
	unknown.Vata["vata_q99"] = 2
	_, _, err := Score(unknown)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown vata question id")

	outOfRange := fullAnswers(3, 3, 3)
	outOfRange.Kapha["kapha_q1"] = 7
	_, _, err = Score(outOfRange)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	negative := fullAnswers(3, 3, 3)
	negative.Pitta["pitta_q2"] = -1
	_, _, err = Score(negative)
	assert.Error(t, err)
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete(fullAnswers(1, 1, 1)))
	assert.False(t, IsComplete(fullAnswers(0, 1, 1)))

	partial := fullAnswers(2, 2, 2)
	delete(partial.Vata, "vata_q7")
	assert.False(t, IsComplete(partial))
}
