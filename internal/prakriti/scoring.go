package prakriti

import (
	"fmt"
	"sort"
	"strings"
)

// MaxQuestionScore is the highest rating a single statement can receive.
const MaxQuestionScore = 6

// ScoreThreshold is the point difference under which two dosha totals are
// considered close enough to form a mixed constitution.
const ScoreThreshold = 10

// QuestionIDs holds the fixed question sets, one per dosha. Scores are keyed
// by these ids; anything else is rejected by Score.
var QuestionIDs = map[string][]string{
	"vata": {
		"vata_q1", "vata_q2", "vata_q3", "vata_q4", "vata_q5", "vata_q6",
		"vata_q7", "vata_q8", "vata_q9", "vata_q10", "vata_q11", "vata_q12",
	},
	"pitta": {
		"pitta_q1", "pitta_q2", "pitta_q3", "pitta_q4", "pitta_q5", "pitta_q6",
		"pitta_q7", "pitta_q8", "pitta_q9", "pitta_q10", "pitta_q11", "pitta_q12",
	},
	"kapha": {
		"kapha_q1", "kapha_q2", "kapha_q3", "kapha_q4", "kapha_q5", "kapha_q6",
		"kapha_q7", "kapha_q8", "kapha_q9", "kapha_q10", "kapha_q11", "kapha_q12",
	},
}

// Answers maps question id to a score in [0,6] for each dosha question set.
type Answers struct {
	Vata  map[string]int `json:"vata"`
	Pitta map[string]int `json:"pitta"`
	Kapha map[string]int `json:"kapha"`
}

type Totals struct {
	VataTotal  int `json:"vata_total"`
	PittaTotal int `json:"pitta_total"`
	KaphaTotal int `json:"kapha_total"`
}

type Summary struct {
	Dominant    string   `json:"dominant"`
	Mixed       []string `json:"mixed,omitempty"`
	Explanation string   `json:"explanation"`
}

var explanations = map[string]string{
	"Vata":  "You have a Vata-dominant constitution. You tend to be creative, energetic, and adaptable, but may experience anxiety and irregularity. Focus on grounding, routine, and warm, nourishing foods.",
	"Pitta": "You have a Pitta-dominant constitution. You are driven, focused, and intelligent, but may be prone to anger and perfectionism. Focus on cooling practices, moderation, and stress management.",
	"Kapha": "You have a Kapha-dominant constitution. You are stable, loyal, and compassionate, but may struggle with inertia and weight gain. Focus on regular exercise, warm foods, and stimulation.",
}

// Score sums the answered question sets and classifies the constitution.
// Unknown question ids or scores outside [0,6] return an error; completeness
// (all questions answered) is a caller-side concern, see IsComplete.
func Score(answers Answers) (Totals, Summary, error) {
	vata, err := sumDosha("vata", answers.Vata)
	if err != nil {
		return Totals{}, Summary{}, err
	}
	pitta, err := sumDosha("pitta", answers.Pitta)
	if err != nil {
		return Totals{}, Summary{}, err
	}
	kapha, err := sumDosha("kapha", answers.Kapha)
	if err != nil {
		return Totals{}, Summary{}, err
	}

	totals := Totals{VataTotal: vata, PittaTotal: pitta, KaphaTotal: kapha}
	return totals, Classify(totals), nil
}

// Classify turns raw totals into a dominant-constitution summary. It is total
// over its input: every combination of totals yields a non-empty dominant.
func Classify(totals Totals) Summary {
	scored := []struct {
		dosha string
		score int
	}{
		{"Vata", totals.VataTotal},
		{"Pitta", totals.PittaTotal},
		{"Kapha", totals.KaphaTotal},
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	maxScore := scored[0].score
	secondScore := scored[1].score
	minScore := scored[2].score

	isClose := func(a, b int) bool {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d <= ScoreThreshold
	}

	switch {
	case maxScore == minScore || (isClose(maxScore, secondScore) && isClose(maxScore, minScore)):
		return Summary{
			Dominant:    "Tridoshic",
			Mixed:       []string{"Vata", "Pitta", "Kapha"},
			Explanation: "You have a Tridoshic constitution with all three doshas balanced. This is rare and indicates excellent health potential, though you may need to maintain balance carefully.",
		}
	case isClose(maxScore, secondScore):
		mixed := []string{scored[0].dosha, scored[1].dosha}
		dominant := strings.Join(mixed, "-")
		return Summary{
			Dominant: dominant,
			Mixed:    mixed,
			Explanation: fmt.Sprintf(
				"You have a %s constitution. This mixed constitution creates a unique blend of characteristics from both doshas. You'll need personalized care that addresses both.",
				dominant,
			),
		}
	default:
		dominant := scored[0].dosha
		return Summary{
			Dominant:    dominant,
			Explanation: explanations[dominant],
		}
	}
}

// IsComplete reports whether every question in every set carries a score > 0.
func IsComplete(answers Answers) bool {
	sets := map[string]map[string]int{
		"vata":  answers.Vata,
		"pitta": answers.Pitta,
		"kapha": answers.Kapha,
	}
	for dosha, ids := range QuestionIDs {
		for _, id := range ids {
			if sets[dosha][id] <= 0 {
				return false
			}
		}
	}
	return true
}

func sumDosha(dosha string, scores map[string]int) (int, error) {
	known := make(map[string]bool, len(QuestionIDs[dosha]))
	for _, id := range QuestionIDs[dosha] {
		known[id] = true
	}

	total := 0
	for id, score := range scores {
		if !known[id] {
			return 0, fmt.Errorf("unknown %s question id: %s", dosha, id)
		}
		if score < 0 || score > MaxQuestionScore {
			return 0, fmt.Errorf("score for %s out of range [0,%d]: %d", id, MaxQuestionScore, score)
		}
		total += score
	}
	return total, nil
}
