// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

// MaxScore is the strongest score any scorer reports.
const MaxScore = 4

// Severity is the label and visual class shown for a score.
type Severity struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// SeverityTable has exactly one entry per score, ordered from 0 to MaxScore.
type SeverityTable [MaxScore + 1]Severity

// Lookup returns the entry for score, or the score 0 entry if score is out of range.
func (t SeverityTable) Lookup(score int) Severity {
	if score < 0 || score > MaxScore {
		return t[0]
	}

	return t[score]
}

var (
	// HeuristicSeverities is used only by the HeuristicScorer.
	HeuristicSeverities = SeverityTable{
		{Label: "Weak", Class: "bg-red-500"},
		{Label: "Weak", Class: "bg-red-500"},
		{Label: "Moderate", Class: "bg-yellow-500"},
		{Label: "Strong", Class: "bg-green-500"},
		{Label: "Very Strong", Class: "bg-blue-500"},
	}

	// ModelSeverities is used only by the ModelScorer.
	ModelSeverities = SeverityTable{
		{Label: "Very Weak", Class: "bg-red-700"},
		{Label: "Weak", Class: "bg-red-500"},
		{Label: "Fair", Class: "bg-yellow-500"},
		{Label: "Good", Class: "bg-green-500"},
		{Label: "Strong", Class: "bg-green-600"},
	}

	// Unavailable is reported when the model scorer has no estimator.
	Unavailable = Severity{Label: "Unavailable", Class: "bg-gray-400"}

	// resetClass is the indicator class for an empty input.
	resetClass = "bg-red-600"
)
