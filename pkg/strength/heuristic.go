// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "math"

// HeuristicGuessesPerSecond is the attack rate assumed by the HeuristicScorer.
const HeuristicGuessesPerSecond = 1e9

// HeuristicScorer scores passwords locally from their length and character classes.
type HeuristicScorer struct{}

func (HeuristicScorer) Name() string {
	return "heuristic"
}

func (HeuristicScorer) Severities() SeverityTable {
	return HeuristicSeverities
}

func (HeuristicScorer) Score(_ string, profile Profile) Result {
	score := 0
	if profile.Length >= 8 {
		score++
	}
	if profile.Length >= 12 {
		score++
	}
	if profile.Count >= 2 {
		score++
	}
	if profile.Count >= 4 {
		score++
	}

	entropy := charsetEntropy(profile)
	guesses := math.Pow(2, entropy)
	severity := HeuristicSeverities.Lookup(score)

	return Result{
		Score:   score,
		Label:   severity.Label,
		Class:   severity.Class,
		Entropy: entropy,
		Guesses: finite(guesses),
		CrackTimes: []CrackTime{{
			Scenario: FastOffline,
			Rate:     "1e9/s",
			Display:  FormatDuration(guesses / HeuristicGuessesPerSecond),
		}},
	}
}

// charsetEntropy is length * log2(charset), or 0 when no class is present.
func charsetEntropy(profile Profile) float64 {
	charset := profile.Charset()
	if charset == 0 || profile.Length == 0 {
		return 0
	}

	return float64(profile.Length) * math.Log2(float64(charset))
}

// finite clamps +Inf to the largest float so results stay JSON encodable.
func finite(v float64) float64 {
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	if math.IsNaN(v) {
		return 0
	}

	return v
}
