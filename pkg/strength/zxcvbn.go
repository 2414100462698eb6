// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"math"

	"github.com/nbutton23/zxcvbn-go"
)

// Attack rates in guesses per second for each scenario.
var scenarioSpeeds = map[Scenario]float64{
	SlowOffline:       1e4,
	FastOffline:       1e10,
	OnlineUnthrottled: 10,
	OnlineThrottled:   100.0 / 3600,
}

// MaxEstimateRunes is the longest prefix handed to the zxcvbn matcher. Matching time grows
// super-linearly with length, every rune past the prefix adds log2(charset) bits instead.
const MaxEstimateRunes = 100

// ZxcvbnEstimator estimates guesses with the zxcvbn pattern matcher. UserInputs are extra words
// (user name, email, site name) that the matcher treats as a dictionary.
type ZxcvbnEstimator struct {
	UserInputs []string
}

func (z ZxcvbnEstimator) Estimate(password string) Estimate {
	var entropy float64
	var score int
	if password != "" {
		prefix, extra := splitEstimate(password)
		// zxcvbn-go reports entropy as log2 of the guesses needed.
		match := zxcvbn.PasswordStrength(prefix, z.UserInputs)
		entropy, score = match.Entropy+extra, match.Score
	}

	guesses := finite(math.Pow(2, entropy))
	crackTimes := make(map[Scenario]string, len(scenarioSpeeds))
	for s, speed := range scenarioSpeeds {
		crackTimes[s] = DisplayTime(guesses / speed)
	}

	return Estimate{
		Score:        score,
		Guesses:      guesses,
		GuessesLog10: entropy * math.Log10(2),
		CrackTimes:   crackTimes,
	}
}

func (z ZxcvbnEstimator) WithUserInputs(inputs []string) Estimator {
	merged := make([]string, 0, len(z.UserInputs)+len(inputs))
	merged = append(merged, z.UserInputs...)
	merged = append(merged, inputs...)

	return ZxcvbnEstimator{UserInputs: merged}
}

// splitEstimate cuts password to MaxEstimateRunes and returns the bits of the rest, counted at
// the charset of the whole password.
func splitEstimate(password string) (string, float64) {
	runes := []rune(password)
	if len(runes) <= MaxEstimateRunes {
		return password, 0
	}

	charset := NewProfile(password).Charset()
	rest := len(runes) - MaxEstimateRunes
	return string(runes[:MaxEstimateRunes]), float64(rest) * math.Log2(float64(charset))
}
