// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "math"

// Estimate is what a guessing-model estimator reports for a password. CrackTimes maps each
// attacker scenario to a human-readable duration.
type Estimate struct {
	Score        int
	Guesses      float64
	GuessesLog10 float64
	CrackTimes   map[Scenario]string
}

// Estimator estimates how many guesses an attacker needs for a password, e.g. zxcvbn.
type Estimator interface {
	Estimate(password string) Estimate
}

var scenarioRates = map[Scenario]string{
	SlowOffline:       "1e4/s",
	FastOffline:       "1e10/s",
	OnlineUnthrottled: "10/s",
	OnlineThrottled:   "100/hr",
}

// ModelScorer delegates scoring to an Estimator. Without one every Result is the Unavailable
// fallback, which still carries a valid (zero) score.
type ModelScorer struct {
	estimator Estimator
}

// NewModelScorer returns a scorer for estimator. A nil estimator is allowed and means the
// capability is absent.
func NewModelScorer(estimator Estimator) *ModelScorer {
	return &ModelScorer{estimator: estimator}
}

func (m *ModelScorer) Name() string {
	return "model"
}

func (m *ModelScorer) Severities() SeverityTable {
	return ModelSeverities
}

// Available reports if an estimator was configured.
func (m *ModelScorer) Available() bool {
	return m.estimator != nil
}

func (m *ModelScorer) Score(password string, _ Profile) Result {
	if m.estimator == nil {
		return Result{
			Label:      Unavailable.Label,
			Class:      Unavailable.Class,
			CrackTimes: []CrackTime{},
		}
	}

	est := m.estimator.Estimate(password)
	score := est.Score
	if score < 0 || score > MaxScore {
		score = 0
	}

	entropy := 0.0
	if !math.IsNaN(est.GuessesLog10) && !math.IsInf(est.GuessesLog10, 0) {
		// change of base, log2(g) = log10(g) * log2(10)
		entropy = est.GuessesLog10 * math.Log2(10)
	}

	crackTimes := make([]CrackTime, 0, len(Scenarios))
	for _, s := range Scenarios {
		if display := est.CrackTimes[s]; display != "" {
			crackTimes = append(crackTimes, CrackTime{Scenario: s, Rate: scenarioRates[s], Display: display})
		}
	}

	severity := ModelSeverities.Lookup(score)
	return Result{
		Score:      score,
		Label:      severity.Label,
		Class:      severity.Class,
		Entropy:    entropy,
		Guesses:    finite(est.Guesses),
		CrackTimes: crackTimes,
	}
}

// WithUserInputs returns a scorer whose estimator also penalizes inputs, when the estimator
// supports it. Otherwise m is returned unchanged.
func (m *ModelScorer) WithUserInputs(inputs []string) Scorer {
	aware, ok := m.estimator.(interface {
		WithUserInputs([]string) Estimator
	})
	if !ok || len(inputs) == 0 {
		return m
	}

	return NewModelScorer(aware.WithUserInputs(inputs))
}
