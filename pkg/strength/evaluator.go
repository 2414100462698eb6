// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrUnknownScorer = errors.New("unknown scorer")

// Estimators are the estimator capabilities that can back a ModelScorer, by name.
var Estimators = map[string]func() Estimator{
	"zxcvbn": func() Estimator { return ZxcvbnEstimator{} },
}

// NewScorer builds the scorer for a deployment. The heuristic and model scorers use different
// wording and colours, so only one of them should be used at a time.
//
// For the model scorer the estimator is resolved here, once. An unknown or "none" estimator is
// not an error, the scorer degrades to the Unavailable result instead.
func NewScorer(name string, estimator string) (Scorer, error) {
	switch name {
	case "heuristic":
		return HeuristicScorer{}, nil
	case "model", "":
		if factory, ok := Estimators[estimator]; ok {
			return NewModelScorer(factory()), nil
		}

		log.Warn().Msgf("password estimator %q is not available, strength results will be degraded", estimator)
		return NewModelScorer(nil), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownScorer, name)
}

// Evaluation is everything derived from one password.
type Evaluation struct {
	Profile Profile `json:"profile"`
	Result  Result  `json:"result"`
	Display Display `json:"display"`
}

// Evaluator evaluates passwords from scratch on every call. It has no mutable state and can be
// shared between goroutines.
type Evaluator struct {
	scorer Scorer
}

func NewEvaluator(scorer Scorer) *Evaluator {
	return &Evaluator{scorer: scorer}
}

func (e *Evaluator) Scorer() Scorer {
	return e.scorer
}

// Evaluate scores password. The empty password is not scored and yields the Reset display.
func (e *Evaluator) Evaluate(password string) Evaluation {
	profile := NewProfile(password)
	if password == "" {
		return Evaluation{
			Profile: profile,
			Result:  Result{CrackTimes: []CrackTime{}},
			Display: Reset(),
		}
	}

	result := e.scorer.Score(password, profile)
	return Evaluation{
		Profile: profile,
		Result:  result,
		Display: Present(result, profile),
	}
}

// Render is Evaluate for callers that only need the display values.
func (e *Evaluator) Render(password string) Display {
	return e.Evaluate(password).Display
}

// WithUserInputs returns an evaluator that also treats inputs (user name, email...) as weak
// words. Scorers that cannot use them are kept as they are.
func (e *Evaluator) WithUserInputs(inputs []string) *Evaluator {
	aware, ok := e.scorer.(interface {
		WithUserInputs([]string) Scorer
	})
	if !ok || len(inputs) == 0 {
		return e
	}

	return NewEvaluator(aware.WithUserInputs(inputs))
}
