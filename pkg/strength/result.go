// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "fmt"

// Scenario is an attacker model used to turn a guess count into a crack time.
type Scenario string

const (
	SlowOffline       Scenario = "offline_slow_hashing"
	FastOffline       Scenario = "offline_fast_hashing"
	OnlineUnthrottled Scenario = "online_no_throttling"
	OnlineThrottled   Scenario = "online_throttling"
)

// Scenarios in display order.
var Scenarios = []Scenario{SlowOffline, FastOffline, OnlineUnthrottled, OnlineThrottled}

// Describe names the scenario together with its attack rate.
func (s Scenario) Describe(rate string) string {
	switch s {
	case SlowOffline:
		return fmt.Sprintf("Slow offline (%s)", rate)
	case FastOffline:
		return fmt.Sprintf("Fast offline (%s)", rate)
	case OnlineUnthrottled:
		return fmt.Sprintf("Online (no throttle ~%s)", rate)
	case OnlineThrottled:
		return fmt.Sprintf("Online (throttled ~%s)", rate)
	}

	return fmt.Sprintf("%s (%s)", string(s), rate)
}

// CrackTime is one crack time estimate under a scenario. Rate is the attack speed as shown to
// users, e.g. "1e4/s".
type CrackTime struct {
	Scenario Scenario `json:"scenario"`
	Rate     string   `json:"rate"`
	Display  string   `json:"display"`
}

// Result is the outcome of scoring a single password. It is never mutated after creation.
// CrackTimes holds only the scenarios the scorer estimates, in Scenarios order.
type Result struct {
	Score      int         `json:"score"`
	Label      string      `json:"label"`
	Class      string      `json:"class"`
	Entropy    float64     `json:"entropy"`
	Guesses    float64     `json:"guesses,omitempty"`
	CrackTimes []CrackTime `json:"crack_times"`
}

// CrackTime returns the display string for scenario, or an empty string.
func (r Result) CrackTime(scenario Scenario) string {
	for _, ct := range r.CrackTimes {
		if ct.Scenario == scenario {
			return ct.Display
		}
	}

	return ""
}

// Scorer turns a password and its profile into a Result.
type Scorer interface {
	Name() string
	Score(password string, profile Profile) Result
	Severities() SeverityTable
}
