// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"strconv"
	"strings"
)

// Display is the set of values written into the strength indicator slots.
type Display struct {
	Progress        int    `json:"progress"`
	Class           string `json:"class"`
	Label           string `json:"label"`
	CrackTime       string `json:"crack_time"`
	CrackTimeDetail string `json:"crack_time_detail"`
	Length          string `json:"length"`
	Entropy         string `json:"entropy"`
	CharTypes       string `json:"char_types"`
}

// Reset is the neutral display for an empty input.
func Reset() Display {
	return Display{
		Class:     resetClass,
		Length:    "0",
		Entropy:   "0 bits",
		CharTypes: "0",
	}
}

// Present maps a scored result to its display values.
func Present(result Result, profile Profile) Display {
	score := result.Score
	if score < 0 || score > MaxScore {
		score = 0
	}

	return Display{
		Progress:        score * 100 / MaxScore,
		Class:           result.Class,
		Label:           result.Label,
		CrackTime:       primaryCrackTime(result),
		CrackTimeDetail: crackTimeDetail(result),
		Length:          strconv.Itoa(profile.Length),
		Entropy:         fmt.Sprintf("%.2f bits", result.Entropy),
		CharTypes:       strconv.Itoa(profile.Count),
	}
}

func primaryCrackTime(result Result) string {
	if slow := result.CrackTime(SlowOffline); slow != "" {
		return slow
	}

	return result.CrackTime(FastOffline)
}

// crackTimeDetail has one line per estimated scenario, e.g. "Slow offline (1e4/s): 3 hours".
func crackTimeDetail(result Result) string {
	lines := make([]string, 0, len(result.CrackTimes))
	for _, ct := range result.CrackTimes {
		lines = append(lines, fmt.Sprintf("%s: %s", ct.Scenario.Describe(ct.Rate), ct.Display))
	}

	return strings.Join(lines, "\n")
}
