// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"math"
	"strconv"
)

type interval struct {
	unit    string
	seconds float64
}

// Ordered from the largest unit down, first match wins.
var intervals = []interval{
	{"year", 31_536_000},
	{"month", 2_592_000},
	{"day", 86_400},
	{"hour", 3_600},
	{"minute", 60},
	{"second", 1},
}

// FormatDuration renders seconds as a count of the largest unit that fits at least once, e.g.
// "2 hours". Anything below a second is "Instantly".
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 1 {
		return "Instantly"
	}
	if math.IsInf(seconds, 1) {
		return "Forever"
	}

	for _, i := range intervals {
		count := math.Floor(seconds / i.seconds)
		if count >= 1 {
			unit := i.unit
			if count > 1 {
				unit += "s"
			}

			return fmt.Sprintf("%s %s", strconv.FormatFloat(count, 'f', 0, 64), unit)
		}
	}

	return "Instantly"
}

const (
	minute  = 60
	hour    = minute * 60
	day     = hour * 24
	month   = day * 31
	year    = month * 12
	century = year * 100
)

// DisplayTime renders seconds the way zxcvbn words its crack_times_display values, rounding to
// the nearest unit and topping out at "centuries".
func DisplayTime(seconds float64) string {
	var base float64
	var unit string

	switch {
	case math.IsNaN(seconds) || seconds < 1:
		return "less than a second"
	case seconds < minute:
		base, unit = math.Round(seconds), "second"
	case seconds < hour:
		base, unit = math.Round(seconds/minute), "minute"
	case seconds < day:
		base, unit = math.Round(seconds/hour), "hour"
	case seconds < month:
		base, unit = math.Round(seconds/day), "day"
	case seconds < year:
		base, unit = math.Round(seconds/month), "month"
	case seconds < century:
		base, unit = math.Round(seconds/year), "year"
	default:
		return "centuries"
	}

	if base != 1 {
		unit += "s"
	}

	return fmt.Sprintf("%.0f %s", base, unit)
}
