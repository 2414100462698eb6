// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "unicode/utf8"

// Profile is the character class breakdown of a password. Count is the number of class flags
// set and Length is measured in runes, not bytes.
type Profile struct {
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Digit     bool `json:"digit"`
	Symbol    bool `json:"symbol"`
	Count     int  `json:"count"`
	Length    int  `json:"length"`
}

// NewProfile computes the character classes present in password. Anything that is not ASCII
// alphanumeric counts as a symbol, so only the empty string has a count of 0.
func NewProfile(password string) Profile {
	p := Profile{Length: utf8.RuneCountInString(password)}

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			p.Lowercase = true
		case r >= 'A' && r <= 'Z':
			p.Uppercase = true
		case r >= '0' && r <= '9':
			p.Digit = true
		default:
			p.Symbol = true
		}
	}

	for _, set := range []bool{p.Lowercase, p.Uppercase, p.Digit, p.Symbol} {
		if set {
			p.Count++
		}
	}

	return p
}

// Charset is the size of the alphabet implied by the classes present.
func (p Profile) Charset() int {
	size := 0
	if p.Lowercase {
		size += 26
	}
	if p.Uppercase {
		size += 26
	}
	if p.Digit {
		size += 10
	}
	if p.Symbol {
		size += 32
	}

	return size
}
