// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package term

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const barWidth = 20

// ColorFor maps a severity class such as "bg-green-500" to a terminal colour.
func ColorFor(class string) *color.Color {
	switch {
	case strings.Contains(class, "red"):
		return color.New(color.FgRed, color.Bold)
	case strings.Contains(class, "yellow"):
		return color.New(color.FgYellow, color.Bold)
	case strings.Contains(class, "green"):
		return color.New(color.FgGreen, color.Bold)
	case strings.Contains(class, "blue"):
		return color.New(color.FgBlue, color.Bold)
	}

	return color.New(color.FgHiBlack)
}

// Bar draws the progress proportion (0 to 100) as a fixed width bar.
func Bar(progress int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	filled := progress * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

// FormatGuesses prints guess counts with digit grouping, switching to scientific notation once
// they get too long to read.
func FormatGuesses(guesses float64) string {
	if guesses >= 1e15 {
		return fmt.Sprintf("%.2e", guesses)
	}

	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", int64(math.Round(guesses)))
}

// Print writes an evaluation to w.
func Print(w io.Writer, ev strength.Evaluation) error {
	d := ev.Display
	c := ColorFor(d.Class)

	label := d.Label
	if label == "" {
		label = "-"
	}

	lines := []string{
		fmt.Sprintf("Strength:   %s %s (%d%%)", c.Sprint(Bar(d.Progress)), c.Sprint(label), d.Progress),
		fmt.Sprintf("Crack time: %s", orDash(d.CrackTime)),
	}
	if d.CrackTimeDetail != "" {
		for _, line := range strings.Split(d.CrackTimeDetail, "\n") {
			lines = append(lines, "  "+line)
		}
	}
	lines = append(lines,
		fmt.Sprintf("Length:     %s", d.Length),
		fmt.Sprintf("Entropy:    %s", d.Entropy),
		fmt.Sprintf("Char types: %s", d.CharTypes),
	)
	if ev.Result.Guesses > 0 {
		lines = append(lines, fmt.Sprintf("Guesses:    %s", FormatGuesses(ev.Result.Guesses)))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
