// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package util

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Stats returns a func that logs the elapsed time and memory usage when called, at debug level.
func Stats() func() {
	start := time.Now()
	return func() {
		log.Debug().Msgf("time to run %v", time.Since(start))
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Requested: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		log.Debug().Msgf("Mallocs: %d, Frees: %d, GC: %d", ms.Mallocs, ms.Frees, ms.NumGC)
	}
}

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf(":%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// ToScreamingSnakeCase turns Go field names into their env var form, e.g. SelfTLS -> SELF_TLS.
// Space separated lists (validator params) are converted word by word.
func ToScreamingSnakeCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = screamingSnake(w)
	}

	return strings.Join(words, " ")
}

func screamingSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}
