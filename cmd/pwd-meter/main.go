// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package main

import (
	_ "net/http/pprof"
	"os"

	"github.com/alvinbaena/pwd-meter/internal/cli"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
