// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// batch
	inputFile string
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// root
	scorer string
	// root
	estimator string
	// stage
	outFile string
	// stage
	source string
	// stage
	overwrite bool
	// check
	interactiveMode bool
	// check
	userInputs []string
	// batch
	threads int
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
	// serve
	webRoot string
	// serve
	pageFile string
	// serve
	corsOrigins []string
)
