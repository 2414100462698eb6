// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwdmeter [COMMAND] [OPTIONS]",
		Short: "Estimate the strength of passwords",
		Long: "Estimate how hard a password is to guess, either with a length and character class " +
			"heuristic or with the zxcvbn guessing model. Passwords are evaluated in memory and never stored.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
	rootCmd.PersistentFlags().StringVar(&scorer, "scorer", "model", "Scoring strategy, heuristic or model")
	rootCmd.PersistentFlags().StringVar(&estimator, "estimator", "zxcvbn", "Guessing model used by the model scorer. Use none to disable it")
}

func Execute() error {
	return rootCmd.Execute()
}

func newEvaluator(scorerName, estimatorName string) (*strength.Evaluator, error) {
	s, err := strength.NewScorer(scorerName, estimatorName)
	if err != nil {
		return nil, err
	}

	return strength.NewEvaluator(s), nil
}
