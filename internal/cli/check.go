package cli

import (
	"os"

	"github.com/alvinbaena/pwd-meter/internal/interactive"
	"github.com/alvinbaena/pwd-meter/internal/term"
	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/spf13/cobra"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [PASSWORD]",
		Short: "Check the strength of a password",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactiveMode {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactiveMode {
				return checkCommand("")
			} else {
				return checkCommand(args[0])
			}
		},
	}
)

func init() {
	checkCmd.Flags().BoolVarP(&interactiveMode, "interactive", "n", false, "Interactive mode.")
	checkCmd.Flags().StringSliceVarP(&userInputs, "user-input", "u", nil, "Words the password should not be based on, like a user name or email. Only used by the model scorer")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	evaluator, err := newEvaluator(scorer, estimator)
	if err != nil {
		return err
	}
	evaluator = evaluator.WithUserInputs(userInputs)

	if interactiveMode {
		return interactive.NewSession(evaluator, os.Stdout).Run()
	}

	return term.Print(os.Stdout, evaluator.Evaluate(password))
}
