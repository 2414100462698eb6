// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alvinbaena/pwd-meter/internal/term"
	"github.com/alvinbaena/pwd-meter/internal/widget"
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/common-nighthawk/go-figure"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
)

const commandPrefix = ":"

// Session is an interactive strength check. Every entered line is evaluated from scratch,
// lines starting with ":" drive the show/hide toggle and the help popovers. A password that
// starts with ":" is entered with the colon doubled, "::secret" evaluates ":secret".
type Session struct {
	evaluator  *strength.Evaluator
	out        io.Writer
	visibility widget.Visibility
	popovers   *widget.Popovers
}

func NewSession(evaluator *strength.Evaluator, out io.Writer) *Session {
	return &Session{
		evaluator: evaluator,
		out:       out,
		popovers:  widget.NewPopovers(widget.Help()...),
	}
}

// Handle processes one line of input.
func (s *Session) Handle(line string) error {
	if strings.HasPrefix(line, commandPrefix+commandPrefix) {
		return s.evaluate(strings.TrimPrefix(line, commandPrefix))
	}
	if !strings.HasPrefix(line, commandPrefix) {
		return s.evaluate(line)
	}

	fields := strings.Fields(strings.TrimPrefix(line, commandPrefix))
	if len(fields) == 0 {
		return s.help()
	}

	switch fields[0] {
	case "show":
		s.visibility.Set(true)
		return s.printf("password is shown (%s)\n", s.visibility.Label())
	case "hide":
		s.visibility.Set(false)
		return s.printf("password is hidden (%s)\n", s.visibility.Label())
	case "toggle":
		s.visibility.Toggle()
		return s.printf("%s\n", s.visibility.Label())
	case "info":
		if len(fields) < 2 {
			return s.printf("usage: :info <%s>\n", strings.Join(s.popovers.IDs(), "|"))
		}
		p, ok := s.popovers.Open(fields[1])
		if !ok {
			return s.printf("no help for %q\n", fields[1])
		}
		return s.printf("%s\n  %s\n", p.Title, p.Body)
	case "close":
		s.popovers.Close()
		return nil
	case "esc":
		s.popovers.Key("Escape")
		return nil
	}

	return s.help()
}

func (s *Session) evaluate(password string) error {
	// Clicking back into the input closes any open popover.
	s.popovers.ClickOutside()
	return term.Print(s.out, s.evaluator.Evaluate(password))
}

func (s *Session) help() error {
	return s.printf("commands: :show, :hide, :toggle, :info <%s>, :close, :esc. Start a password with :: to check one beginning with :\n",
		strings.Join(s.popovers.IDs(), "|"))
}

func (s *Session) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}

// Label of the prompt, shows the open popover title if any.
func (s *Session) Label() string {
	if p, ok := s.popovers.Active(); ok {
		return fmt.Sprintf("Password [%s]", p.Title)
	}

	return "Password"
}

// Mask of the prompt for the current visibility.
func (s *Session) Mask() rune {
	return s.visibility.Mask()
}

// Run prompts for passwords until ^C or ^D.
func (s *Session) Run() error {
	figure.NewColorFigure("pwd-meter", "doom", "cyan", true).Print()
	log.Info().Msgf("running interactive session with the %s scorer. ^C to exit, :help for commands", s.evaluator.Scorer().Name())

	for {
		prompt := promptui.Prompt{
			Label: s.Label(),
			Mask:  s.Mask(),
		}

		line, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info().Msgf("Goodbye")
				return nil
			}

			return err
		}

		if err = s.Handle(line); err != nil {
			log.Error().Err(err).Msg("error during interactive session")
		}
	}
}
