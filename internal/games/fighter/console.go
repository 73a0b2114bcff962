package fighter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Console runs an encounter over line-based text I/O. It blocks on each
// prompt until a line arrives; invalid answers are rejected and re-asked.
type Console struct {
	setup  Setup
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
}

// NewConsole creates a console game. A nil logger discards log output.
func NewConsole(setup Setup, in io.Reader, out io.Writer, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Console{
		setup:  setup,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run plays one full encounter and returns its outcome.
func (c *Console) Run() (Outcome, error) {
	hero, err := c.chooseCharacter()
	if err != nil {
		return OutcomePending, err
	}
	c.printf("You chose %s\n", hero.Name)
	c.logger.Info("encounter started", "hero", hero.Name, "enemy", c.setup.Enemy.Name)

	enc := c.setup.Encounter(hero)
	for enc.Outcome() == OutcomePending {
		c.printf("\n%s, it is your turn!\n", enc.Player.Name)

		action, err := c.readAction()
		if err != nil {
			return OutcomePending, err
		}

		round, err := enc.PlayRound(action)
		if err != nil {
			return OutcomePending, fmt.Errorf("fighter: round %d: %w", enc.Rounds()+1, err)
		}
		for _, line := range round.Narrative() {
			c.printf("%s\n", line)
		}
		c.printf("\n%s\n%s\n", enc.Enemy.Status(), enc.Player.Status())

		c.logger.Debug("round resolved",
			"round", round.Number,
			"action", action,
			"enemy_health", enc.Enemy.Health,
			"player_health", enc.Player.Health,
		)
	}

	outcome := enc.Outcome()
	if outcome == OutcomeWin {
		c.printf("You defeated the enemy!\n")
	} else {
		c.printf("You have been defeated!\n")
	}
	c.logger.Info("encounter finished", "outcome", outcome, "rounds", enc.Rounds())
	return outcome, nil
}

func (c *Console) chooseCharacter() (Combatant, error) {
	c.printf("Choose your character:\n")
	for _, line := range c.setup.Roster.Lines() {
		c.printf("%s\n", line)
	}

	for {
		text, err := c.prompt("Enter the number of your choice: ")
		if err != nil {
			return Combatant{}, err
		}
		hero, err := c.setup.Roster.Select(text)
		if err == nil {
			return hero, nil
		}
		c.reject(err)
	}
}

func (c *Console) readAction() (Action, error) {
	for {
		text, err := c.prompt("Choose action: (1: Attack, 2: Special Ability) ")
		if err != nil {
			return 0, err
		}
		action, err := ParseAction(text)
		if err == nil {
			return action, nil
		}
		c.reject(err)
	}
}

func (c *Console) reject(err error) {
	c.logger.Debug("rejected input", "error", err)
	c.printf("%s. Please try again.\n", capitalize(err.Error()))
}

// prompt prints msg and reads one line. Running out of input is an error.
func (c *Console) prompt(msg string) (string, error) {
	c.printf("%s", msg)
	if c.in.Scan() {
		return c.in.Text(), nil
	}
	if err := c.in.Err(); err != nil {
		return "", fmt.Errorf("fighter: reading input: %w", err)
	}
	return "", fmt.Errorf("fighter: reading input: %w", io.ErrUnexpectedEOF)
}

func (c *Console) printf(format string, args ...any) {
	//nolint:errcheck // console output is best-effort
	fmt.Fprintf(c.out, format, args...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsInputExhausted reports whether err means the console ran out of input.
func IsInputExhausted(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}
