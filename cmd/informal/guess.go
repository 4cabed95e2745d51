package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/informal-io/informal/cmd"
	"github.com/informal-io/informal/pkg/encoding"
	"github.com/informal-io/informal/pkg/input"
	"github.com/informal-io/informal/pkg/logging"
)

// GuessSettings encodes optional settings for the guessing game. Any field
// left at its zero value falls back to the corresponding default.
type GuessSettings struct {
	// Maximum is the upper bound for the target number.
	Maximum uint `yaml:"maximum"`
	// TypeErrorMessage is the message displayed for non-numeric guesses.
	TypeErrorMessage string `yaml:"typeErrorMessage"`
	// ValidatorErrorMessage is the message displayed for out-of-domain
	// guesses.
	ValidatorErrorMessage string `yaml:"validatorErrorMessage"`
}

// defaultGuessSettings are the settings used when no configuration file or
// flags override them.
var defaultGuessSettings = GuessSettings{
	Maximum:               255,
	TypeErrorMessage:      "Please enter a valid guess!",
	ValidatorErrorMessage: "Please enter an in-range number divisible by two",
}

// loadGuessSettings computes the effective settings for a game, applying the
// configuration file (if one exists at the specified path) and then any
// command line overrides on top of the defaults.
func loadGuessSettings(path string) (GuessSettings, error) {
	// Start with defaults and layer on the configuration file, tolerating its
	// absence.
	settings := defaultGuessSettings
	loaded := GuessSettings{}
	if err := encoding.LoadAndUnmarshalYAML(path, &loaded); err != nil {
		if !os.IsNotExist(err) {
			return settings, errors.Wrap(err, "unable to load configuration")
		}
	}
	if loaded.Maximum != 0 {
		settings.Maximum = loaded.Maximum
	}
	if loaded.TypeErrorMessage != "" {
		settings.TypeErrorMessage = loaded.TypeErrorMessage
	}
	if loaded.ValidatorErrorMessage != "" {
		settings.ValidatorErrorMessage = loaded.ValidatorErrorMessage
	}

	// Apply command line overrides.
	if guessConfiguration.maximum != 0 {
		settings.Maximum = guessConfiguration.maximum
	}

	// Success.
	return settings, nil
}

func guessMain(command *cobra.Command, arguments []string) error {
	// Compute the effective settings.
	settings, err := loadGuessSettings(guessConfiguration.configuration)
	if err != nil {
		return err
	}

	// Grab a logger for the game.
	logger := logging.RootLogger.Sublogger("guess")

	// Create the random source and pick an even target.
	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	pick := func() uint {
		return uint(random.Int63n(int64(settings.Maximum/2)+1)) * 2
	}
	target := pick()

	// Explain the game.
	fmt.Println("Try to guess the number I'm thinking of...")
	fmt.Printf("  (hint: it's between 0 and %d and divisible by two)\n\n", settings.Maximum)

	// Run guessing rounds until the user quits.
	for {
		guess, err := input.Prompt[uint]("Enter your guess: ").
			TypeErrorMessage(settings.TypeErrorMessage).
			Matches(func(x uint) bool { return x%2 == 0 && x <= settings.Maximum }).
			ValidatorErrorMessage(settings.ValidatorErrorMessage).
			WithLogger(logger).
			Get()
		if err != nil {
			return errors.Wrap(err, "unable to read guess")
		}

		if guess < target {
			fmt.Println("Too low!")
		} else if guess > target {
			fmt.Println("Too high!")
		} else {
			fmt.Println("You got it!")
			fmt.Printf("The number was: %d\n\n", target)
			again, err := input.ConfirmWithMessage(
				"Do you want to play again?",
				"I asked a simple question...",
			)
			if err != nil {
				return errors.Wrap(err, "unable to read answer")
			}
			if !again {
				return nil
			}
			target = pick()
		}
	}
}

var guessCommand = &cobra.Command{
	Use:   "guess",
	Short: "Play a number guessing game (prompting demo)",
	Run:   cmd.Mainify(guessMain),
}

var guessConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// configuration is the path to an optional YAML settings file.
	configuration string
	// maximum overrides the upper bound for the target number.
	maximum uint
}

func init() {
	// Grab a handle for the command line flags.
	flags := guessCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&guessConfiguration.help, "help", "h", false, "Show help information")

	// Add game flags.
	flags.StringVarP(&guessConfiguration.configuration, "configuration", "c", "informal-guess.yaml", "Path to an optional YAML settings file")
	flags.UintVarP(&guessConfiguration.maximum, "maximum", "m", 0, "Upper bound for the target number (overrides configuration)")
}
