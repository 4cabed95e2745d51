package input

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/informal-io/informal/pkg/prompting"
)

// ConfirmSuffix is the suffix appended to confirmation prompts. It matches
// the binary prompt suffixes recognized by the prompting package's
// classifier, so hosts routing prompts can render confirmations with a
// binary input control.
const ConfirmSuffix = "(yes/no)? "

// confirmErrorDefault is the message displayed when a confirmation response
// isn't recognized and no custom message has been specified.
const confirmErrorDefault = "Please answer yes or no."

// parseYesNo converts a confirmation response to a boolean. It accepts "y",
// "yes", "n", and "no", case-insensitively. Anything else is a conversion
// failure.
func parseYesNo(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Errorf("unrecognized yes/no response: %q", raw)
	}
}

// confirm builds the Input used by the confirmation helpers. If message is
// non-empty, it replaces the default message for both unrecognized and
// rejected responses (the yes/no domain doesn't distinguish the two).
func confirm(prompt, message string) *Input[bool] {
	if message == "" {
		message = confirmErrorDefault
	}
	return PromptFunc[bool](prompt, parseYesNo).
		Suffix(" " + ConfirmSuffix).
		TypeErrorMessage(message).
		ValidatorErrorMessage(message)
}

// Confirm presents a yes/no question on the standard streams and returns the
// user's answer, re-prompting until a recognizable answer is given. It
// returns an error only if the prompter fails.
func Confirm(prompt string) (bool, error) {
	return confirm(prompt, "").Get()
}

// ConfirmWithMessage presents a yes/no question on the standard streams,
// displaying the specified message whenever the response isn't a
// recognizable yes/no answer.
func ConfirmWithMessage(prompt, message string) (bool, error) {
	return confirm(prompt, message).Get()
}

// ConfirmWithPrompter presents a yes/no question via the specified prompter.
// If message is empty, a default message is used.
func ConfirmWithPrompter(prompter prompting.Prompter, prompt, message string) (bool, error) {
	return confirm(prompt, message).WithPrompter(prompter).Get()
}
