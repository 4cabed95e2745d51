package input

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/dustin/go-humanize"

	"github.com/informal-io/informal/pkg/logging"
	"github.com/informal-io/informal/pkg/prompting"
)

// validatorErrorDefault is the message displayed when a response parses but
// is rejected by the validator and no custom message has been configured.
const validatorErrorDefault = "Error: does not pass validation"

// Input describes a single pending acquisition of a typed value from the
// user. It is configured via chained builder methods and consumed by Get. An
// Input is owned by the call stack that builds it and must not be shared
// across concurrent acquisitions. It's cheap to construct one per call.
type Input[T any] struct {
	// prompt is the prompt text displayed before each response is read.
	prompt string
	// prefix is any text prepended to the prompt.
	prefix string
	// suffix is any text appended to the prompt.
	suffix string
	// defaultValue, if non-nil, is returned when the user submits an empty
	// response.
	defaultValue *T
	// parser is the conversion capability for the target type.
	parser Parser[T]
	// validator, if non-nil, is the acceptance predicate for parsed values.
	// It must be pure: the engine assumes that repeated invocations with the
	// same value yield the same result, and it provides no way to observe or
	// sequence side effects.
	validator func(T) bool
	// typeMessage overrides the message displayed on conversion failure.
	typeMessage string
	// validatorMessage overrides the message displayed on validation failure.
	validatorMessage string
	// prompter overrides the prompter used for the acquisition.
	prompter prompting.Prompter
	// logger is an optional logger for tracing acquisition attempts.
	logger *logging.Logger
}

// New creates an unconfigured Input for a type with a built-in conversion
// capability. The resulting Input reads a response without displaying any
// prompt text unless Prompt is called.
func New[T Parseable]() *Input[T] {
	return &Input[T]{parser: parseText[T]}
}

// Prompt creates an Input that displays the specified prompt text, for a
// type with a built-in conversion capability.
//
//	age, err := input.Prompt[uint]("Please enter your age: ").Get()
func Prompt[T Parseable](prompt string) *Input[T] {
	return New[T]().Prompt(prompt)
}

// PromptFunc creates an Input that displays the specified prompt text and
// converts responses using the specified parser. It exists for target types
// outside the Parseable set.
func PromptFunc[T any](prompt string, parser Parser[T]) *Input[T] {
	return &Input[T]{prompt: prompt, parser: parser}
}

// Prompt sets the prompt text displayed before each response is read. It
// returns the Input for chaining.
func (i *Input[T]) Prompt(prompt string) *Input[T] {
	i.prompt = prompt
	return i
}

// Prefix sets text to prepend to the prompt. It returns the Input for
// chaining.
func (i *Input[T]) Prefix(prefix string) *Input[T] {
	i.prefix = prefix
	return i
}

// Suffix sets text to append to the prompt. It returns the Input for
// chaining.
func (i *Input[T]) Suffix(suffix string) *Input[T] {
	i.suffix = suffix
	return i
}

// Default sets a value to return when the user submits an empty response.
// It returns the Input for chaining.
func (i *Input[T]) Default(value T) *Input[T] {
	i.defaultValue = &value
	return i
}

// Matches sets the acceptance predicate for parsed values. Responses that
// parse but for which the predicate returns false are rejected and
// re-prompted. The predicate must be pure and free of side effects. Calling
// Matches again replaces any previously configured predicate. It returns the
// Input for chaining.
func (i *Input[T]) Matches(validator func(T) bool) *Input[T] {
	i.validator = validator
	return i
}

// TypeErrorMessage sets the message displayed when a response fails to
// convert to the target type, replacing the default message derived from the
// conversion error. It returns the Input for chaining.
func (i *Input[T]) TypeErrorMessage(message string) *Input[T] {
	i.typeMessage = message
	return i
}

// ValidatorErrorMessage sets the message displayed when a response converts
// but is rejected by the validator. It returns the Input for chaining.
func (i *Input[T]) ValidatorErrorMessage(message string) *Input[T] {
	i.validatorMessage = message
	return i
}

// WithPrompter sets the prompter used for the acquisition, replacing the
// standard command line prompter. It returns the Input for chaining.
func (i *Input[T]) WithPrompter(prompter prompting.Prompter) *Input[T] {
	i.prompter = prompter
	return i
}

// WithLogger sets a logger used to trace acquisition attempts. It returns
// the Input for chaining.
func (i *Input[T]) WithLogger(logger *logging.Logger) *Input[T] {
	i.logger = logger
	return i
}

// Get consumes the Input and acquires a single value of the target type. It
// repeatedly prompts, converts the response, and (if a validator is set)
// validates the converted value, displaying a message and re-prompting for
// as long as the response fails to convert or validate. The retry loop is
// unbounded: Get never gives up on a user who keeps answering. It returns
// with an error only if the prompter itself fails (for example because the
// input stream has been exhausted), since that condition can't be healed by
// retrying.
func (i *Input[T]) Get() (T, error) {
	var zero T

	// Grab the prompter to use, falling back to the standard streams.
	prompter := i.prompter
	if prompter == nil {
		prompter = prompting.StandardPrompter()
	}

	// Compose the full prompt text.
	prompt := i.prefix + i.prompt + i.suffix

	// Loop until a response is accepted or the prompter fails.
	for attempt := 1; ; attempt++ {
		i.logger.Tracef("presenting prompt (%s attempt)", humanize.Ordinal(attempt))

		// Prompt and read the next response.
		response, err := prompter.Prompt(prompt)
		if err != nil {
			return zero, errors.Wrap(err, "unable to read response")
		}
		raw := strings.TrimSpace(response)

		// An empty response yields the default value, if one is set.
		if raw == "" && i.defaultValue != nil {
			i.logger.Debugf("empty response, accepting default value")
			return *i.defaultValue, nil
		}

		// Attempt conversion to the target type.
		value, err := i.parser(raw)
		if err != nil {
			i.logger.Debugf("response failed conversion: %v", err)
			message := i.typeMessage
			if message == "" {
				message = fmt.Sprintf("Error: %v", err)
			}
			if err := prompter.Message(message); err != nil {
				return zero, errors.Wrap(err, "unable to display message")
			}
			continue
		}

		// Run the validator, if any.
		if i.validator != nil && !i.validator(value) {
			i.logger.Debugf("response failed validation")
			message := i.validatorMessage
			if message == "" {
				message = validatorErrorDefault
			}
			if err := prompter.Message(message); err != nil {
				return zero, errors.Wrap(err, "unable to display message")
			}
			continue
		}

		// Success.
		i.logger.Tracef("response accepted")
		return value, nil
	}
}

// MustGet consumes the Input and acquires a single value of the target type,
// panicking if the prompter fails. It exists for script-like callers that
// treat an exhausted input stream as unrecoverable.
func (i *Input[T]) MustGet() T {
	value, err := i.Get()
	if err != nil {
		panic(err)
	}
	return value
}

// Map consumes an Input, acquires a value, and transforms it with the
// specified function. It's a free function because Go methods can't
// introduce additional type parameters.
func Map[T, U any](input *Input[T], transform func(T) U) (U, error) {
	value, err := input.Get()
	if err != nil {
		var zero U
		return zero, err
	}
	return transform(value), nil
}
