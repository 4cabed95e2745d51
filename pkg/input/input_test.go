package input

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// scriptedPrompter is a Prompter implementation that returns a fixed sequence
// of responses and records the prompts and messages that it receives. Once
// its responses are exhausted, it behaves like a closed input stream.
type scriptedPrompter struct {
	// responses are the remaining responses.
	responses []string
	// prompts are the prompts received so far.
	prompts []string
	// messages are the messages received so far.
	messages []string
}

// Message implements Prompter.Message.
func (p *scriptedPrompter) Message(message string) error {
	p.messages = append(p.messages, message)
	return nil
}

// Prompt implements Prompter.Prompt.
func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.responses) == 0 {
		return "", errors.New("input stream exhausted")
	}
	response := p.responses[0]
	p.responses = p.responses[1:]
	return response, nil
}

func TestGetFirstResponseAccepted(t *testing.T) {
	// Create a prompter with a single valid response.
	prompter := &scriptedPrompter{responses: []string{"42"}}

	// Perform the acquisition.
	value, err := Prompt[int]("Enter a number: ").WithPrompter(prompter).Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the value and the absence of retries.
	if value != 42 {
		t.Error("unexpected value:", value)
	}
	if len(prompter.prompts) != 1 {
		t.Error("unexpected prompt count:", len(prompter.prompts))
	}
	if len(prompter.messages) != 0 {
		t.Error("unexpected messages:", prompter.messages)
	}
}

func TestGetRetriesOnConversionFailure(t *testing.T) {
	// Create a prompter whose first response doesn't convert.
	prompter := &scriptedPrompter{responses: []string{"abc", "42"}}

	// Perform the acquisition.
	value, err := Prompt[int]("Enter a number: ").WithPrompter(prompter).Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the value, the re-prompt, and the default message content.
	if value != 42 {
		t.Error("unexpected value:", value)
	}
	if len(prompter.prompts) != 2 {
		t.Error("unexpected prompt count:", len(prompter.prompts))
	}
	if len(prompter.messages) != 1 {
		t.Fatal("unexpected message count:", len(prompter.messages))
	}
	if !strings.HasPrefix(prompter.messages[0], "Error: ") {
		t.Error("default message missing error prefix:", prompter.messages[0])
	}
	if !strings.Contains(prompter.messages[0], "abc") {
		t.Error("default message doesn't name the failing response:", prompter.messages[0])
	}
}

func TestGetCustomTypeErrorMessage(t *testing.T) {
	// Create a prompter whose first response doesn't convert.
	prompter := &scriptedPrompter{responses: []string{"abc", "42"}}

	// Perform the acquisition with a custom conversion failure message.
	value, err := Prompt[int]("Enter a number: ").
		TypeErrorMessage("What kind of number is that?!").
		WithPrompter(prompter).
		Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the value and the message.
	if value != 42 {
		t.Error("unexpected value:", value)
	}
	if len(prompter.messages) != 1 || prompter.messages[0] != "What kind of number is that?!" {
		t.Error("unexpected messages:", prompter.messages)
	}
}

func TestGetRetriesOnValidationFailure(t *testing.T) {
	// Create a prompter whose first response converts but fails validation.
	prompter := &scriptedPrompter{responses: []string{"10", "11"}}

	// Perform the acquisition.
	value, err := Prompt[int]("Enter a number: ").
		Matches(func(x int) bool { return x%2 == 1 }).
		ValidatorErrorMessage("Please enter an odd number").
		WithPrompter(prompter).
		Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the value, the re-prompt, and the message.
	if value != 11 {
		t.Error("unexpected value:", value)
	}
	if len(prompter.prompts) != 2 {
		t.Error("unexpected prompt count:", len(prompter.prompts))
	}
	if len(prompter.messages) != 1 || prompter.messages[0] != "Please enter an odd number" {
		t.Error("unexpected messages:", prompter.messages)
	}
}

func TestGetDefaultValidatorErrorMessage(t *testing.T) {
	// Create a prompter whose first response converts but fails validation.
	prompter := &scriptedPrompter{responses: []string{"10", "11"}}

	// Perform the acquisition without a custom validation failure message.
	if _, err := Prompt[int]("Enter a number: ").
		Matches(func(x int) bool { return x%2 == 1 }).
		WithPrompter(prompter).
		Get(); err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the default message.
	if len(prompter.messages) != 1 || prompter.messages[0] != "Error: does not pass validation" {
		t.Error("unexpected messages:", prompter.messages)
	}
}

func TestGetAgeScenario(t *testing.T) {
	// Create a prompter that first fails conversion, then fails validation,
	// then succeeds.
	prompter := &scriptedPrompter{responses: []string{"abc", "200", "45"}}

	// Perform the acquisition.
	value, err := Prompt[uint]("Enter age: ").
		Matches(func(x uint) bool { return x < 120 }).
		WithPrompter(prompter).
		Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the value and the two retries.
	if value != 45 {
		t.Error("unexpected value:", value)
	}
	if len(prompter.prompts) != 3 {
		t.Error("unexpected prompt count:", len(prompter.prompts))
	}
	if len(prompter.messages) != 2 {
		t.Error("unexpected message count:", len(prompter.messages))
	}
}

func TestGetStreamFailureFatal(t *testing.T) {
	// Create a prompter with no responses, behaving like a closed stream.
	prompter := &scriptedPrompter{}

	// Attempt the acquisition and verify that it fails without retrying.
	if _, err := Prompt[int]("Enter a number: ").WithPrompter(prompter).Get(); err == nil {
		t.Fatal("acquisition succeeded with closed input stream")
	}
	if len(prompter.prompts) != 1 {
		t.Error("engine retried a fatal failure:", len(prompter.prompts))
	}
}

func TestGetDefaultValueOnEmptyResponse(t *testing.T) {
	// Create a prompter that responds with an empty line.
	prompter := &scriptedPrompter{responses: []string{""}}

	// Perform the acquisition with a default value.
	value, err := Prompt[int]("Enter a number: ").
		Default(7).
		WithPrompter(prompter).
		Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify that the default was returned without any messages.
	if value != 7 {
		t.Error("unexpected value:", value)
	}
	if len(prompter.messages) != 0 {
		t.Error("unexpected messages:", prompter.messages)
	}
}

func TestGetEmptyResponseWithoutDefault(t *testing.T) {
	// Create a prompter whose first response is an empty line.
	prompter := &scriptedPrompter{responses: []string{"", "42"}}

	// Perform the acquisition without a default value. The empty line is
	// ordinary text, so it goes through conversion (and fails for integers).
	value, err := Prompt[int]("Enter a number: ").WithPrompter(prompter).Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the value and the conversion failure message.
	if value != 42 {
		t.Error("unexpected value:", value)
	}
	if len(prompter.messages) != 1 {
		t.Error("unexpected message count:", len(prompter.messages))
	}
}

func TestGetTrimsResponseWhitespace(t *testing.T) {
	// Create a prompter with a whitespace-padded response.
	prompter := &scriptedPrompter{responses: []string{"  42\t"}}

	// Perform the acquisition.
	value, err := Prompt[int]("Enter a number: ").WithPrompter(prompter).Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the value.
	if value != 42 {
		t.Error("unexpected value:", value)
	}
}

func TestBuilderMatchesLastCallWins(t *testing.T) {
	// Create a prompter whose response passes the second predicate but not
	// the first.
	prompter := &scriptedPrompter{responses: []string{"4"}}

	// Perform the acquisition with two Matches calls.
	value, err := Prompt[int]("Enter a number: ").
		Matches(func(x int) bool { return x > 10 }).
		Matches(func(x int) bool { return x%2 == 0 }).
		WithPrompter(prompter).
		Get()
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify that only the second predicate was in effect.
	if value != 4 {
		t.Error("unexpected value:", value)
	}
	if len(prompter.messages) != 0 {
		t.Error("unexpected messages:", prompter.messages)
	}
}

func TestBuilderTypeErrorMessageLastCallWins(t *testing.T) {
	// Create a prompter whose first response doesn't convert.
	prompter := &scriptedPrompter{responses: []string{"abc", "4"}}

	// Perform the acquisition with two TypeErrorMessage calls.
	if _, err := Prompt[int]("Enter a number: ").
		TypeErrorMessage("first").
		TypeErrorMessage("second").
		WithPrompter(prompter).
		Get(); err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify that only the second message was in effect.
	if len(prompter.messages) != 1 || prompter.messages[0] != "second" {
		t.Error("unexpected messages:", prompter.messages)
	}
}

func TestGetPrefixAndSuffixComposition(t *testing.T) {
	// Create a prompter with a single valid response.
	prompter := &scriptedPrompter{responses: []string{"42"}}

	// Perform the acquisition with a prefix and suffix.
	if _, err := Prompt[int]("Enter a number").
		Prefix("> ").
		Suffix(": ").
		WithPrompter(prompter).
		Get(); err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the composed prompt.
	if len(prompter.prompts) != 1 || prompter.prompts[0] != "> Enter a number: " {
		t.Error("unexpected prompts:", prompter.prompts)
	}
}

func TestMap(t *testing.T) {
	// Create a prompter with a single valid response.
	prompter := &scriptedPrompter{responses: []string{"informal"}}

	// Perform the acquisition with a transform.
	length, err := Map(
		Prompt[string]("Enter a word: ").WithPrompter(prompter),
		func(s string) int { return len(s) },
	)
	if err != nil {
		t.Fatal("acquisition failed:", err)
	}

	// Verify the transformed value.
	if length != 8 {
		t.Error("unexpected value:", length)
	}
}

func TestMustGetPanicsOnStreamFailure(t *testing.T) {
	// Watch for the expected panic.
	defer func() {
		if recover() == nil {
			t.Error("MustGet didn't panic on stream failure")
		}
	}()

	// Attempt the acquisition with a closed stream.
	Prompt[int]("Enter a number: ").WithPrompter(&scriptedPrompter{}).MustGet()
}
