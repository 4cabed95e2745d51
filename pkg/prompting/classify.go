package prompting

import (
	"strings"
)

// PromptKind encodes the type of a prompt and how its response should be
// collected.
type PromptKind uint8

const (
	// PromptKindEcho indicates a free-form prompt for which responses should
	// be echoed.
	PromptKindEcho PromptKind = iota
	// PromptKindBinary indicates a prompt for which responses should be
	// echoed, and additionally should be restricted to yes/no answers
	// (potentially with an alternative input control in the case of GUI
	// input).
	PromptKindBinary
)

// binaryPromptSuffixes are the prompt suffixes used to identify yes/no
// prompts. The confirmation helpers in the input package generate prompts
// matching the first of these.
var binaryPromptSuffixes = []string{
	"(yes/no)? ",
	"(yes/no): ",
	"[y/n]? ",
	"[y/n]: ",
}

// Classify classifies a prompt based on its text.
func Classify(prompt string) PromptKind {
	// Check if this is a yes/no prompt.
	for _, suffix := range binaryPromptSuffixes {
		if strings.HasSuffix(prompt, suffix) {
			return PromptKindBinary
		}
	}

	// Otherwise assume this is a free-form prompt.
	return PromptKindEcho
}
