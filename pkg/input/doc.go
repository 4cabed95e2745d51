// Package input provides typed acquisition of interactive user input. An
// Input describes a single prompt: its text, the target type's conversion
// capability, an optional acceptance predicate, and optional failure
// messages. Get drives the prompt/convert/validate loop until a response is
// accepted, re-prompting with a message on each recoverable failure.
// Confirmation helpers are provided for yes/no questions.
package input
