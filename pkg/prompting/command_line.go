package prompting

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/mattn/go-isatty"

	"github.com/mutagen-io/gopass"
)

// trimLineTerminator removes a single trailing line feed (and any preceding
// carriage return) from a line of input.
func trimLineTerminator(line string) string {
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return line
}

// CommandLinePrompter is a Prompter implementation that performs prompting
// using a line-oriented input stream and an output stream. It is not safe for
// concurrent usage.
type CommandLinePrompter struct {
	// reader buffers the input stream for line-based reading.
	reader *bufio.Reader
	// writer is the output stream for prompts and messages.
	writer io.Writer
	// useTerminal indicates that responses should be read via the controlling
	// terminal instead of the buffered input stream.
	useTerminal bool
}

// NewCommandLinePrompter creates a new command line prompter that reads
// responses from the specified input stream and writes prompts and messages
// to the specified output stream.
func NewCommandLinePrompter(input io.Reader, output io.Writer) *CommandLinePrompter {
	return &CommandLinePrompter{
		reader: bufio.NewReader(input),
		writer: output,
	}
}

// Message implements Prompter.Message.
func (p *CommandLinePrompter) Message(message string) error {
	// Print the message on its own line.
	if _, err := fmt.Fprintln(p.writer, message); err != nil {
		return errors.Wrap(err, "unable to write message")
	}

	// Success.
	return nil
}

// Prompt implements Prompter.Prompt.
func (p *CommandLinePrompter) Prompt(prompt string) (string, error) {
	// Print the prompt.
	if _, err := fmt.Fprint(p.writer, prompt); err != nil {
		return "", errors.Wrap(err, "unable to write prompt")
	}

	// If we're reading via the terminal, then use an echoed terminal read,
	// which handles line editing and terminator stripping itself.
	if p.useTerminal {
		response, err := gopass.GetPasswdEchoed()
		if err != nil {
			return "", errors.Wrap(err, "unable to read response")
		}
		return string(response), nil
	}

	// Otherwise read a single line from the buffered input stream. A final
	// line that's missing its terminator still constitutes a valid response,
	// but an end-of-stream condition with no line content does not, because
	// no further responses can ever be produced.
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimLineTerminator(line), nil
		}
		return "", errors.Wrap(err, "unable to read response")
	}

	// Success.
	return trimLineTerminator(line), nil
}

// standardPrompterOnce guards initialization of the standard prompter.
var standardPrompterOnce sync.Once

// standardPrompter is the standard prompter instance.
var standardPrompter *CommandLinePrompter

// StandardPrompter returns a process-wide command line prompter operating on
// the standard input and output streams. If standard input is a terminal,
// responses are read via the terminal (providing line editing), otherwise
// they are read via a buffered reader (allowing responses to be piped in).
func StandardPrompter() *CommandLinePrompter {
	standardPrompterOnce.Do(func() {
		standardPrompter = NewCommandLinePrompter(os.Stdin, os.Stdout)
		standardPrompter.useTerminal = isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd())
	})
	return standardPrompter
}
