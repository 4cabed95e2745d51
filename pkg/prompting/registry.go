package prompting

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/google/uuid"
)

// registryLock is the lock on the global prompter registry.
var registryLock sync.RWMutex

// registry is the global prompter registry. Each prompter is held in a
// single-element channel that serializes access to it.
var registry = make(map[string]chan Prompter)

// RegisterPrompter registers a prompter with the global registry. It
// automatically generates a unique identifier for the prompter.
func RegisterPrompter(prompter Prompter) (string, error) {
	// Generate a unique identifier for this prompter.
	random, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate prompter identifier")
	}
	identifier := "prompter_" + random.String()

	// Perform registration.
	if err := RegisterPrompterWithIdentifier(identifier, prompter); err != nil {
		return "", err
	}

	// Success.
	return identifier, nil
}

// RegisterPrompterWithIdentifier registers a prompter with the global
// registry using the specified identifier.
func RegisterPrompterWithIdentifier(identifier string, prompter Prompter) error {
	// Enforce that the identifier is non-empty.
	if identifier == "" {
		return errors.New("empty identifier")
	}

	// Create and populate the holder that will serialize access to the
	// prompter.
	holder := make(chan Prompter, 1)
	holder <- prompter

	// Lock the registry for writing and defer its release.
	registryLock.Lock()
	defer registryLock.Unlock()

	// Watch for identifier collisions. These won't occur with generated
	// identifiers, but this method accepts arbitrary identifiers.
	if _, ok := registry[identifier]; ok {
		return errors.New("identifier collision")
	}

	// Register the holder.
	registry[identifier] = holder

	// Success.
	return nil
}

// UnregisterPrompter unregisters a prompter from the global registry. If the
// prompter is not registered, this method panics. Unregistration blocks until
// any in-flight prompt operations targeting the prompter have completed.
func UnregisterPrompter(identifier string) {
	// Lock the registry for writing, grab the holder, and remove it from the
	// registry. If it isn't currently registered, this must be a logic error.
	registryLock.Lock()
	holder, ok := registry[identifier]
	if !ok {
		panic("deregistration requested for unregistered prompter")
	}
	delete(registry, identifier)
	registryLock.Unlock()

	// Drain the holder and close it to signal anyone still holding a
	// reference to it that the prompter is gone for good.
	<-holder
	close(holder)
}

// acquire grabs the holder for the specified prompter from the registry.
func acquire(identifier string) (chan Prompter, error) {
	registryLock.RLock()
	holder, ok := registry[identifier]
	registryLock.RUnlock()
	if !ok {
		return nil, errors.New("prompter not found")
	}
	return holder, nil
}

// Message invokes the Message method on a prompter in the global registry. If
// the prompter identifier provided is an empty string, this method is a no-op
// and returns a nil error.
func Message(identifier, message string) error {
	// If the prompter identifier is empty, don't do anything.
	if identifier == "" {
		return nil
	}

	// Grab the holder for the specified prompter.
	holder, err := acquire(identifier)
	if err != nil {
		return err
	}

	// Acquire the prompter itself.
	prompter, ok := <-holder
	if !ok {
		return errors.New("unable to acquire prompter")
	}

	// Perform messaging and return the prompter to the holder.
	err = prompter.Message(message)
	holder <- prompter

	// Handle errors.
	if err != nil {
		return errors.Wrap(err, "unable to message")
	}

	// Success.
	return nil
}

// Prompt invokes the Prompt method on a prompter in the global registry.
func Prompt(identifier, prompt string) (string, error) {
	// Grab the holder for the specified prompter.
	holder, err := acquire(identifier)
	if err != nil {
		return "", err
	}

	// Acquire the prompter itself.
	prompter, ok := <-holder
	if !ok {
		return "", errors.New("unable to acquire prompter")
	}

	// Perform prompting and return the prompter to the holder.
	response, err := prompter.Prompt(prompt)
	holder <- prompter

	// Handle errors.
	if err != nil {
		return "", errors.Wrap(err, "unable to prompt")
	}

	// Success.
	return response, nil
}

// registeredPrompter is a Prompter implementation that routes its operations
// through the global registry.
type registeredPrompter struct {
	// identifier is the registry identifier of the target prompter.
	identifier string
}

// RegisteredPrompter returns a Prompter that forwards its operations to the
// prompter registered under the specified identifier. Operations fail if the
// prompter has been unregistered.
func RegisteredPrompter(identifier string) Prompter {
	return &registeredPrompter{identifier: identifier}
}

// Message implements Prompter.Message.
func (p *registeredPrompter) Message(message string) error {
	return Message(p.identifier, message)
}

// Prompt implements Prompter.Prompt.
func (p *registeredPrompter) Prompt(prompt string) (string, error) {
	return Prompt(p.identifier, prompt)
}
