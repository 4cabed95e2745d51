// Package prompting provides prompting capabilities: the Prompter interface
// through which prompts are displayed and responses read, a command line
// implementation over arbitrary streams, prompt classification, and a global
// registry through which hosts can route prompting between components.
package prompting
