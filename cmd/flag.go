package cmd

import (
	"github.com/pkg/errors"

	"github.com/spf13/pflag"

	"github.com/informal-io/informal/pkg/logging"
)

// LevelValue is a pflag.Value implementation that parses log level names
// into logging.Level values.
type LevelValue struct {
	// level is the target level storage.
	level *logging.Level
}

// NewLevelValue creates a new LevelValue writing to the specified level.
func NewLevelValue(level *logging.Level) *LevelValue {
	return &LevelValue{level: level}
}

// String implements pflag.Value.String.
func (v *LevelValue) String() string {
	return v.level.String()
}

// Set implements pflag.Value.Set.
func (v *LevelValue) Set(name string) error {
	level, ok := logging.NameToLevel(name)
	if !ok {
		return errors.Errorf("unknown log level: %s", name)
	}
	*v.level = level
	return nil
}

// Type implements pflag.Value.Type.
func (v *LevelValue) Type() string {
	return "level"
}

var _ pflag.Value = &LevelValue{}
