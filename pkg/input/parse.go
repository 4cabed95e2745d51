package input

import (
	"strconv"
)

// Parser is the conversion capability used to turn a single line of raw
// response text into a value of type T. A non-nil error indicates that the
// response cannot be converted and will trigger a retry.
type Parser[T any] func(raw string) (T, error)

// Parseable enumerates the types for which a built-in conversion capability
// exists. Conversions are performed by the strconv package, so the accepted
// textual forms are those of strconv.ParseBool, strconv.ParseInt,
// strconv.ParseUint, and strconv.ParseFloat. Types outside this set can be
// acquired via PromptFunc with a custom Parser.
type Parseable interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// parseText is the built-in conversion capability for Parseable types. The
// target type is resolved statically at instantiation, so the type switch
// below covers exactly the Parseable set.
func parseText[T Parseable](raw string) (T, error) {
	var value T
	var err error
	switch v := any(&value).(type) {
	case *string:
		*v = raw
	case *bool:
		*v, err = strconv.ParseBool(raw)
	case *int:
		var parsed int64
		parsed, err = strconv.ParseInt(raw, 10, 0)
		*v = int(parsed)
	case *int8:
		var parsed int64
		parsed, err = strconv.ParseInt(raw, 10, 8)
		*v = int8(parsed)
	case *int16:
		var parsed int64
		parsed, err = strconv.ParseInt(raw, 10, 16)
		*v = int16(parsed)
	case *int32:
		var parsed int64
		parsed, err = strconv.ParseInt(raw, 10, 32)
		*v = int32(parsed)
	case *int64:
		*v, err = strconv.ParseInt(raw, 10, 64)
	case *uint:
		var parsed uint64
		parsed, err = strconv.ParseUint(raw, 10, 0)
		*v = uint(parsed)
	case *uint8:
		var parsed uint64
		parsed, err = strconv.ParseUint(raw, 10, 8)
		*v = uint8(parsed)
	case *uint16:
		var parsed uint64
		parsed, err = strconv.ParseUint(raw, 10, 16)
		*v = uint16(parsed)
	case *uint32:
		var parsed uint64
		parsed, err = strconv.ParseUint(raw, 10, 32)
		*v = uint32(parsed)
	case *uint64:
		*v, err = strconv.ParseUint(raw, 10, 64)
	case *float32:
		var parsed float64
		parsed, err = strconv.ParseFloat(raw, 32)
		*v = float32(parsed)
	case *float64:
		*v, err = strconv.ParseFloat(raw, 64)
	}
	return value, err
}
