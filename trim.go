package textkit

import (
	"fmt"
	"strings"
)

// asciiWhitespace is the set of bytes stripped by Trim.
const asciiWhitespace = " \t\n\r\f\v"

// TrimSide selects which end(s) of a value Trim strips. The zero value is
// TrimBoth.
type TrimSide int

// Trim sides accepted by Trim and TrimValue.
const (
	TrimBoth TrimSide = iota
	TrimLeft
	TrimRight
)

const (
	trimSideBothText  = "both"
	trimSideLeftText  = "left"
	trimSideRightText = "right"
)

// ParseTrimSide converts "both", "left" or "right" into a TrimSide. An empty
// string means the argument was omitted and yields TrimBoth. Anything else
// fails with an error wrapping ErrInvalidArgument.
func ParseTrimSide(text string) (TrimSide, error) {
	switch text {
	case "", trimSideBothText:
		return TrimBoth, nil
	case trimSideLeftText:
		return TrimLeft, nil
	case trimSideRightText:
		return TrimRight, nil
	default:
		return TrimBoth, invalidTrimSide(text)
	}
}

// Valid reports whether side is one of TrimBoth, TrimLeft or TrimRight.
func (side TrimSide) Valid() bool {
	return side == TrimBoth || side == TrimLeft || side == TrimRight
}

// String returns "both", "left" or "right".
func (side TrimSide) String() string {
	switch side {
	case TrimBoth:
		return trimSideBothText
	case TrimLeft:
		return trimSideLeftText
	case TrimRight:
		return trimSideRightText
	default:
		return fmt.Sprintf("TrimSide(%d)", int(side))
	}
}

// MarshalText encodes side as its text form and rejects invalid sides.
func (side TrimSide) MarshalText() ([]byte, error) {
	if !side.Valid() {
		return nil, invalidTrimSide(side.String())
	}
	return []byte(side.String()), nil
}

// UnmarshalText decodes side with ParseTrimSide.
func (side *TrimSide) UnmarshalText(text []byte) error {
	parsedSide, parseError := ParseTrimSide(string(text))
	if parseError != nil {
		return parseError
	}
	*side = parsedSide
	return nil
}

// Trim returns a copy of values with ASCII whitespace (space, tab, newline,
// carriage return, form feed, vertical tab) stripped from the side(s)
// selected by side.
//
// An invalid side fails before any value is processed and no output is
// returned.
func Trim(values []string, side TrimSide) ([]string, error) {
	if !side.Valid() {
		return nil, invalidTrimSide(side.String())
	}
	trimmed := make([]string, len(values))
	for index, value := range values {
		trimmed[index] = trimValue(value, side)
	}
	return trimmed, nil
}

// TrimValue applies the Trim transform to a single value.
func TrimValue(value string, side TrimSide) (string, error) {
	if !side.Valid() {
		return "", invalidTrimSide(side.String())
	}
	return trimValue(value, side), nil
}

func trimValue(value string, side TrimSide) string {
	switch side {
	case TrimLeft:
		return strings.TrimLeft(value, asciiWhitespace)
	case TrimRight:
		return strings.TrimRight(value, asciiWhitespace)
	default:
		return strings.Trim(value, asciiWhitespace)
	}
}

func invalidTrimSide(text string) error {
	return fmt.Errorf("%w: trim side %q (want %s, %s or %s)", ErrInvalidArgument, text, trimSideBothText, trimSideLeftText, trimSideRightText)
}
