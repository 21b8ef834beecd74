package datetime

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors. Every error returned by Parse matches exactly one of them
// through errors.Is.
var (
	ErrUnrecognizedFormat   = errors.New("datetime: unrecognized format")
	ErrInvalidNumber        = errors.New("datetime: invalid number")
	ErrInvalidDateComponent = errors.New("datetime: invalid date component")
	ErrConflictingModifiers = errors.New("datetime: relative offset needs exactly one of \"in\" or \"ago\"")
)

// maxErrInput bounds how much of the input is echoed in error messages.
const maxErrInput = 64

// UnrecognizedFormatError is returned when no grammar matches the whole input.
type UnrecognizedFormatError struct {
	Input string // original, unnormalized text
}

func (e *UnrecognizedFormatError) Error() string {
	s := e.Input
	if len(s) > maxErrInput {
		cut := maxErrInput
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return fmt.Sprintf("datetime: unrecognized format: %q", s)
}

func (e *UnrecognizedFormatError) Is(target error) bool { return target == ErrUnrecognizedFormat }

// InvalidNumberError is returned when a duration quantity is neither a digit
// sequence nor "a"/"an", or when the summed calendar or fixed-duration terms
// reach more than 10000 years away from the reference.
type InvalidNumberError struct {
	Token string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("datetime: invalid number: %q", e.Token)
}

func (e *InvalidNumberError) Is(target error) bool { return target == ErrInvalidNumber }

// Date and time field names used by InvalidDateComponentError.
const (
	FieldYear   = "year"
	FieldMonth  = "month"
	FieldDay    = "day"
	FieldHour   = "hour"
	FieldMinute = "minute"
	FieldSecond = "second"
)

// InvalidDateComponentError is returned when a literal date or time field is
// outside its valid range, e.g. month 13 or February 30.
type InvalidDateComponentError struct {
	Field string
	Value int
}

func (e *InvalidDateComponentError) Error() string {
	return fmt.Sprintf("datetime: invalid %s: %d", e.Field, e.Value)
}

func (e *InvalidDateComponentError) Is(target error) bool { return target == ErrInvalidDateComponent }

func unrecognized(input string) error {
	return &UnrecognizedFormatError{Input: input}
}

func invalidComponent(field string, value int) error {
	return &InvalidDateComponentError{Field: field, Value: value}
}
