package styledecl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrApplyNotDefined is the panic value raised when a style declaration
// without an apply hook is asked to notify a property change. A nil hook is
// a programming error: concrete declaration types must provide one.
var ErrApplyNotDefined = errors.New("style declaration must define an apply hook")

// InvalidValueError rejects a value which matched no literal and no enabled
// type category of a property's Choices.
type InvalidValueError struct {
	Name    string // property name; empty for standalone validation
	Value   Value
	Choices *Choices
}

func (e *InvalidValueError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid value %s; valid values are: %s",
			valueString(e.Value), e.Choices)
	}
	return fmt.Sprintf("invalid value %s for property %s; valid values are: %s",
		valueString(e.Value), e.Name, e.Choices)
}

// NullValueError rejects a nil write. Resetting a property to its initial
// value is done by deleting it, never by storing nil.
type NullValueError struct {
	Name string
}

func (e *NullValueError) Error() string {
	return fmt.Sprintf("nil cannot be used as a style value; to reset property %s, delete it",
		e.Name)
}

// UnknownPropertyError rejects a property name which is not registered for
// the declaration type.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return "unknown style property: " + e.Name
}

// InvalidShorthandError rejects a directional write with a tuple length
// outside 1…4.
type InvalidShorthandError struct {
	Name   string
	Length int
}

func (e *InvalidShorthandError) Error() string {
	return fmt.Sprintf("invalid value for '%s'; value must be a scalar, or a tuple of 1 to 4 values (got %d)",
		e.Name, e.Length)
}

// valueString formats a property value for diagnostics, quoting strings.
func valueString(v Value) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}
