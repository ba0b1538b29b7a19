package styledecl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/styledecl/colors"
)

// Value is a style property value. Scalar property values must be
// comparable with `==` (strings, ints, floats, color tokens, …);
// directional properties additionally accept a Tuple.
type Value = interface{}

// Tuple is an ordered list of property values. Directional properties read
// as a 4-tuple (top, right, bottom, left) and accept tuples of length 1 to 4
// on writes.
type Tuple []Value

// Choices defines the recognized options for a style property: a set of
// acceptable literal constants, plus optional typed categories. A value
// passes if it is coercible into one of the enabled categories or equals
// one of the literals.
//
// A Choices rule is built once, at declaration-type setup, and is shared by
// every instance of the declaration type. It must not be modified after it
// has been attached to a property set.
type Choices struct {
	literals []Value
	string_  bool
	integer  bool
	number   bool
	color    bool
}

// NewChoices creates a validation rule accepting the given literal
// constants. Enable typed categories with the Allow… methods:
//
//     styledecl.NewChoices("auto").AllowInteger()
//
func NewChoices(literals ...Value) *Choices {
	return &Choices{literals: literals}
}

// AllowString enables the string category: any string value passes,
// trimmed of surrounding whitespace.
func (c *Choices) AllowString() *Choices {
	c.string_ = true
	return c
}

// AllowInteger enables the integer category: ints, truncating floats and
// decimal strings pass.
func (c *Choices) AllowInteger() *Choices {
	c.integer = true
	return c
}

// AllowNumber enables the number category: floats, ints and numeric
// strings pass, coerced to float64.
func (c *Choices) AllowNumber() *Choices {
	c.number = true
	return c
}

// AllowColor enables the color category: values accepted by colors.Parse
// pass, coerced to a colors.Color token.
func (c *Choices) AllowColor() *Choices {
	c.color = true
	return c
}

// Validate checks value against the rule and returns its coerced form.
// Categories are tried in fixed order — string, integer, number, color —
// before the literal set; the first match wins. A value matching a literal
// is returned verbatim. Failure yields an *InvalidValueError listing the
// legal options.
func (c *Choices) Validate(value Value) (Value, error) {
	if c.string_ {
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s), nil
		}
	}
	if c.integer {
		if i, ok := coerceInt(value); ok {
			return i, nil
		}
	}
	if c.number {
		if f, ok := coerceFloat(value); ok {
			return f, nil
		}
	}
	if c.color {
		if col, err := colors.Parse(value); err == nil {
			return col, nil
		}
	}
	if value != nil && reflect.TypeOf(value).Comparable() {
		for _, lit := range c.literals {
			if value == lit {
				return lit, nil
			}
		}
	}
	return nil, &InvalidValueError{Value: value, Choices: c}
}

// Options returns the human-readable option list: the literals, lower-cased
// and hyphenated, in sorted order, followed by an angle-bracket marker for
// each enabled category.
func (c *Choices) Options() []string {
	opts := make([]string, 0, len(c.literals)+4)
	for _, lit := range c.literals {
		s := strings.ToLower(fmt.Sprintf("%v", lit))
		opts = append(opts, strings.ReplaceAll(s, "_", "-"))
	}
	sort.Strings(opts)
	if c.string_ {
		opts = append(opts, "<string>")
	}
	if c.integer {
		opts = append(opts, "<integer>")
	}
	if c.number {
		opts = append(opts, "<number>")
	}
	if c.color {
		opts = append(opts, "<color>")
	}
	return opts
}

func (c *Choices) String() string {
	return strings.Join(c.Options(), ", ")
}

// coerceInt coerces value to an int, truncating floats. Strings are
// trimmed and must parse as a decimal integer.
func coerceInt(value Value) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// coerceFloat coerces value to a float64. Strings are trimmed and must
// parse as a floating point number.
func coerceFloat(value Value) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
