package styledecl_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledecl"
	"github.com/npillmayer/styledecl/colors"
	"github.com/stretchr/testify/assert"
)

func TestChoicesIntegerOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	c := styledecl.NewChoices().AllowInteger()
	v, err := c.Validate("5")
	if err != nil {
		t.Fatalf("expected \"5\" to validate, got %v", err)
	}
	if v != 5 {
		t.Errorf("expected \"5\" to coerce to 5, is %v", v)
	}
	v, err = c.Validate(3.9)
	if err != nil {
		t.Fatalf("expected 3.9 to validate, got %v", err)
	}
	if v != 3 {
		t.Errorf("expected 3.9 to truncate to 3, is %v", v)
	}
	if _, err = c.Validate("five"); err == nil {
		t.Error("expected \"five\" to be rejected, isn't")
	}
	var ive *styledecl.InvalidValueError
	if !errors.As(err, &ive) {
		t.Errorf("expected an InvalidValueError, is %T", err)
	}
}

func TestChoicesNumberOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	c := styledecl.NewChoices().AllowNumber()
	v, err := c.Validate(7)
	if err != nil {
		t.Fatalf("expected 7 to validate, got %v", err)
	}
	if v != 7.0 {
		t.Errorf("expected 7 to coerce to 7.0, is %v", v)
	}
	v, err = c.Validate(" 2.5 ")
	if err != nil {
		t.Fatalf("expected \" 2.5 \" to validate, got %v", err)
	}
	if v != 2.5 {
		t.Errorf("expected \" 2.5 \" to coerce to 2.5, is %v", v)
	}
}

func TestChoicesPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	// The string category is tried before the integer category, so a
	// numeric string stays a (trimmed) string.
	c := styledecl.NewChoices().AllowString().AllowInteger()
	v, err := c.Validate(" 5 ")
	if err != nil {
		t.Fatalf("expected \" 5 \" to validate, got %v", err)
	}
	if v != "5" {
		t.Errorf("expected \" 5 \" to stay the string \"5\", is %#v", v)
	}
	// An int falls through the string category onto the integer category.
	v, err = c.Validate(5)
	if err != nil {
		t.Fatalf("expected 5 to validate, got %v", err)
	}
	if v != 5 {
		t.Errorf("expected 5 to stay 5, is %#v", v)
	}
}

func TestChoicesLiteralIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	c := styledecl.NewChoices("none", 42).AllowInteger()
	v, err := c.Validate("none")
	if err != nil {
		t.Fatalf("expected literal \"none\" to validate, got %v", err)
	}
	if v != "none" {
		t.Errorf("expected literal to be returned verbatim, is %#v", v)
	}
	// 42 is caught by the integer category first, which is fine: the
	// result is the same value.
	v, err = c.Validate(42)
	if err != nil {
		t.Fatalf("expected 42 to validate, got %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, is %#v", v)
	}
}

func TestChoicesColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	c := styledecl.NewChoices().AllowColor()
	v, err := c.Validate("#ff0000")
	if err != nil {
		t.Fatalf("expected #ff0000 to validate, got %v", err)
	}
	if v != colors.RGB(0xff, 0, 0) {
		t.Errorf("expected #ff0000 to parse to red, is %v", v)
	}
	if _, err := c.Validate("not-a-color"); err == nil {
		t.Error("expected \"not-a-color\" to be rejected, isn't")
	}
}

func TestChoicesOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledecl")
	defer teardown()
	//
	c := styledecl.NewChoices("SOME_CONST", "b").AllowInteger().AllowColor()
	assert.Equal(t, []string{"b", "some-const", "<integer>", "<color>"}, c.Options())
	assert.Equal(t, "b, some-const, <integer>, <color>", c.String())
	//
	_, err := c.Validate("nope")
	if err == nil {
		t.Fatal("expected \"nope\" to be rejected, isn't")
	}
	if !strings.Contains(err.Error(), "some-const") || !strings.Contains(err.Error(), "<color>") {
		t.Errorf("expected diagnostics to list the options, is %q", err.Error())
	}
}
