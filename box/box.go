/*
Package box provides a ready-made style declaration for the CSS box model.

It declares the usual box properties — display, visibility, text
direction, width/height, directional margin and padding, foreground and
background color — on top of the styledecl engine, and bridges stored
values into dimension types usable by a layout engine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package box

import (
	"strconv"
	"strings"

	"github.com/npillmayer/styledecl"
	"github.com/npillmayer/styledecl/colors"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Constants for the literal property values of a box declaration.
const (
	Block   = "block"
	Inline  = "inline"
	None    = "none"
	Visible = "visible"
	Hidden  = "hidden"
	LTR     = "ltr"
	RTL     = "rtl"
	Auto    = "auto"
)

// properties is the registry of the box declaration type, built once.
// Width and height accept integers (interpreted as points), "NN%" strings
// (resolved against the containing block at layout time) or "auto".
var properties = styledecl.NewProperties().
	Add("display", styledecl.NewChoices(Block, Inline, None), Block).
	Add("visibility", styledecl.NewChoices(Visible, Hidden), Visible).
	Add("direction", styledecl.NewChoices(LTR, RTL), LTR).
	Add("width", styledecl.NewChoices(Auto).AllowInteger().AllowString(), Auto).
	Add("height", styledecl.NewChoices(Auto).AllowInteger().AllowString(), Auto).
	Add("color", styledecl.NewChoices().AllowColor(), nil).
	Add("background_color", styledecl.NewChoices().AllowColor(), nil).
	AddDirectional("margin%s", styledecl.NewChoices().AllowInteger(), 0).
	AddDirectional("padding%s", styledecl.NewChoices().AllowInteger(), 0)

// Style is a box-model style declaration. Property changes are forwarded
// to the attached Applicator, if any.
type Style struct {
	*styledecl.Style
}

// New creates an empty box declaration with an optional applicator.
func New(app styledecl.Applicator) *Style {
	s := &Style{styledecl.New(properties, forward)}
	s.SetApplicator(app)
	return s
}

// forward is the apply hook of box declarations.
func forward(s *styledecl.Style, name string, value styledecl.Value) {
	if app := s.Applicator(); app != nil {
		app.Apply(name, value)
	}
}

// Copy duplicates the declaration, attaching the given applicator.
func (s *Style) Copy(app styledecl.Applicator) *Style {
	return &Style{s.Style.Copy(app)}
}

// Margin reads the margin as a (top, right, bottom, left) tuple.
func (s *Style) Margin() styledecl.Tuple {
	v, _ := s.Get("margin")
	return v.(styledecl.Tuple)
}

// Padding reads the padding as a (top, right, bottom, left) tuple.
func (s *Style) Padding() styledecl.Tuple {
	v, _ := s.Get("padding")
	return v.(styledecl.Tuple)
}

// MarginDimens converts the margin edges to fixed dimensions.
func (s *Style) MarginDimens() [4]dimen.DU {
	return edgeDimens(s.Margin())
}

// PaddingDimens converts the padding edges to fixed dimensions.
func (s *Style) PaddingDimens() [4]dimen.DU {
	return edgeDimens(s.Padding())
}

func edgeDimens(t styledecl.Tuple) [4]dimen.DU {
	var d [4]dimen.DU
	for i, v := range t {
		d[i], _ = DimenOf(v)
	}
	return d
}

// Color reads the foreground color; ok is false while it is unset.
func (s *Style) Color() (colors.Color, bool) {
	v, _ := s.Get("color")
	c, ok := v.(colors.Color)
	return c, ok
}

// BackgroundColor reads the background color; ok is false while unset.
func (s *Style) BackgroundColor() (colors.Color, bool) {
	v, _ := s.Get("background_color")
	c, ok := v.(colors.Color)
	return c, ok
}

// DimenOf converts a stored box value to a fixed dimension in points.
// Auto and percentage values have no fixed dimension.
func DimenOf(v styledecl.Value) (dimen.DU, bool) {
	if n, ok := v.(int); ok {
		return dimen.DU(n) * dimen.PT, true
	}
	return 0, false
}

// PercentOf recognizes percentage strings like "50%".
func PercentOf(v styledecl.Value) (percent.Percent, bool) {
	var zero percent.Percent
	s, ok := v.(string)
	if !ok || !strings.HasSuffix(s, "%") {
		return zero, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "%")))
	if err != nil {
		return zero, false
	}
	return percent.FromInt(n), true
}
