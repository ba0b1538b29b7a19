/*
Package colors provides the color tokens consumed by style declarations.

A Color is a plain 8-bit RGBA value. Parse is the boundary function used
by the styledecl validation engine: it turns raw input — named CSS colors,
hex notations or pre-built tokens — into a validated Color, or fails.
The color grammar is deliberately small; there is no color arithmetic and
no color space handling here.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor flags input Parse cannot make sense of.
var ErrInvalidColor = errors.New("invalid color value")

// Color is an 8-bit RGBA color token. Alpha is straight (not
// premultiplied), like the standard library's color.NRGBA.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color token.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA creates a color token with an alpha value in 0…1.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: alphaByte(a)}
}

// HSL creates an opaque color token from hue (degrees), saturation and
// lightness (each 0…1), using the CSS hue-to-RGB conversion.
func HSL(h int, s, l float64) Color {
	r, g, b := hslToRGB(h, s, l)
	return Color{R: r, G: g, B: b, A: 0xff}
}

// HSLA is HSL with an alpha value in 0…1.
func HSLA(h int, s, l, a float64) Color {
	r, g, b := hslToRGB(h, s, l)
	return Color{R: r, G: g, B: b, A: alphaByte(a)}
}

// RGBA implements the standard library's color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String renders the token in CSS functional notation, "rgb(r, g, b)" for
// opaque colors and "rgba(r, g, b, a)" otherwise.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	a := math.Round(float64(c.A)/0xff*1000) / 1000
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
		strconv.FormatFloat(a, 'f', -1, 64))
}

// Parse converts a raw value into a color token. Accepted inputs:
//
//     Color                    passed through
//     color.Color              converted to 8-bit straight alpha
//     "rebeccapurple"          named CSS colors
//     "#rgb", "#rgba"          short hex notation
//     "#rrggbb", "#rrggbbaa"   hex notation
//
// Anything else fails with an error wrapping ErrInvalidColor.
func Parse(value interface{}) (Color, error) {
	switch v := value.(type) {
	case Color:
		return v, nil
	case color.Color:
		return fromStdColor(v), nil
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if named, ok := namedColors[s]; ok {
			return named, nil
		}
		if strings.HasPrefix(s, "#") {
			return parseHex(s[1:])
		}
	}
	return Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, value)
}

func fromStdColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func parseHex(hex string) (Color, error) {
	var parts [4]uint8
	parts[3] = 0xff
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			n, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
			}
			parts[i] = uint8(n * 0x11) // f => ff
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			n, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
			}
			parts[i] = uint8(n)
		}
	default:
		return Color{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
	}
	return Color{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
}

func alphaByte(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 0xff
	}
	return uint8(math.Round(a * 0xff))
}

// hslToRGB converts CSS HSL coordinates to 8-bit RGB. Hue is in degrees
// (wrapped into 0…360), saturation and lightness are clamped to 0…1.
// See https://www.w3.org/TR/css-color-3/#hsl-color .
func hslToRGB(h int, s, l float64) (uint8, uint8, uint8) {
	hue := float64(((h % 360) + 360) % 360)
	s = clamp01(s)
	l = clamp01(l)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return channelByte(r + m), channelByte(g + m), channelByte(b + m)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func channelByte(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 0xff))
}
