/*
Package styledecl implements declarative, validated style properties.

Status

API is settling down, but minor changes may still occur without notice.

Overview

A style declaration is a dict-like object carrying named style properties,
much like the `style` attribute of a DOM node carries CSS properties.
Widgets (or any other client of a rendering backend) own a style declaration
and get notified whenever one of its properties changes for real.

Properties are declared once, statically, per declaration type:

    var boxProperties = styledecl.NewProperties().
        Add("display", styledecl.NewChoices("block", "inline", "none"), "block").
        AddDirectional("margin%s", styledecl.NewChoices().AllowInteger(), 0)

Every property carries a Choices rule: a set of literal constants plus
optional typed categories (string, integer, number, color). Writes are
validated against this rule and rejected with a diagnostic naming the
legal options. Writes which change the stored value notify an apply hook;
writes which do not are silent. Directional properties fan a single name
("margin") out into four per-edge properties, using the well known CSS
1/2/3/4-value shorthand expansion, see
https://developer.mozilla.org/en-US/docs/Web/CSS/margin .

This package deliberately is not a CSS cascade: there are no selectors, no
specificity and no inheritance between rules. It is the property engine
underneath, and nothing more.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledecl

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'styledecl'.
func tracer() tracing.Trace {
	return tracing.Select("styledecl")
}
