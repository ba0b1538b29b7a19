package styledecl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// KeyValue is a container for a named style property value.
type KeyValue struct {
	Key   string
	Value Value
}

// property is a single validated slot: a name, its Choices rule and an
// optional initial value (nil = unset). Slots are created once per
// declaration type; per-instance state lives in the Style value map.
type property struct {
	name    string
	choices *Choices
	initial Value
}

// Properties is the property registry of a declaration type. It is built
// once, before any Style instance exists, and is read-only afterwards:
//
//     var boxProperties = styledecl.NewProperties().
//         Add("display", styledecl.NewChoices("block", "inline"), "block").
//         AddDirectional("margin%s", styledecl.NewChoices().AllowInteger(), 0)
//
// Registration mistakes (duplicate names, invalid initial values, adding
// after the first Style has been created) are programming errors and panic.
type Properties struct {
	slots       map[string]*property   // scalar slots, incl. directional edges
	directional map[string]*directional
	declared    []string // scalar slot names, in registration order
	dirNames    []string // directional composite names, in registration order
	all         map[string]bool
	sealed      bool
}

// NewProperties creates an empty property registry.
func NewProperties() *Properties {
	return &Properties{
		slots:       make(map[string]*property),
		directional: make(map[string]*directional),
		all:         make(map[string]bool),
	}
}

// Add registers a scalar property with a validation rule and an initial
// value. Pass nil for initial to leave the property without a default.
// The initial value is validated eagerly; an invalid one panics.
func (p *Properties) Add(name string, choices *Choices, initial Value) *Properties {
	name = normalize(name)
	p.checkRegistration(name)
	if initial != nil {
		v, err := choices.Validate(initial)
		if err != nil {
			panic(fmt.Sprintf("styledecl: invalid initial value %s for property %s; valid values are: %s",
				valueString(initial), name, choices))
		}
		initial = v
	}
	p.slots[name] = &property{name: name, choices: choices, initial: initial}
	p.declared = append(p.declared, name)
	p.all[name] = true
	return p
}

func (p *Properties) checkRegistration(name string) {
	if p.sealed {
		panic("styledecl: property registered after declaration instances exist: " + name)
	}
	if p.all[name] {
		panic("styledecl: duplicate property registration: " + name)
	}
}

// Extend copies every property of base into p, preserving base's
// registration order. This is how declaration types inherit a common
// base: each type still owns its registry, so properties added to one
// type never leak into a sibling.
func (p *Properties) Extend(base *Properties) *Properties {
	for _, name := range base.declared {
		p.checkRegistration(name)
		p.slots[name] = base.slots[name]
		p.declared = append(p.declared, name)
		p.all[name] = true
	}
	for _, name := range base.dirNames {
		p.checkRegistration(name)
		p.directional[name] = base.directional[name]
		p.dirNames = append(p.dirNames, name)
		p.all[name] = true
	}
	return p
}

// Declared returns the names of all scalar slots (directional edges
// included), in registration order.
func (p *Properties) Declared() []string {
	d := make([]string, len(p.declared))
	copy(d, p.declared)
	return d
}

// Names returns every registered property name, directional composites
// included, in registration order.
func (p *Properties) Names() []string {
	n := make([]string, 0, len(p.declared)+len(p.dirNames))
	n = append(n, p.declared...)
	n = append(n, p.dirNames...)
	return n
}

// Has tells whether name (hyphenated or underscored) is registered.
func (p *Properties) Has(name string) bool {
	return p.all[normalize(name)]
}

// normalize maps a hyphenated property name to its canonical underscored
// form, e.g. "margin-top" => "margin_top".
func normalize(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// hyphenate is the inverse of normalize, used for rendering.
func hyphenate(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
