package styledecl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// directions are the four edges of a directional property, in the order
// CSS shorthands list them.
var directions = [4]string{"top", "right", "bottom", "left"}

// assignmentSchemes is the CSS shorthand expansion table: for a tuple of
// the given length, the value index assigned to each edge.
var assignmentSchemes = map[int][4]int{
	//  T  R  B  L
	1: {0, 0, 0, 0},
	2: {0, 1, 0, 1},
	3: {0, 1, 2, 1},
	4: {0, 1, 2, 3},
}

// directional is a composite property delegating its state to four edge
// slots. It reads as a 4-tuple (top, right, bottom, left) and writes via
// shorthand expansion.
type directional struct {
	name  string    // composite name, e.g. "margin"
	edges [4]string // edge slot names, e.g. "margin_top", …
}

// AddDirectional registers a directional property and generates its four
// edge slots from the name format, all sharing the given rule and initial
// value:
//
//     p.AddDirectional("margin%s", styledecl.NewChoices().AllowInteger(), 0)
//
// registers "margin" plus margin_top, margin_right, margin_bottom and
// margin_left.
func (p *Properties) AddDirectional(format string, choices *Choices, initial Value) *Properties {
	d := p.composite(format)
	for i, dir := range directions {
		d.edges[i] = normalize(fmt.Sprintf(format, "_"+dir))
		p.Add(d.edges[i], choices, initial)
	}
	p.register(d)
	return p
}

// AddDirectionalProxy registers a directional property over four edge
// slots which have been declared individually beforehand. No new slots are
// created; a missing edge panics.
func (p *Properties) AddDirectionalProxy(format string) *Properties {
	d := p.composite(format)
	for i, dir := range directions {
		edge := normalize(fmt.Sprintf(format, "_"+dir))
		if p.slots[edge] == nil {
			panic("styledecl: directional proxy over undeclared property: " + edge)
		}
		d.edges[i] = edge
	}
	p.register(d)
	return p
}

func (p *Properties) composite(format string) *directional {
	name := normalize(fmt.Sprintf(format, ""))
	p.checkRegistration(name)
	return &directional{name: name}
}

func (p *Properties) register(d *directional) {
	p.directional[d.name] = d
	p.dirNames = append(p.dirNames, d.name)
	p.all[d.name] = true
}

// getDirectional collects the edge values into a (top, right, bottom,
// left) tuple. Unset edges report their initial value.
func (s *Style) getDirectional(d *directional) Tuple {
	t := make(Tuple, 4)
	for i, edge := range d.edges {
		t[i] = s.getSlot(s.props.slots[edge])
	}
	return t
}

// setDirectional expands value over the four edges. The write is
// all-or-nothing: every expanded element is validated before any edge is
// stored, so a failing element leaves the declaration untouched. Each edge
// then goes through ordinary change detection, notifying only edges whose
// value actually changed.
func (s *Style) setDirectional(d *directional, value Value) error {
	tuple, ok := value.(Tuple)
	if !ok {
		tuple = Tuple{value}
	}
	scheme, ok := assignmentSchemes[len(tuple)]
	if !ok {
		return &InvalidShorthandError{Name: d.name, Length: len(tuple)}
	}
	var validated [4]Value
	for i, edge := range d.edges {
		slot := s.props.slots[edge]
		element := tuple[scheme[i]]
		if element == nil {
			return &NullValueError{Name: edge}
		}
		v, err := slot.choices.Validate(element)
		if err != nil {
			if ive, isInvalid := err.(*InvalidValueError); isInvalid {
				ive.Name = edge
			}
			return err
		}
		validated[i] = v
	}
	for i, edge := range d.edges {
		s.store(s.props.slots[edge], validated[i])
	}
	return nil
}

// deleteDirectional resets all four edges, each independently idempotent.
func (s *Style) deleteDirectional(d *directional) {
	for _, edge := range d.edges {
		s.deleteSlot(s.props.slots[edge])
	}
}
