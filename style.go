package styledecl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Applicator is the external collaborator receiving property changes, i.e.
// the bridge into a rendering backend. A style declaration holds its
// applicator as a non-owning back-reference. Applicators must tolerate
// being called with a property's initial value (on delete and Reapply) and
// must not synchronously mutate the property being applied.
type Applicator interface {
	Apply(name string, value Value)
}

// ApplyFunc is the extension point of a style declaration. Concrete
// declaration types provide a hook which forwards property changes,
// typically to the declaration's Applicator:
//
//     func forward(s *styledecl.Style, name string, value styledecl.Value) {
//         if app := s.Applicator(); app != nil {
//             app.Apply(name, value)
//         }
//     }
//
// The hook receives the declaration it fires for, so it survives Copy.
type ApplyFunc func(s *Style, name string, value Value)

// Style is a style declaration: a dict-like aggregate of validated,
// change-notifying properties. The property registry is shared by all
// instances of a declaration type; the stored values are per instance.
//
// Style is not safe for concurrent mutation; callers sharing an instance
// across goroutines must synchronize.
type Style struct {
	props      *Properties
	values     map[string]Value
	applicator Applicator
	apply      ApplyFunc
}

// New creates an empty style declaration over a property registry. The
// apply hook is the subtype contract: creating a declaration with a nil
// hook is legal, but any change notification will then panic with
// ErrApplyNotDefined.
//
// New seals the registry; registering further properties afterwards panics.
func New(props *Properties, apply ApplyFunc) *Style {
	props.sealed = true
	return &Style{
		props:  props,
		values: make(map[string]Value),
		apply:  apply,
	}
}

// SetApplicator attaches (or replaces) the external applicator. The
// declaration does not own the applicator's lifetime. Call Reapply
// afterwards to bring a newly attached applicator up to date.
func (s *Style) SetApplicator(app Applicator) {
	s.applicator = app
}

// Applicator returns the attached applicator, or nil.
func (s *Style) Applicator() Applicator {
	return s.applicator
}

// Properties returns the registry of the declaration type.
func (s *Style) Properties() *Properties {
	return s.props
}

// notify pushes a property change through the apply hook.
func (s *Style) notify(name string, value Value) {
	if s.apply == nil {
		panic(ErrApplyNotDefined)
	}
	tracer().Debugf("apply %s = %v", name, value)
	s.apply(s, name, value)
}

// Get returns the current value of a property. Directional composites read
// as a 4-tuple (top, right, bottom, left). A property without a stored
// value reports its initial value, which is nil for properties declared
// without one.
func (s *Style) Get(name string) (Value, error) {
	name = normalize(name)
	if d := s.props.directional[name]; d != nil {
		return s.getDirectional(d), nil
	}
	slot := s.props.slots[name]
	if slot == nil {
		return nil, &UnknownPropertyError{Name: name}
	}
	return s.getSlot(slot), nil
}

func (s *Style) getSlot(slot *property) Value {
	if v, ok := s.values[slot.name]; ok {
		return v
	}
	return slot.initial
}

// Set validates value against the property's Choices and stores it. The
// apply hook fires only if the stored value actually changes. Storing nil
// is illegal; delete the property instead.
func (s *Style) Set(name string, value Value) error {
	name = normalize(name)
	if value == nil {
		return &NullValueError{Name: name}
	}
	if d := s.props.directional[name]; d != nil {
		return s.setDirectional(d, value)
	}
	slot := s.props.slots[name]
	if slot == nil {
		return &UnknownPropertyError{Name: name}
	}
	v, err := slot.choices.Validate(value)
	if err != nil {
		if ive, isInvalid := err.(*InvalidValueError); isInvalid {
			ive.Name = slot.name
		}
		return err
	}
	s.store(slot, v)
	return nil
}

// store writes an already-validated value with change detection.
func (s *Style) store(slot *property, v Value) {
	if stored, ok := s.values[slot.name]; ok && stored == v {
		return
	}
	s.values[slot.name] = v
	s.notify(slot.name, v)
}

// Delete removes the stored value of a property, reverting it to its
// initial value. Deleting an unset property is not an error; the apply
// hook is notified with the initial value either way. Deleting a
// directional composite deletes all four edges.
func (s *Style) Delete(name string) error {
	name = normalize(name)
	if d := s.props.directional[name]; d != nil {
		s.deleteDirectional(d)
		return nil
	}
	slot := s.props.slots[name]
	if slot == nil {
		return &UnknownPropertyError{Name: name}
	}
	s.deleteSlot(slot)
	return nil
}

func (s *Style) deleteSlot(slot *property) {
	delete(s.values, slot.name)
	s.notify(slot.name, slot.initial)
}

// Update sets multiple properties, in the given order. The first failing
// pair stops the update; properties set by earlier pairs stay set.
func (s *Style) Update(pairs ...KeyValue) error {
	for _, kv := range pairs {
		if err := s.Set(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// Reapply pushes the current value of every scalar property through the
// apply hook, stored or not. Use it to resynchronize a freshly attached
// applicator.
func (s *Style) Reapply() {
	for _, name := range s.props.declared {
		s.notify(name, s.getSlot(s.props.slots[name]))
	}
}

// Copy creates a duplicate declaration of the same type, attaches the
// given applicator (which may be nil) and writes every explicitly stored
// value across. Properties left at their default stay at their default in
// the copy; the apply hook fires on the copy for each transferred value.
func (s *Style) Copy(applicator Applicator) *Style {
	dup := New(s.props, s.apply)
	dup.applicator = applicator
	for _, name := range s.props.declared {
		if v, ok := s.values[name]; ok {
			if err := dup.Set(name, v); err != nil {
				panic("styledecl: stored value fails revalidation: " + err.Error())
			}
		}
	}
	return dup
}

// Keys returns the names of all explicitly stored scalar properties, in
// registration order.
func (s *Style) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for _, name := range s.props.declared {
		if _, ok := s.values[name]; ok {
			keys = append(keys, name)
		}
	}
	return keys
}

// Items returns the explicitly stored scalar properties as key/value
// pairs, in registration order.
func (s *Style) Items() []KeyValue {
	items := make([]KeyValue, 0, len(s.values))
	for _, name := range s.props.declared {
		if v, ok := s.values[name]; ok {
			items = append(items, KeyValue{Key: name, Value: v})
		}
	}
	return items
}

// IsSet tells whether a scalar property has an explicitly stored value.
func (s *Style) IsSet(name string) bool {
	_, ok := s.values[normalize(name)]
	return ok
}

// String renders all explicitly stored properties as "name: value" pairs,
// hyphenated, sorted by name and joined with "; ". This is the canonical
// serialized form of a declaration, suitable for diffing.
func (s *Style) String() string {
	pairs := make([]string, 0, len(s.values))
	for name, v := range s.values {
		pairs = append(pairs, hyphenate(name)+": "+plainString(v))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "; ")
}

// plainString renders a value for serialization, without quoting.
func plainString(v Value) string {
	return fmt.Sprintf("%v", v)
}
