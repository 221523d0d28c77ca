package property

import (
	"github.com/pkg/errors"
)

// NoSelection is the index of an enumeration without current value.
const NoSelection = -1

// Value is a typed scalar property.
type Value[T any] struct {
	base
	value T
}

// NewValue registers a scalar property on c.
func NewValue[T any](c *Container, name string, init T) *Value[T] {
	v := &Value[T]{base: base{name: name, owner: c}, value: init}
	c.register(v)

	return v
}

// Get returns the current value.
func (v *Value[T]) Get() T { return v.value }

// Set stores val and notifies listeners.
func (v *Value[T]) Set(val T) error {
	v.value = val

	return v.changed(v)
}

// Enumeration is a property selecting one entry out of a list of labels.
type Enumeration struct {
	base
	enums []string
	index int
}

// NewEnumeration registers an enumeration property on c.
func NewEnumeration(c *Container, name string, enums []string, index int) *Enumeration {
	e := &Enumeration{base: base{name: name, owner: c}, index: NoSelection}
	e.enums = append([]string(nil), enums...)

	if index >= 0 && index < len(enums) {
		e.index = index
	}

	c.register(e)

	return e
}

// HasEnums reports whether the enumeration has any label.
func (e *Enumeration) HasEnums() bool { return len(e.enums) > 0 }

// Enums returns a copy of the labels.
func (e *Enumeration) Enums() []string { return append([]string(nil), e.enums...) }

// Index returns the selected index or NoSelection.
func (e *Enumeration) Index() int { return e.index }

// ValueAsString returns the selected label, or "" without selection.
func (e *Enumeration) ValueAsString() string {
	if e.index < 0 || e.index >= len(e.enums) {
		return ""
	}

	return e.enums[e.index]
}

// SetIndex selects the label at index i.
func (e *Enumeration) SetIndex(i int) error {
	if i < 0 || i >= len(e.enums) {
		return errors.Wrapf(ErrOutOfRange, "%s: index %d of %d", e.name, i, len(e.enums))
	}

	e.index = i

	return e.changed(e)
}

// SetValueString selects label.
func (e *Enumeration) SetValueString(label string) error {
	for i, enum := range e.enums {
		if enum == label {
			e.index = i

			return e.changed(e)
		}
	}

	return errors.Wrapf(ErrUnknownValue, "%s: %q", e.name, label)
}

// SetEnums replaces the labels and selects index, which may be NoSelection.
// Listeners are notified once.
func (e *Enumeration) SetEnums(enums []string, index int) error {
	if index != NoSelection && (index < 0 || index >= len(enums)) {
		return errors.Wrapf(ErrOutOfRange, "%s: index %d of %d", e.name, index, len(enums))
	}

	e.enums = append([]string(nil), enums...)
	e.index = index

	return e.changed(e)
}

// List is an ordered list property.
type List[T comparable] struct {
	base
	values []T
}

// NewList registers a list property on c.
func NewList[T comparable](c *Container, name string) *List[T] {
	l := &List[T]{base: base{name: name, owner: c}}
	c.register(l)

	return l
}

// Values returns a copy of the list.
func (l *List[T]) Values() []T { return append([]T(nil), l.values...) }

// Len returns the number of values.
func (l *List[T]) Len() int { return len(l.values) }

// Contains reports whether v is part of the list.
func (l *List[T]) Contains(v T) bool { return l.indexOf(v) >= 0 }

// Last returns the last value of the list.
func (l *List[T]) Last() (T, bool) {
	if len(l.values) == 0 {
		var zero T

		return zero, false
	}

	return l.values[len(l.values)-1], true
}

// SetValues replaces the list.
func (l *List[T]) SetValues(values []T) error {
	l.values = append([]T(nil), values...)

	return l.changed(l)
}

// Append adds v at the end of the list.
func (l *List[T]) Append(v T) error {
	l.values = append(l.values, v)

	return l.changed(l)
}

// Remove removes the first occurrence of v. Listeners are only notified when
// v was found.
func (l *List[T]) Remove(v T) (bool, error) {
	idx := l.indexOf(v)
	if idx < 0 {
		return false, nil
	}

	l.values = append(l.values[:idx:idx], l.values[idx+1:]...)

	return true, l.changed(l)
}

func (l *List[T]) indexOf(v T) int {
	for i, value := range l.values {
		if value == v {
			return i
		}
	}

	return -1
}
