// Package property provides an observable container of named, typed fields.
//
// Every field belongs to a Container. Mutating a field marks it touched and emits
// a Change on the container signal, synchronously and in listener registration
// order. The first listener error aborts the delivery and is returned by the setter.
package property

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfRange   = errors.New("index out of range")
	ErrUnknownValue = errors.New("value is not part of the enumeration")
)

// Property is a named field of a Container.
type Property interface {
	// Name returns the field name.
	Name() string
	// IsTouched reports whether the field changed since the last purge.
	IsTouched() bool
	// Touch marks the field as changed without notifying listeners.
	Touch()
	// PurgeTouched clears the touched flag.
	PurgeTouched()
}

// Change is emitted every time a property of a container is set.
type Change struct {
	Container *Container
	Property  Property
}

// Container groups properties and notifies their changes.
type Container struct {
	name    string
	props   []Property
	changed *Signal[Change]
}

// NewContainer creates a container emitting its changes on changed.
// A nil signal gets replaced by a private one.
func NewContainer(name string, changed *Signal[Change]) *Container {
	if changed == nil {
		changed = &Signal[Change]{}
	}

	return &Container{
		name:    name,
		changed: changed,
	}
}

// Name returns the container name.
func (c *Container) Name() string { return c.name }

// Changed returns the signal carrying property changes.
func (c *Container) Changed() *Signal[Change] { return c.changed }

// Properties returns the registered properties in registration order.
func (c *Container) Properties() []Property {
	props := make([]Property, len(c.props))
	copy(props, c.props)

	return props
}

// Property returns the property called name.
func (c *Container) Property(name string) (Property, bool) {
	for _, p := range c.props {
		if p.Name() == name {
			return p, true
		}
	}

	return nil, false
}

// IsTouched reports whether any property is touched.
func (c *Container) IsTouched() bool {
	for _, p := range c.props {
		if p.IsTouched() {
			return true
		}
	}

	return false
}

// PurgeTouched clears the touched flag of every property.
func (c *Container) PurgeTouched() {
	for _, p := range c.props {
		p.PurgeTouched()
	}
}

func (c *Container) register(p Property) {
	c.props = append(c.props, p)
}

func (c *Container) notify(p Property) error {
	return c.changed.Emit(Change{Container: c, Property: p})
}

type base struct {
	name    string
	touched bool
	owner   *Container
}

func (b *base) Name() string    { return b.name }
func (b *base) IsTouched() bool { return b.touched }
func (b *base) Touch()          { b.touched = true }
func (b *base) PurgeTouched()   { b.touched = false }

// changed marks p touched and notifies the owning container.
func (b *base) changed(p Property) error {
	b.touched = true
	if b.owner == nil {
		return nil
	}

	return errors.Wrapf(b.owner.notify(p), "property %s", b.name)
}
