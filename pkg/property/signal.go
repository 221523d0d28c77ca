package property

// Signal delivers values synchronously to every connected slot, in connection order.
// The zero value is ready to use. A Signal is not safe for concurrent use.
type Signal[T any] struct {
	slots  []slot[T]
	nextID int
}

type slot[T any] struct {
	id int
	fn func(T) error
}

// Connect registers fn and returns a function removing it again.
func (s *Signal[T]) Connect(fn func(T) error) (disconnect func()) {
	s.nextID++
	id := s.nextID
	s.slots = append(s.slots, slot[T]{id: id, fn: fn})

	return func() {
		for i, sl := range s.slots {
			if sl.id == id {
				s.slots = append(s.slots[:i:i], s.slots[i+1:]...)

				return
			}
		}
	}
}

// Emit calls every slot with v. Delivery stops at the first slot returning an error,
// which is returned to the caller.
func (s *Signal[T]) Emit(v T) error {
	// slots may connect or disconnect while being called
	slots := make([]slot[T], len(s.slots))
	copy(slots, s.slots)

	for _, sl := range slots {
		if err := sl.fn(v); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of connected slots.
func (s *Signal[T]) Len() int { return len(s.slots) }
