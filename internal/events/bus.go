package events

// Bus routes facts to subscribers. Subscribers for a fact type run
// synchronously in subscription order; a fact is fully processed before
// the next one is published. Not safe for concurrent use; the whole
// pipeline runs on the host's event loop.
type Bus struct {
	handlers []func(Fact)
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for facts of type T.
func Subscribe[T Fact](b *Bus, fn func(T)) {
	b.handlers = append(b.handlers, func(f Fact) {
		if typed, ok := f.(T); ok {
			fn(typed)
		}
	})
}

// Publish delivers the fact to every matching subscriber.
func (b *Bus) Publish(f Fact) {
	for _, h := range b.handlers {
		h(f)
	}
}
