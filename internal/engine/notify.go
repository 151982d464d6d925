package engine

import (
	"sync"
	"time"

	"github.com/CR-AudioViz-AI/crav-games/internal/catalog"
)

// DisplayDuration is how long a discovery notification stays visible before
// it clears itself.
const DisplayDuration = 3 * time.Second

// Notification is the transient "card discovered" banner state. It is not
// part of the persisted progress.
type Notification struct {
	Card     catalog.Card
	Location string
	At       time.Time
}

// Notifier surfaces one-shot discovery notifications. Each published
// notification replaces the previous one and auto-expires after
// DisplayDuration. Close cancels the pending expiry so teardown never
// leaves a timer referencing stale state.
type Notifier struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	subs    []func(Notification)
	closed  bool
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a callback invoked synchronously on every publish.
func (n *Notifier) Subscribe(fn func(Notification)) {
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

func (n *Notifier) Publish(note Notification) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = &note
	n.timer = time.AfterFunc(DisplayDuration, func() { n.expire(note) })
	subs := make([]func(Notification), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn(note)
	}
}

// expire clears the banner unless a newer notification replaced it.
func (n *Notifier) expire(note Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.Card.ID == note.Card.ID && n.current.At.Equal(note.At) {
		n.current = nil
	}
}

// Current returns the visible notification, or nil when none is showing.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	note := *n.current
	return &note
}

// Close cancels any pending expiry and drops further publishes.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
