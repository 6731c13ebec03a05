package webui

import "sync"

// Subscription undoes a handler registration. Closing twice is a no-op.
type Subscription interface {
	Close()
}

// SubmitEvents dispatches form submissions to registered handlers. It
// replaces implicit callback binding so tests can tear handlers down
// deterministically.
type SubmitEvents struct {
	mu       sync.Mutex
	next     int
	handlers map[int]func(url string)
}

func NewSubmitEvents() *SubmitEvents {
	return &SubmitEvents{handlers: make(map[int]func(url string))}
}

// Subscribe registers a handler and returns its disposable subscription.
func (e *SubmitEvents) Subscribe(fn func(url string)) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.next
	e.next++
	e.handlers[id] = fn

	return &subscription{events: e, id: id}
}

// Emit delivers a submitted value to every registered handler.
func (e *SubmitEvents) Emit(url string) {
	e.mu.Lock()
	fns := make([]func(string), 0, len(e.handlers))
	for _, fn := range e.handlers {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(url)
	}
}

type subscription struct {
	events *SubmitEvents
	id     int
	once   sync.Once
}

func (s *subscription) Close() {
	s.once.Do(func() {
		s.events.mu.Lock()
		defer s.events.mu.Unlock()
		delete(s.events.handlers, s.id)
	})
}
