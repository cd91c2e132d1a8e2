package tasks

import "sync"

// Subscriber is called with the new list after every dispatch.
type Subscriber func([]Task)

// Store holds the current task list and runs actions through Reduce.
// Subscribers are notified synchronously, in registration order, before
// Dispatch returns. Concurrent dispatches are serialized through the
// notification, so subscribers see lists in dispatch order. Subscribers may
// call Tasks but must not call Dispatch.
type Store struct {
	notifyMu    sync.Mutex
	mu          sync.Mutex
	list        []Task
	subscribers map[int]Subscriber
	order       []int
	nextID      int
}

// NewStore creates a Store seeded with initial.
func NewStore(initial []Task) *Store {
	return &Store{
		list:        Clone(initial),
		subscribers: make(map[int]Subscriber),
	}
}

// Tasks returns a copy of the current list.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Clone(s.list)
}

// Dispatch reduces the current list with a, stores the result and notifies
// subscribers. No-op actions still notify.
func (s *Store) Dispatch(a Action) []Task {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.list = Reduce(s.list, a)
	list := s.list
	subs := make([]Subscriber, 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subscribers[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(Clone(list))
	}
	return Clone(list)
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.subscribers[id]; !ok {
			return
		}
		delete(s.subscribers, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
