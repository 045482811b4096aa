// Package observable holds a value and tells subscribers when it changes.
package observable

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Value is safe for concurrent use. The zero value holds T's zero value.
type Value[T comparable] struct {
	mu     sync.Mutex
	v      T
	nextID int
	subs   []subscriber[T]
}

func New[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

func (o *Value[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v
}

// Set stores v and notifies subscribers if it differs from the current value.
// Subscribers run on the caller's goroutine, outside the lock, in the order
// they subscribed.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	if o.v == v {
		o.mu.Unlock()
		return
	}
	o.v = v
	fns := make([]func(T), 0, len(o.subs))
	for _, sub := range o.subs {
		fns = append(fns, sub.fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn and returns a func that removes it.
func (o *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, sub := range o.subs {
			if sub.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}
