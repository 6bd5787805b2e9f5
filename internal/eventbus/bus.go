// Package eventbus implements a synchronous typed publish/subscribe hub.
// Publish delivers an event to every handler subscribed to the event's
// exact runtime type, in subscription order, on the caller's goroutine,
// before returning. There is no queuing and no cross-type delivery.
package eventbus

import "reflect"

// Bus routes published events to subscribed handlers. It is not safe for
// concurrent use; the engine owns it and drives it from a single goroutine.
type Bus struct {
	subs map[reflect.Type][]*Subscription
}

// Subscription is the handle returned by Subscribe. Cancelling it stops all
// further deliveries, including deliveries within an in-flight dispatch.
type Subscription struct {
	bus       *Bus
	typ       reflect.Type
	deliver   func(any)
	cancelled bool
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[reflect.Type][]*Subscription)}
}

// Subscribe registers a handler for events of concrete type T and returns a
// cancellation handle. Handlers for the same type run in subscription order.
func Subscribe[T any](b *Bus, handler func(T)) *Subscription {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	sub := &Subscription{
		bus: b,
		typ: typ,
		deliver: func(ev any) {
			handler(ev.(T))
		},
	}
	b.subs[typ] = append(b.subs[typ], sub)
	return sub
}

// Publish delivers the event synchronously to every handler subscribed to
// the event's exact runtime type. The subscriber list is snapshotted before
// dispatch, so handlers that subscribe or cancel during dispatch do not
// change the in-flight delivery set; a cancelled subscription is skipped
// even if it was cancelled by an earlier handler of the same dispatch.
func (b *Bus) Publish(event any) {
	list := b.subs[reflect.TypeOf(event)]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*Subscription, len(list))
	copy(snapshot, list)
	for _, sub := range snapshot {
		if sub.cancelled {
			continue
		}
		sub.deliver(event)
	}
}

// Cancel unsubscribes the handler. It is idempotent; after Cancel returns
// the handler receives no further events.
func (s *Subscription) Cancel() {
	if s.cancelled {
		return
	}
	s.cancelled = true

	list := s.bus.subs[s.typ]
	for i, sub := range list {
		if sub == s {
			s.bus.subs[s.typ] = append(list[:i], list[i+1:]...)
			break
		}
	}
}
