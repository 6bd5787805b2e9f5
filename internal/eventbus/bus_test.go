package eventbus

import "testing"

type ping struct{ n int }

type pong struct{ n int }

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	b := New()

	var order []int
	Subscribe(b, func(ping) { order = append(order, 1) })
	Subscribe(b, func(ping) { order = append(order, 2) })
	Subscribe(b, func(ping) { order = append(order, 3) })

	b.Publish(ping{})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestPublishIsExactType(t *testing.T) {
	b := New()

	pings, pongs := 0, 0
	Subscribe(b, func(ping) { pings++ })
	Subscribe(b, func(pong) { pongs++ })

	b.Publish(ping{})
	b.Publish(ping{})
	b.Publish(pong{})

	if pings != 2 || pongs != 1 {
		t.Errorf("pings=%d pongs=%d, want 2 and 1", pings, pongs)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	b := New()

	got := 0
	sub := Subscribe(b, func(ping) { got++ })

	b.Publish(ping{})
	sub.Cancel()
	sub.Cancel()
	b.Publish(ping{})

	if got != 1 {
		t.Errorf("handler ran %d times, want 1", got)
	}
}

func TestCancelDuringDispatchStopsLaterDelivery(t *testing.T) {
	b := New()

	var secondRan bool
	var second *Subscription
	Subscribe(b, func(ping) { second.Cancel() })
	second = Subscribe(b, func(ping) { secondRan = true })

	b.Publish(ping{})

	if secondRan {
		t.Error("handler cancelled earlier in the same dispatch still ran")
	}
}

func TestSubscribeDuringDispatchNotDeliveredInFlight(t *testing.T) {
	b := New()

	var lateRan int
	Subscribe(b, func(ping) {
		Subscribe(b, func(ping) { lateRan++ })
	})

	b.Publish(ping{})
	if lateRan != 0 {
		t.Error("handler subscribed during dispatch received the in-flight event")
	}

	b.Publish(ping{})
	if lateRan != 1 {
		t.Errorf("late handler ran %d times on next publish, want 1", lateRan)
	}
}

func TestHandlerPublishingSameDispatchCompletes(t *testing.T) {
	b := New()

	var pongs int
	Subscribe(b, func(ping) { b.Publish(pong{}) })
	Subscribe(b, func(pong) { pongs++ })

	b.Publish(ping{})

	if pongs != 1 {
		t.Errorf("nested publish delivered %d times, want 1", pongs)
	}
}
