// Package signal is a minimal synchronous observer: listeners are called inline,
// in the order they were registered.
package signal

// Signal holds the listeners of one event type.
type Signal[T any] struct {
	listeners []*listener[T]
}

type listener[T any] struct {
	fn func(T)
}

// Subscription - handle returned by Listen, used to stop listening.
type Subscription struct {
	cancel func()
}

// Cancel - removes the listener. Calling it more than once is a no-op.
func (that *Subscription) Cancel() {
	if that == nil || that.cancel == nil {
		return
	}

	that.cancel()
	that.cancel = nil
}

// Listen - registers fn to be called on every Send.
func (that *Signal[T]) Listen(fn func(T)) *Subscription {
	l := &listener[T]{fn: fn}
	that.listeners = append(that.listeners, l)

	return &Subscription{
		cancel: func() {
			that.remove(l)
		},
	}
}

// Send - calls every listener with value. There is no reentrancy protection:
// a listener must not trigger another Send on the same signal.
func (that *Signal[T]) Send(value T) {
	for _, l := range that.listeners {
		l.fn(value)
	}
}

// Len - number of registered listeners.
func (that *Signal[T]) Len() int {
	return len(that.listeners)
}

func (that *Signal[T]) remove(target *listener[T]) {
	for i, l := range that.listeners {
		if l == target {
			// copy so a Send already ranging over the old slice is not disturbed
			listeners := make([]*listener[T], 0, len(that.listeners)-1)
			listeners = append(listeners, that.listeners[:i]...)
			that.listeners = append(listeners, that.listeners[i+1:]...)

			return
		}
	}
}
