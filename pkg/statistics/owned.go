package statistics

import "fmt"

// Owned holds a value with exactly one owner at a time. Take hands the
// value to a new owner and leaves the container empty, after which Get and
// Take panic. An Owned is not safe for concurrent Take; callers that share
// one across goroutines must serialize transfers.
type Owned[T any] struct {
	v    T
	held bool
}

// Own wraps v in a container that holds it.
func Own[T any](v T) *Owned[T] {
	return &Owned[T]{v: v, held: true}
}

// Held reports whether the container still holds its value.
func (o *Owned[T]) Held() bool {
	return o != nil && o.held
}

// Get returns the held value without giving up ownership.
func (o *Owned[T]) Get() T {
	o.mustHold("Get")
	return o.v
}

// Take returns the held value and empties the container.
func (o *Owned[T]) Take() T {
	o.mustHold("Take")
	v := o.v
	var zero T
	o.v = zero
	o.held = false
	return v
}

func (o *Owned[T]) mustHold(op string) {
	if o == nil {
		panic(fmt.Sprintf("statistics: Owned.%s on nil container", op))
	}
	if !o.held {
		panic(fmt.Sprintf("statistics: Owned.%s on emptied container (value was transferred)", op))
	}
}
