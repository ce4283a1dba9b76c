// Package clock abstracts timers and callback delivery.
//
// Every callback handed to a Clock, whether through AfterFunc or Post, runs
// on one execution context, one at a time and never concurrently with
// another callback of the same Clock. The real clock owns a loop goroutine
// for that; the manual clock runs callbacks on the goroutine that advances
// it, which makes time fully deterministic in tests.
package clock

import "time"

type Clock interface {
	// Now returns the clock's current time.
	Now() time.Time
	// AfterFunc runs f on the clock's execution context once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
	// Post runs f on the clock's execution context as soon as possible.
	Post(f func())
}

type Timer interface {
	// Stop prevents the timer from firing. It reports whether the call
	// stopped the timer, false when it already fired or was stopped.
	Stop() bool
}
