// Package messaging provides a small API for publishing and consuming
// messages, currently backed by NATS.
//
// The goal is to keep business code independent from the underlying messaging
// system. Use-case code relies on the interfaces in this package, so the
// broker can be swapped without touching it.
package messaging
