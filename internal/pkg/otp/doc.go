// Package otp manages short-lived numeric passcodes filed per identity
// in an expiring credential store.
//
// At most one code is active per identity: issuing a new code replaces
// the old, a successful verification consumes the code so it can never
// be replayed, and expiry is enforced entirely by the store's TTL.
package otp
