// Package clock abstracts the current time behind the Clocker interface so
// time-dependent logic (OTP expiry, token lifetimes) can be tested with a
// fixed clock.
package clock
