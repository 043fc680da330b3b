// Package otp generates the short numeric one-time passwords that the
// application emails to users.
//
// Codes are compared against a stored value with a server-side expiry, so
// there is no shared-secret algorithm here; the package is a thin
// generator behind a small interface for test replacement.
package otp
