// Package mail sends email. OTP and verification messages go out through the
// Mail interface; SMTP is the only concrete sender today.
package mail
