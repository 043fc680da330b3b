package entity

import "time"

type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	IsVerified   bool
	OTP          *string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasOTP reports whether the account currently holds a pending code.
// OTP and OTPExpiresAt are always set or cleared together.
func (a Account) HasOTP() bool {
	return a.OTP != nil && a.OTPExpiresAt != nil
}

type NewAccount struct {
	ID           int64
	Email        string
	PasswordHash string
}

type OTPIssuance struct {
	AccountID int64
	OTP       string
	ExpiresAt time.Time
}
