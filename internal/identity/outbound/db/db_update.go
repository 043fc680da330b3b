package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/identity/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

const querySetAccountOTP = `
UPDATE identity_accounts
SET otp = $2, otp_expires_at = $3, updated_at = NOW()
WHERE id = $1
`

// SetAccountOTP overwrites any pending code on the account.
func (s *DB) SetAccountOTP(ctx context.Context, in entity.OTPIssuance) (err error) {
	ctx, span := s.startSpan(ctx, "SetAccountOTP")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, querySetAccountOTP, in.AccountID, in.OTP, in.ExpiresAt)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

const queryVerifyAccount = `
UPDATE identity_accounts
SET is_verified = TRUE, otp = NULL, otp_expires_at = NULL, updated_at = NOW()
WHERE id = $1
`

// VerifyAccount consumes the pending code and flips the verified flag.
// The flag is never unset again.
func (s *DB) VerifyAccount(ctx context.Context, accountID int64) (err error) {
	ctx, span := s.startSpan(ctx, "VerifyAccount")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryVerifyAccount, accountID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
