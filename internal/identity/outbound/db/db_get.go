package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/identity/entity"
)

const queryGetAccountByEmail = `
SELECT id, email, password_hash, is_verified, otp, otp_expires_at, created_at, updated_at
FROM identity_accounts
WHERE email = $1
`

func (s *DB) GetAccountByEmail(ctx context.Context, email string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByEmail")
	defer func() { s.endSpan(span, err) }()

	var acc entity.Account
	err = s.conn.QueryRow(ctx, queryGetAccountByEmail, email).Scan(
		&acc.ID,
		&acc.Email,
		&acc.PasswordHash,
		&acc.IsVerified,
		&acc.OTP,
		&acc.OTPExpiresAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &acc, nil
}
