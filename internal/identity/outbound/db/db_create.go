package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/identity/entity"
)

const queryCreateAccount = `
INSERT INTO identity_accounts (id, email, password_hash, is_verified)
VALUES ($1, $2, $3, FALSE)
`

func (s *DB) CreateAccount(ctx context.Context, in entity.NewAccount) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateAccount, in.ID, in.Email, in.PasswordHash)
	err = s.mapError(err)
	return err
}
