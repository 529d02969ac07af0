package session

import "context"

// TokenKey is the fixed storage key for the operator's bearer token.
const TokenKey = "token"

// Store holds the one piece of client-side state that survives restarts: the
// session token. Token returns "" when nothing is stored; Clear is idempotent.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
