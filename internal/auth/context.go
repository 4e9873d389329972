package auth

import "context"

type ctxKey string

const claimsKey ctxKey = "sessionClaims"

// Claims is the request identity extracted from a verified token.
type Claims struct {
	UserID   uint
	Username string
	IsAdmin  bool
	JWTID    string
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(claimsKey).(Claims); ok {
		return v
	}
	return Claims{}
}

// UserID returns the authenticated user's id, zero when unauthenticated.
func UserID(ctx context.Context) uint {
	return FromContext(ctx).UserID
}
