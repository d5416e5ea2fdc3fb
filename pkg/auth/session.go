package auth

import "context"

// Session identifies the authenticated caller of a request.
type Session struct {
	UserID string
	Role   string
}

// SessionFromClaims builds a Session from validated token claims.
func SessionFromClaims(claims *Claims) Session {
	return Session{UserID: claims.UserID, Role: claims.Role}
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored in ctx, if any.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok && s.UserID != ""
}
