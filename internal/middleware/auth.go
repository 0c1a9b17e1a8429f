package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/mosquefund/internal/auth"
	"github.com/mmynk/mosquefund/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// SessionKey is the context key for the caller's *session.Session.
	SessionKey contextKey = "session"
)

// SessionLookup resolves a session ID to the active session.
type SessionLookup interface {
	Lookup(sessionID string) (*session.Session, bool)
}

// SessionFrom extracts the caller's session from the context.
// Returns nil if the caller is not signed in.
func SessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(SessionKey).(*session.Session)
	return s
}

// ProfileID returns the signed-in profile ID, or "" before sign-in.
func ProfileID(ctx context.Context) string {
	if s := SessionFrom(ctx); s != nil {
		return s.Profile.ID
	}
	return ""
}

// WithSession returns an interceptor that resolves the bearer token to the
// active session and stores it in the request context. Requests without a
// usable token proceed unauthenticated; each handler decides with
// session.Authorize whether that is enough.
//
// A token only resolves while its session is the active one, so signing in
// again or signing out revokes it.
func WithSession(jwtManager *auth.JWTManager, sessions SessionLookup) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			tokenString, ok := bearerToken(req.Header().Get("Authorization"))
			if !ok {
				return next(ctx, req)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				slog.DebugContext(ctx, "Ignoring invalid token", "procedure", req.Spec().Procedure, "error", err)
				return next(ctx, req)
			}

			s, ok := sessions.Lookup(claims.SessionID)
			if !ok {
				slog.DebugContext(ctx, "Token refers to an ended session", "session_id", claims.SessionID)
				return next(ctx, req)
			}

			return next(context.WithValue(ctx, SessionKey, s), req)
		}
	}
}

// bearerToken parses an "Authorization: Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
