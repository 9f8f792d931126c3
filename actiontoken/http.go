package actiontoken

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const (
	authorizationHeader   = "Authorization"
	wwwAuthenticateHeader = "WWW-Authenticate"
	// ActionStatusHeader carries the message Outlook shows after an action.
	ActionStatusHeader = "CARD-ACTION-STATUS"
	// UpdateInBodyHeader tells Outlook the response body is a refresh card.
	UpdateInBodyHeader = "CARD-UPDATE-IN-BODY"
)

type tokenKey struct{}

// WithToken returns a context carrying t.
func WithToken(ctx context.Context, t *Token) context.Context {
	return context.WithValue(ctx, tokenKey{}, t)
}

// FromContext returns the token stored by Middleware.
func FromContext(ctx context.Context) (*Token, bool) {
	t, ok := ctx.Value(tokenKey{}).(*Token)
	return t, ok
}

// SetActionStatus sets the status text Outlook displays for the action.
func SetActionStatus(w http.ResponseWriter, msg string) {
	w.Header().Set(ActionStatusHeader, msg)
}

// Middleware rejects requests without a valid bearer action token and
// stores the verified token in the request context.
func Middleware(v *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get(authorizationHeader)
			if authHeader == "" {
				v.log.InfoContext(ctx, "actiontoken.check.missing")
				w.Header().Add(wwwAuthenticateHeader, bearerChallenge(nil))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			const bearerPrefix = "Bearer "
			tok := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
			if !strings.HasPrefix(authHeader, bearerPrefix) || tok == "" {
				v.log.InfoContext(ctx, "actiontoken.check.invalid", slog.String("err", "malformed bearer authorization header"))
				w.Header().Add(wwwAuthenticateHeader, bearerChallenge([][2]string{{"error", "invalid_request"}, {"error_description", "malformed bearer authorization header"}}))
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			t, err := v.Verify(ctx, tok)
			if err != nil {
				if errors.Is(err, ErrUnauthorized) {
					w.Header().Add(wwwAuthenticateHeader, bearerChallenge([][2]string{{"error", "invalid_token"}, {"error_description", err.Error()}}))
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithToken(ctx, t)))
		})
	}
}

// bearerChallenge formats a Bearer WWW-Authenticate value with params in the
// given order.
func bearerChallenge(params [][2]string) string {
	if len(params) == 0 {
		return "Bearer"
	}
	esc := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	pieces := make([]string, 0, len(params))
	for _, p := range params {
		pieces = append(pieces, fmt.Sprintf(`%s="%s"`, p[0], esc.Replace(p[1])))
	}
	return "Bearer " + strings.Join(pieces, ", ")
}
