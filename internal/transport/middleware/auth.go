package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/dms-backend/internal/domain"
	"github.com/heartmarshall/dms-backend/pkg/ctxutil"
)

type identityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (domain.Actor, error)
}

// Auth resolves the bearer token into an identity and stores it in the
// request context. Requests without a token pass through anonymously.
func Auth(resolver identityResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			actor, err := resolver.ResolveIdentity(r.Context(), token)
			if err != nil {
				status := http.StatusUnauthorized
				if !errors.Is(err, domain.ErrUnauthorized) {
					status = http.StatusServiceUnavailable
				}
				writeErrorJSON(w, status, http.StatusText(status))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// WithActor stores every identity attribute in ctx.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = ctxutil.WithUserID(ctx, actor.ID)
	ctx = ctxutil.WithUsername(ctx, actor.Username)
	return ctxutil.WithUserRole(ctx, actor.Role.String())
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
