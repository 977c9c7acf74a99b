package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/buildline/crm-backend/internal/auth"
	"github.com/buildline/crm-backend/internal/transport/respond"
	"github.com/buildline/crm-backend/pkg/ctxutil"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Identity, error)
}

// Auth resolves the request identity with the configured strategy and puts
// the user id and role into the context. Requests the strategy rejects get
// 401.
func Auth(authn authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := authn.Authenticate(r.Context(), extractBearerToken(r))
			if err != nil {
				respond.Fail(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}
			if rec, ok := w.(userRecorder); ok {
				rec.recordUser(identity.UserID.String())
			}
			ctx := ctxutil.WithUserID(r.Context(), identity.UserID)
			ctx = ctxutil.WithUserRole(ctx, identity.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
