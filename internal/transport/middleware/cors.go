package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/buildline/crm-backend/internal/config"
)

// exposedHeaders are readable by browser clients; downloads need the file
// name from Content-Disposition.
const exposedHeaders = "Content-Disposition, X-Request-Id"

// CORS handles cross-origin requests and answers preflight OPTIONS requests
// with 204.
func CORS(cfg config.CORSConfig) Middleware {
	origins := lo.Compact(lo.Map(strings.Split(cfg.AllowedOrigins, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))
	wildcard := lo.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (wildcard || lo.Contains(origins, origin)) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
