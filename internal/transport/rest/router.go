package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/buildline/crm-backend/internal/auth"
	"github.com/buildline/crm-backend/internal/config"
	"github.com/buildline/crm-backend/internal/transport/middleware"
	"github.com/buildline/crm-backend/internal/transport/respond"
)

// Authenticator resolves a bearer token to an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.Identity, error)
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Leads        *LeadHandler
	Customers    *CustomerHandler
	Appointments *AppointmentHandler
	Assets       *AssetHandler
	Employees    *EmployeeHandler
	Documents    *DocumentHandler
	Reports      *ReportHandler
}

// RouterConfig holds the cross-cutting pieces of the HTTP stack.
type RouterConfig struct {
	Logger    *slog.Logger
	Authn     Authenticator
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	// Limiter is nil when rate limiting is disabled.
	Limiter *middleware.RateLimiter
}

// NewRouter registers all routes and wraps them in the global middleware chain.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	protected := middleware.Auth(cfg.Authn)

	var loginLimit, registerLimit middleware.Middleware
	if cfg.Limiter != nil && !cfg.RateLimit.Disabled {
		loginLimit = cfg.Limiter.Limit("login", cfg.RateLimit.Login, cfg.RateLimit.Window)
		registerLimit = cfg.Limiter.Limit("register", cfg.RateLimit.Register, cfg.RateLimit.Window)
	}

	handle := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Chain(mws...)(fn))
	}
	api := func(pattern string, fn http.HandlerFunc) {
		handle(pattern, fn, protected)
	}

	// Health
	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)

	// Auth
	handle("POST /api/auth/register", h.Auth.Register, registerLimit)
	handle("POST /api/auth/login", h.Auth.Login, loginLimit)
	api("GET /api/auth/me", h.Auth.Me)

	// Leads
	api("GET /api/leads", h.Leads.List)
	api("GET /api/leads/stats", h.Leads.Stats)
	api("GET /api/leads/{id}", h.Leads.Get)
	api("GET /api/leads/{first}/{second}", leadSubroutes(h.Leads))
	api("POST /api/leads", h.Leads.Create)
	api("PUT /api/leads/{id}", h.Leads.Update)
	api("PATCH /api/leads/{id}/status", h.Leads.UpdateStatus)
	api("POST /api/leads/{id}/convert", h.Leads.Convert)
	api("DELETE /api/leads/{id}", h.Leads.Delete)

	crud(api, "/api/customers", h.Customers.List, h.Customers.Get, h.Customers.Create, h.Customers.Update, h.Customers.Delete)
	crud(api, "/api/appointments", h.Appointments.List, h.Appointments.Get, h.Appointments.Create, h.Appointments.Update, h.Appointments.Delete)
	crud(api, "/api/assets", h.Assets.List, h.Assets.Get, h.Assets.Create, h.Assets.Update, h.Assets.Delete)
	crud(api, "/api/employees", h.Employees.List, h.Employees.Get, h.Employees.Create, h.Employees.Update, h.Employees.Delete)
	crud(api, "/api/documents", h.Documents.List, h.Documents.Get, h.Documents.Upload, h.Documents.Update, h.Documents.Delete)
	api("GET /api/documents/{id}/download", h.Documents.Download)

	// Reports
	api("GET /api/reports/dashboard", h.Reports.Dashboard)
	api("GET /api/reports/charts", h.Reports.Charts)
	api("GET /api/reports/modules", h.Reports.Modules)
	api("GET /api/reports/modules/{module}/data", h.Reports.Data)
	api("GET /api/reports/modules/{module}/export", h.Reports.Export)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respond.Fail(w, http.StatusNotFound, "Route not found")
	})

	return middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(cfg.Logger),
	)(mux)
}

func crud(api func(string, http.HandlerFunc), base string, list, get, create, update, del http.HandlerFunc) {
	api("GET "+base, list)
	api("GET "+base+"/{id}", get)
	api("POST "+base, create)
	api("PUT "+base+"/{id}", update)
	api("DELETE "+base+"/{id}", del)
}

// leadSubroutes serves /api/leads/status/{status} and /api/leads/{id}/history.
// The two patterns overlap on ServeMux, so they share one registration.
func leadSubroutes(h *LeadHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		first, second := r.PathValue("first"), r.PathValue("second")
		switch {
		case first == "status":
			r.SetPathValue("status", second)
			h.ByStatus(w, r)
		case second == "history":
			r.SetPathValue("id", first)
			h.History(w, r)
		default:
			respond.Fail(w, http.StatusNotFound, "Route not found")
		}
	}
}
