//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/buildline/crm-backend/internal/adapter/cache"
	"github.com/buildline/crm-backend/internal/adapter/postgres"
	appointmentrepo "github.com/buildline/crm-backend/internal/adapter/postgres/appointment"
	assetrepo "github.com/buildline/crm-backend/internal/adapter/postgres/asset"
	auditrepo "github.com/buildline/crm-backend/internal/adapter/postgres/audit"
	customerrepo "github.com/buildline/crm-backend/internal/adapter/postgres/customer"
	documentrepo "github.com/buildline/crm-backend/internal/adapter/postgres/document"
	employeerepo "github.com/buildline/crm-backend/internal/adapter/postgres/employee"
	leadrepo "github.com/buildline/crm-backend/internal/adapter/postgres/lead"
	"github.com/buildline/crm-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/buildline/crm-backend/internal/adapter/postgres/user"
	"github.com/buildline/crm-backend/internal/adapter/storage"
	authpkg "github.com/buildline/crm-backend/internal/auth"
	"github.com/buildline/crm-backend/internal/config"
	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/appointment"
	"github.com/buildline/crm-backend/internal/service/asset"
	authsvc "github.com/buildline/crm-backend/internal/service/auth"
	"github.com/buildline/crm-backend/internal/service/customer"
	"github.com/buildline/crm-backend/internal/service/document"
	"github.com/buildline/crm-backend/internal/service/employee"
	"github.com/buildline/crm-backend/internal/service/lead"
	"github.com/buildline/crm-backend/internal/service/report"
	"github.com/buildline/crm-backend/internal/transport/middleware"
	"github.com/buildline/crm-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type serverOptions struct {
	leads   config.LeadsConfig
	reports config.ReportsConfig
}

type serverOption func(*serverOptions)

func withLeads(cfg config.LeadsConfig) serverOption {
	return func(o *serverOptions) { o.leads = cfg }
}

func withReports(cfg config.ReportsConfig) serverOption {
	return func(o *serverOptions) { o.reports = cfg }
}

// setupTestServer bootstraps the full application stack backed by a fresh
// PostgreSQL database, so every test starts from empty tables.
func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	o := serverOptions{
		leads: config.LeadsConfig{
			TransitionPolicy: domain.TransitionPolicyPermissive,
			ConversionMode:   domain.ConversionModeCreateCustomer,
		},
		reports: config.ReportsConfig{
			CompanyName: "BuildLine Construction",
			CacheTTL:    time.Minute,
			MaxRows:     5000,
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Isolated database in the shared container.
	pool := testhelper.SetupIsolatedDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	nop := cache.Nop{}

	blobs, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	// 3. Repositories.
	audit := auditrepo.New(pool)
	users := userrepo.New(pool)
	leads := leadrepo.New(pool)
	customers := customerrepo.New(pool)
	appointments := appointmentrepo.New(pool)
	assets := assetrepo.New(pool)
	employees := employeerepo.New(pool)
	documents := documentrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		Mode:           config.AuthModeJWT,
		JWTSecret:      "test-secret-at-least-32-chars-long!!",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
		BcryptCost:     bcrypt.MinCost,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authn, err := authpkg.NewAuthenticator(authCfg, jwtMgr)
	require.NoError(t, err)

	// 5. Services.
	const maxUpload = 1 << 20
	authService := authsvc.NewService(logger, users, jwtMgr, authCfg)
	leadService := lead.NewService(logger, leads, customers, audit, txm, nop, o.leads, o.reports.CacheTTL)
	customerService := customer.NewService(logger, customers, audit, txm, nop)
	appointmentService := appointment.NewService(logger, appointments, audit, txm, nop)
	assetService := asset.NewService(logger, assets, audit, txm, nop)
	employeeService := employee.NewService(logger, employees, audit, txm, nop)
	documentService := document.NewService(logger, documents, blobs, audit, txm, nop, maxUpload)
	reportService := report.NewService(logger, report.Sources{
		Customers:    customers,
		Leads:        leads,
		Appointments: appointments,
		Assets:       assets,
		Employees:    employees,
		Documents:    documents,
	}, nop, o.reports)

	// 6. Router with the production middleware chain.
	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, "test-version", nil),
		Auth:         rest.NewAuthHandler(authService, logger),
		Leads:        rest.NewLeadHandler(leadService, logger),
		Customers:    rest.NewCustomerHandler(customerService, logger),
		Appointments: rest.NewAppointmentHandler(appointmentService, logger),
		Assets:       rest.NewAssetHandler(assetService, logger),
		Employees:    rest.NewEmployeeHandler(employeeService, logger),
		Documents:    rest.NewDocumentHandler(documentService, maxUpload, logger),
		Reports:      rest.NewReportHandler(reportService, logger),
	}, rest.RouterConfig{
		Logger: logger,
		Authn:  authn,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{Login: 100, Register: 100, Window: time.Minute},
		Limiter:   limiter,
	})

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// apiResponse is the decoded JSON envelope.
type apiResponse struct {
	Status     int                `json:"-"`
	Header     http.Header        `json:"-"`
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Message    string             `json:"message"`
	Pagination *domain.Pagination `json:"pagination"`
	Errors     []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (r apiResponse) decode(t *testing.T, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, dst), string(r.Data))
}

// do sends a JSON request and decodes the envelope.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) apiResponse {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := apiResponse{Status: resp.StatusCode, Header: resp.Header}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

// raw sends a request and returns the undecoded response.
func (ts *testServer) raw(t *testing.T, method, path, token string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// createTestUserAndGetToken inserts a user directly into the DB and returns
// a valid JWT access token for it.
func createTestUserAndGetToken(t *testing.T, ts *testServer) string {
	t.Helper()
	token, _ := createTestUserWithID(t, ts)
	return token
}

// createTestUserWithID is like createTestUserAndGetToken but also returns
// the user's UUID.
func createTestUserWithID(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	now := time.Now()

	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		userID,
		"test-"+userID.String()[:8]+"@example.com",
		"Test User",
		"not-a-real-hash",
		domain.UserRoleUser,
		now,
	)
	require.NoError(t, err, "insert test user")

	tok, err := ts.jwt.GenerateAccessToken(userID, string(domain.UserRoleUser))
	require.NoError(t, err, "generate token")

	return tok, userID
}
