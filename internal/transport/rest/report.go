package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/buildline/crm-backend/internal/domain"
	"github.com/buildline/crm-backend/internal/service/report"
	"github.com/buildline/crm-backend/internal/transport/respond"
)

type reportService interface {
	Dashboard(ctx context.Context) (*report.Dashboard, error)
	Charts(ctx context.Context) (*report.Charts, error)
	Modules() []report.ModuleInfo
	ModuleData(ctx context.Context, key domain.ReportModule, q report.Query) (*domain.ReportData, error)
	Export(ctx context.Context, key domain.ReportModule, format string, q report.Query) (*report.ExportResult, error)
}

// ReportHandler serves /api/reports.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Dashboard handles GET /api/reports/dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, d)
}

// Charts handles GET /api/reports/charts.
func (h *ReportHandler) Charts(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Charts(r.Context())
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, c)
}

// Modules handles GET /api/reports/modules.
func (h *ReportHandler) Modules(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, http.StatusOK, h.svc.Modules())
}

// Data handles GET /api/reports/modules/{module}/data.
func (h *ReportHandler) Data(w http.ResponseWriter, r *http.Request) {
	q, err := reportQuery(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	data, err := h.svc.ModuleData(r.Context(), domain.ReportModule(r.PathValue("module")), q)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.OK(w, http.StatusOK, data)
}

// Export handles GET /api/reports/modules/{module}/export?format=pdf|xlsx|csv
// and sends the rendered file as an attachment.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	q, err := reportQuery(r)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	res, err := h.svc.Export(r.Context(), domain.ReportModule(r.PathValue("module")), r.URL.Query().Get("format"), q)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", attachment(res.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Body)))
	w.WriteHeader(http.StatusOK)
	w.Write(res.Body) //nolint:errcheck
}

func reportQuery(r *http.Request) (report.Query, error) {
	rng, err := dateRange(r)
	if err != nil {
		return report.Query{}, err
	}
	q := r.URL.Query()
	return report.Query{
		Preset:   q.Get("preset"),
		From:     rng.From,
		To:       rng.To,
		AllTime:  rng.AllTime,
		Fallback: q.Get("fallback"),
	}, nil
}
