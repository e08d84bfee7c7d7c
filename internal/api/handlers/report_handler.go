package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	reportingapp "reportboard/internal/reporting/application"
	"reportboard/internal/reporting/domain"
)

// ReportHandler serves the Identity and Hygiene tabs
type ReportHandler struct {
	service      *reportingapp.Service
	defaultRange domain.TimeRange
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *reportingapp.Service, defaultRange domain.TimeRange) *ReportHandler {
	return &ReportHandler{
		service:      service,
		defaultRange: defaultRange,
	}
}

// GetIdentity handles GET /api/v1/identity
// @Summary      Identity report
// @Description  Get the Identity tab metrics for a time range
// @Tags         reports
// @Produce      json
// @Param        range   query     string  false  "Time range key or label (1m, 3 Months, ...)"
// @Param        format  query     string  false  "Response format (json or msgpack)"
// @Success      200     {object}  application.IdentityReport
// @Failure      400     {object}  application.ErrorResponse
// @Router       /identity [get]
func (h *ReportHandler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	tr, err := resolveRange(r, h.defaultRange)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	report, err := h.service.IdentityReport(tr)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	getLogger(r).Debug("Served identity report", "range", string(tr))
	respond(w, r, http.StatusOK, report)
}

// GetHygiene handles GET /api/v1/hygiene
// @Summary      Hygiene report
// @Description  Get the Hygiene tab metrics for a time range. Empty breakdowns are marked skipped.
// @Tags         reports
// @Produce      json
// @Param        range   query     string  false  "Time range key or label (1m, 3 Months, ...)"
// @Param        format  query     string  false  "Response format (json or msgpack)"
// @Success      200     {object}  application.HygieneReport
// @Failure      400     {object}  application.ErrorResponse
// @Router       /hygiene [get]
func (h *ReportHandler) GetHygiene(w http.ResponseWriter, r *http.Request) {
	tr, err := resolveRange(r, h.defaultRange)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	report, err := h.service.HygieneReport(tr)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	getLogger(r).Debug("Served hygiene report", "range", string(tr))
	respond(w, r, http.StatusOK, report)
}

// GetBreakdown handles GET /api/v1/hygiene/breakdown/{name}
// @Summary      Hygiene breakdown
// @Description  Get the derived shares of the corrections or email breakdown
// @Tags         reports
// @Produce      json
// @Param        name    path      string  true   "Breakdown name (corrections or email)"
// @Param        range   query     string  false  "Time range key or label"
// @Param        format  query     string  false  "Response format (json or msgpack)"
// @Success      200     {object}  application.Breakdown
// @Failure      400     {object}  application.ErrorResponse
// @Failure      404     {object}  application.ErrorResponse
// @Failure      422     {object}  application.ErrorResponse
// @Router       /hygiene/breakdown/{name} [get]
func (h *ReportHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	tr, err := resolveRange(r, h.defaultRange)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	name := reportingapp.BreakdownName(chi.URLParam(r, "name"))
	breakdown, err := h.service.Breakdown(tr, name)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, breakdown)
}
