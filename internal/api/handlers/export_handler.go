package handlers

import (
	"net/http"
	"strconv"

	api "reportboard/internal/api/application"
)

// ExportHandler handles queries over exported snapshot runs
type ExportHandler struct {
	service *api.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service *api.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// ListRuns handles GET /api/v1/exports
// @Summary      List export runs
// @Description  Get every stored export run, newest first
// @Tags         exports
// @Produce      json
// @Success      200  {array}   application.ExportRunResponse
// @Failure      500  {object}  application.ErrorResponse
// @Router       /exports [get]
func (h *ExportHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	runs, err := h.service.ListRuns(r.Context())
	if err != nil {
		logger.Error("Failed to list export runs", "err", err)
		respondError(w, r, http.StatusInternalServerError, "Failed to list export runs: "+err.Error())
		return
	}

	logger.Debug("Listed export runs", "count", len(runs))
	respond(w, r, http.StatusOK, runs)
}

// ListSamples handles GET /api/v1/exports/samples
// @Summary      List exported samples
// @Description  Get exported snapshot samples with optional filtering
// @Tags         exports
// @Produce      json
// @Param        run_id  query     string  false  "Filter by export run ID"
// @Param        name    query     string  false  "Filter by sample name"
// @Param        range   query     string  false  "Filter by time range"
// @Param        limit   query     int     false  "Limit results"
// @Param        offset  query     int     false  "Offset results"
// @Success      200     {array}   application.ExportSampleResponse
// @Failure      400     {object}  application.ErrorResponse
// @Failure      500     {object}  application.ErrorResponse
// @Router       /exports/samples [get]
func (h *ExportHandler) ListSamples(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	req := api.ListSamplesRequest{}

	// Parse query parameters
	if runID := r.URL.Query().Get("run_id"); runID != "" {
		req.RunID = &runID
	}

	if name := r.URL.Query().Get("name"); name != "" {
		req.Name = &name
	}

	if tr := r.URL.Query().Get("range"); tr != "" {
		req.Range = &tr
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			req.Offset = offset
		}
	}

	samples, err := h.service.ListSamples(r.Context(), req)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	logger.Debug("Listed exported samples", "count", len(samples))
	respond(w, r, http.StatusOK, samples)
}
