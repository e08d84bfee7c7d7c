package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	api "reportboard/internal/api/application"
	"reportboard/internal/presentation"
	reportingapp "reportboard/internal/reporting/application"
	"reportboard/internal/reporting/domain"
)

// ChartHandler renders dashboard figures
type ChartHandler struct {
	service      *reportingapp.Service
	defaultRange domain.TimeRange
}

// NewChartHandler creates a new chart handler
func NewChartHandler(service *reportingapp.Service, defaultRange domain.TimeRange) *ChartHandler {
	return &ChartHandler{
		service:      service,
		defaultRange: defaultRange,
	}
}

// ListCharts handles GET /api/v1/charts
// @Summary      List charts
// @Description  Get the identifiers of every renderable figure
// @Tags         charts
// @Produce      json
// @Success      200  {array}  application.ChartResponse
// @Router       /charts [get]
func (h *ChartHandler) ListCharts(w http.ResponseWriter, r *http.Request) {
	ids := domain.ChartIDs()
	responses := make([]api.ChartResponse, len(ids))
	for i, id := range ids {
		responses[i] = api.ChartResponse{ID: string(id), Path: "/api/v1/charts/" + string(id)}
	}
	respond(w, r, http.StatusOK, responses)
}

// GetChart handles GET /api/v1/charts/{chart}
// @Summary      Render chart
// @Description  Render a dashboard figure as PNG or SVG, or return its description with format=json or format=msgpack
// @Tags         charts
// @Produce      png
// @Produce      image/svg+xml
// @Produce      json
// @Param        chart   path      string  true   "Chart identifier"
// @Param        range   query     string  false  "Time range key or label"
// @Param        format  query     string  false  "png (default), svg, json or msgpack"
// @Success      200     {file}    binary
// @Failure      400     {object}  application.ErrorResponse
// @Failure      404     {object}  application.ErrorResponse
// @Failure      422     {object}  application.ErrorResponse
// @Router       /charts/{chart} [get]
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	tr, err := resolveRange(r, h.defaultRange)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	id, err := domain.ParseChartID(chi.URLParam(r, "chart"))
	if err != nil {
		respondErr(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	describe := format == "json" || format == "msgpack"

	var renderer domain.ChartRenderer
	if !describe {
		imageFormat, err := presentation.ParseImageFormat(format)
		if err != nil {
			respondErr(w, r, err)
			return
		}
		renderer = presentation.NewImageRenderer(imageFormat)
	}

	chart, err := h.service.Chart(tr, id)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	if describe {
		respond(w, r, http.StatusOK, chart)
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, chart); err != nil {
		logger.Error("Failed to render chart", "chart", string(id), "range", string(tr), "err", err)
		respondError(w, r, http.StatusInternalServerError, "Failed to render chart: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error("Failed to write chart", "err", err)
	}
}
