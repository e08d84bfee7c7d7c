package handlers

import (
	"net/http"

	api "reportboard/internal/api/application"
	"reportboard/internal/reporting/domain"
)

// RangeHandler lists the selectable time ranges
type RangeHandler struct {
	defaultRange domain.TimeRange
}

// NewRangeHandler creates a new range handler
func NewRangeHandler(defaultRange domain.TimeRange) *RangeHandler {
	return &RangeHandler{defaultRange: defaultRange}
}

// ListRanges handles GET /api/v1/ranges
// @Summary      List time ranges
// @Description  Get the selectable reporting windows, shortest first
// @Tags         ranges
// @Produce      json
// @Success      200  {array}  application.RangeResponse
// @Router       /ranges [get]
func (h *RangeHandler) ListRanges(w http.ResponseWriter, r *http.Request) {
	ranges := domain.TimeRanges()
	responses := make([]api.RangeResponse, len(ranges))
	for i, tr := range ranges {
		responses[i] = api.ToRangeResponse(tr, h.defaultRange)
	}
	respond(w, r, http.StatusOK, responses)
}
