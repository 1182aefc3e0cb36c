package handlers

import (
	"net/http"
	"time"

	"github.com/OWOTL/nuomi/internal/api/dto"
	"github.com/OWOTL/nuomi/internal/application/service"
)

// RunsHandler serves the generation-run history.
type RunsHandler struct {
	*Base
}

// NewRunsHandler creates a new runs handler.
func NewRunsHandler(svc *service.VoucherService) *RunsHandler {
	return &RunsHandler{Base: NewBase(svc)}
}

// List handles GET /api/runs - recent generation runs, newest first.
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := ParseIntParam(r, "limit", 50)

	runs, err := h.svc.Runs(limit)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	resp := dto.RunListResponse{
		Runs:       make([]dto.Run, 0, len(runs)),
		TotalCount: len(runs),
	}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, dto.Run{
			ID:         run.ID,
			StartedAt:  run.StartedAt.Format(time.RFC3339),
			FinishedAt: run.FinishedAt.Format(time.RFC3339),
			StartNo:    run.StartNo,
			Matched:    run.Matched,
			Skipped:    run.Skipped,
			LineCount:  run.LineCount,
		})
	}
	h.WriteJSON(w, http.StatusOK, resp)
}
