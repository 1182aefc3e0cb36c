package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/OWOTL/nuomi/internal/api/dto"
	"github.com/OWOTL/nuomi/internal/application/service"
	"github.com/OWOTL/nuomi/internal/domain/voucher"
	"github.com/OWOTL/nuomi/internal/export"
)

// GenerateHandler runs generation passes over uploaded statements.
type GenerateHandler struct {
	*Base
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(svc *service.VoucherService) *GenerateHandler {
	return &GenerateHandler{Base: NewBase(svc)}
}

// Generate handles POST /api/generate - returns the generated lines as JSON.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	result, ok := h.run(w, r)
	if !ok {
		return
	}

	resp := dto.GenerateResponse{
		RunID:        result.RunID,
		VoucherCount: result.Matched,
		MatchedCount: result.Matched,
		SkippedCount: result.Skipped,
		Lines:        make([]dto.LedgerLine, 0, len(result.Lines)),
	}
	for _, l := range result.Lines {
		resp.Lines = append(resp.Lines, dto.LedgerLine{
			VoucherNo:    l.VoucherNo,
			Date:         l.Date,
			Memo:         l.Memo,
			Account:      l.Account,
			Debit:        l.Debit,
			Credit:       l.Credit,
			CustomerCode: l.CustomerCode,
			CustomerName: l.CustomerName,
		})
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// Export handles POST /api/generate/export - streams the xlsx artifact.
func (h *GenerateHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, ok := h.run(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("凭证结果_%s.xlsx", time.Now().Format("01021504"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("X-Matched-Count", fmt.Sprint(result.Matched))
	w.Header().Set("X-Skipped-Count", fmt.Sprint(result.Skipped))

	if err := export.WriteXLSX(w, result.Lines); err != nil {
		// Headers are already gone; nothing left to do but log via middleware.
		return
	}
}

// run decodes the request, runs the pass and maps domain errors to API
// errors. Fatal conditions answer 422 before any output exists.
func (h *GenerateHandler) run(w http.ResponseWriter, r *http.Request) (*service.GenerateResult, bool) {
	var req dto.GenerateRequest
	if !h.DecodeJSON(w, r, &req) {
		return nil, false
	}
	if req.StartNo == 0 {
		req.StartNo = 1
	}
	if req.StartNo < 1 {
		h.WriteError(w, http.StatusUnprocessableEntity,
			dto.ValidationError(fmt.Sprintf("start number must be positive, got %d", req.StartNo)))
		return nil, false
	}

	result, err := h.svc.Generate(service.GenerateRequest{
		StartNo: req.StartNo,
		Records: req.Transactions,
	})
	if err != nil {
		var schemaErr *voucher.SchemaError
		switch {
		case errors.As(err, &schemaErr):
			h.WriteError(w, http.StatusUnprocessableEntity, dto.ValidationError(schemaErr.Error()))
		case errors.Is(err, voucher.ErrEmptyRuleSet):
			h.WriteError(w, http.StatusUnprocessableEntity, dto.ValidationError(err.Error()))
		default:
			h.WriteError(w, http.StatusBadRequest, dto.BadRequestError(err.Error()))
		}
		return nil, false
	}
	return result, true
}
