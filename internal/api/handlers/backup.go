package handlers

import (
	"net/http"

	"github.com/OWOTL/nuomi/internal/api/dto"
	"github.com/OWOTL/nuomi/internal/application/service"
	"github.com/OWOTL/nuomi/internal/refstore"
)

// BackupHandler exchanges the three reference tables as one portable
// document (top-level keys coa, cust, rules).
type BackupHandler struct {
	*Base
}

// NewBackupHandler creates a new backup handler.
func NewBackupHandler(svc *service.VoucherService) *BackupHandler {
	return &BackupHandler{Base: NewBase(svc)}
}

// Get handles GET /api/backup.
func (h *BackupHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.svc.Backup())
}

// Restore handles POST /api/restore - replaces all three tables.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var doc refstore.Document
	if !h.DecodeJSON(w, r, &doc) {
		return
	}

	if err := h.svc.Restore(doc); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	h.WriteJSON(w, http.StatusOK, h.svc.Backup())
}
