package handlers

import (
	"net/http"

	"github.com/OWOTL/nuomi/internal/api/dto"
	"github.com/OWOTL/nuomi/internal/application/service"
	"github.com/OWOTL/nuomi/internal/domain/voucher"
	"github.com/OWOTL/nuomi/internal/ingest"
)

// TablesHandler serves the three reference tables: chart of accounts,
// customer directory and the rule table.
type TablesHandler struct {
	*Base
}

// NewTablesHandler creates a new tables handler.
func NewTablesHandler(svc *service.VoucherService) *TablesHandler {
	return &TablesHandler{Base: NewBase(svc)}
}

// ListAccounts handles GET /api/accounts.
func (h *TablesHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.svc.Tables().Accounts

	resp := dto.AccountListResponse{
		Accounts:   make([]dto.Account, 0, len(accounts)),
		TotalCount: len(accounts),
	}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, dto.Account{Code: a.Code, Name: a.Name})
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// ReplaceAccounts handles PUT /api/accounts - replaces the whole table.
func (h *TablesHandler) ReplaceAccounts(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountsRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	accounts := make([]voucher.Account, 0, len(req.Accounts))
	for _, a := range req.Accounts {
		accounts = append(accounts, voucher.Account{Code: a.Code, Name: a.Name})
	}

	if err := h.svc.ReplaceAccounts(accounts); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	h.ListAccounts(w, r)
}

// ImportAccounts handles POST /api/accounts/import - multipart file upload.
func (h *TablesHandler) ImportAccounts(w http.ResponseWriter, r *http.Request) {
	header, rows, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	_ = header // accounts are positional: first two columns

	added, err := h.svc.ImportAccounts(ingest.ParseAccounts(rows))
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.ImportResponse{
		Added:      added,
		TotalCount: len(h.svc.Tables().Accounts),
	})
}

// ListCustomers handles GET /api/customers.
func (h *TablesHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers := h.svc.Tables().Customers

	resp := dto.CustomerListResponse{
		Customers:  make([]dto.Customer, 0, len(customers)),
		TotalCount: len(customers),
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, dto.Customer{Code: c.Code, Name: c.Name})
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// ReplaceCustomers handles PUT /api/customers - replaces the whole table.
func (h *TablesHandler) ReplaceCustomers(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomersRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	customers := make([]voucher.Customer, 0, len(req.Customers))
	for _, c := range req.Customers {
		customers = append(customers, voucher.Customer{Code: c.Code, Name: c.Name})
	}

	if err := h.svc.ReplaceCustomers(customers); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	h.ListCustomers(w, r)
}

// ImportCustomers handles POST /api/customers/import - multipart file upload.
func (h *TablesHandler) ImportCustomers(w http.ResponseWriter, r *http.Request) {
	_, rows, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	added, err := h.svc.ImportCustomers(ingest.ParseCustomers(rows))
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.ImportResponse{
		Added:      added,
		TotalCount: len(h.svc.Tables().Customers),
	})
}

// ListRules handles GET /api/rules.
func (h *TablesHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	rules := h.svc.Tables().Rules

	resp := dto.RuleListResponse{
		Rules:      make([]dto.Rule, 0, len(rules)),
		TotalCount: len(rules),
	}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, dto.Rule{
			Keyword:       rule.Keyword,
			DebitAccount:  rule.DebitAccount,
			CreditAccount: rule.CreditAccount,
		})
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// ReplaceRules handles PUT /api/rules - replaces the whole table. Array order
// is kept verbatim, it decides which rule wins when several keywords match.
func (h *TablesHandler) ReplaceRules(w http.ResponseWriter, r *http.Request) {
	var req dto.RulesRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	rules := make([]voucher.Rule, 0, len(req.Rules))
	for _, rule := range req.Rules {
		rules = append(rules, voucher.Rule{
			Keyword:       rule.Keyword,
			DebitAccount:  rule.DebitAccount,
			CreditAccount: rule.CreditAccount,
		})
	}

	if err := h.svc.ReplaceRules(rules); err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	h.ListRules(w, r)
}

// readUpload extracts the uploaded table file from a multipart form.
func (h *TablesHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]string, [][]string, bool) {
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("missing file upload"))
		return nil, nil, false
	}
	defer file.Close()

	header, rows, err := ingest.ReadTable(file, fileHeader.Filename)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return nil, nil, false
	}
	return header, rows, true
}
