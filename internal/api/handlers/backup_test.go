package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OWOTL/nuomi/internal/api/dto"
	"github.com/OWOTL/nuomi/internal/api/handlers"
	"github.com/OWOTL/nuomi/internal/application/service"
	"github.com/OWOTL/nuomi/internal/refstore"
)

func TestBackupHandler_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	handler := handlers.NewBackupHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/backup", nil)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var doc refstore.Document
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	require.Len(t, doc.Cust, 1)
	require.Len(t, doc.Rules, 1)
	assert.Equal(t, "C001", doc.Cust[0]["code"])

	// Restore the same document into an empty service.
	empty := newEmptyService(t)
	restoreHandler := handlers.NewBackupHandler(empty)

	rec = postJSON(t, restoreHandler.Restore, "/api/restore", doc)
	assert.Equal(t, http.StatusOK, rec.Code)

	tables := empty.Tables()
	require.Len(t, tables.Customers, 1)
	assert.Equal(t, "宁波陆尊", tables.Customers[0].Name)
	require.Len(t, tables.Rules, 1)
	assert.Equal(t, "货款", tables.Rules[0].Keyword)
}

func TestRunsHandler_List(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Generate(service.GenerateRequest{
		StartNo: 1,
		Records: []map[string]string{
			{"date": "2024-01-01", "memo": "收到货款", "amount": "100", "counterparty": "宁波陆尊"},
		},
	})
	require.NoError(t, err)

	handler := handlers.NewRunsHandler(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/runs?limit=10", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.RunListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, 1, resp.Runs[0].Matched)
	assert.Equal(t, 2, resp.Runs[0].LineCount)
}
