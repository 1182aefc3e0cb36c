package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OWOTL/nuomi/internal/api"
	"github.com/OWOTL/nuomi/internal/api/dto"
	"github.com/OWOTL/nuomi/internal/application/service"
	"github.com/OWOTL/nuomi/internal/export"
	"github.com/OWOTL/nuomi/internal/infrastructure/storage"

	"github.com/xuri/excelize/v2"
)

// createTestServer spins up the whole stack on a temp sqlite database.
func createTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "vouchers.db")
	store, err := storage.NewStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	svc, err := service.NewVoucherService(store, nil)
	require.NoError(t, err)

	server := api.NewServer(api.DefaultConfig(), svc, nil)
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts
}

func putJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func TestIntegration_FullGenerationFlow(t *testing.T) {
	ts := createTestServer(t)
	client := ts.Client()

	// Health first.
	resp, err := client.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Load the three reference tables.
	resp = putJSON(t, client, ts.URL+"/api/accounts", dto.AccountsRequest{
		Accounts: []dto.Account{
			{Code: "1001", Name: "现金"},
			{Code: "2001", Name: "应收账款"},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = putJSON(t, client, ts.URL+"/api/customers", dto.CustomersRequest{
		Customers: []dto.Customer{{Code: "C001", Name: "宁波陆尊"}},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = putJSON(t, client, ts.URL+"/api/rules", dto.RulesRequest{
		Rules: []dto.Rule{
			{Keyword: "货款", DebitAccount: "1001 现金", CreditAccount: "2001 应收账款"},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Generate vouchers.
	genBody, err := json.Marshal(dto.GenerateRequest{
		StartNo: 3,
		Transactions: []map[string]string{
			{"date": "2024-05-01", "memo": "收到货款", "amount": "8800", "counterparty": "宁波陆尊"},
			{"date": "2024-05-02", "memo": "水电费", "amount": "120", "counterparty": "供电局"},
		},
	})
	require.NoError(t, err)

	resp, err = client.Post(ts.URL+"/api/generate", "application/json", bytes.NewReader(genBody))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var genResp dto.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&genResp))
	resp.Body.Close()

	assert.Equal(t, 1, genResp.MatchedCount)
	assert.Equal(t, 1, genResp.SkippedCount)
	require.Len(t, genResp.Lines, 2)
	assert.Equal(t, "003", genResp.Lines[0].VoucherNo)
	assert.Equal(t, "8800", genResp.Lines[0].Debit)
	assert.Equal(t, "8800", genResp.Lines[1].Credit)
	assert.Equal(t, "C001", genResp.Lines[1].CustomerCode)

	// The run is in the history.
	resp, err = client.Get(ts.URL + "/api/runs")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var runsResp dto.RunListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runsResp))
	resp.Body.Close()

	require.Equal(t, 1, runsResp.TotalCount)
	assert.Equal(t, genResp.RunID, runsResp.Runs[0].ID)
	assert.Equal(t, 3, runsResp.Runs[0].StartNo)
}

func TestIntegration_ExportDownload(t *testing.T) {
	ts := createTestServer(t)
	client := ts.Client()

	resp := putJSON(t, client, ts.URL+"/api/rules", dto.RulesRequest{
		Rules: []dto.Rule{{Keyword: "租金", DebitAccount: "6602 管理费用", CreditAccount: "1002 银行存款"}},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	genBody, err := json.Marshal(dto.GenerateRequest{
		StartNo: 1,
		Transactions: []map[string]string{
			{"date": "2024-06-01", "memo": "支付租金", "amount": "3000", "counterparty": "物业公司"},
		},
	})
	require.NoError(t, err)

	resp, err = client.Post(ts.URL+"/api/generate/export", "application/json", bytes.NewReader(genBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "凭证结果_")

	workbook, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, export.Columns, rows[0])
	assert.Equal(t, "001", rows[1][0])
	assert.Equal(t, "6602 管理费用", rows[1][3])
	assert.Equal(t, "3000", rows[1][4])
	assert.Equal(t, "1002 银行存款", rows[2][3])
}

func TestIntegration_BackupSurvivesRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "vouchers.db")

	open := func() *httptest.Server {
		store, err := storage.NewStorage(dbPath)
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })

		svc, err := service.NewVoucherService(store, nil)
		require.NoError(t, err)

		server := api.NewServer(api.DefaultConfig(), svc, nil)
		ts := httptest.NewServer(server.Router())
		t.Cleanup(ts.Close)
		return ts
	}

	ts := open()
	client := ts.Client()

	resp := putJSON(t, client, ts.URL+"/api/customers", dto.CustomersRequest{
		Customers: []dto.Customer{{Code: "C009", Name: "绍兴建材"}},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	ts.Close()

	// Reopen against the same database file.
	ts2 := open()
	resp, err := ts2.Client().Get(ts2.URL + "/api/customers")
	require.NoError(t, err)
	defer resp.Body.Close()

	var listResp dto.CustomerListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listResp))
	require.Equal(t, 1, listResp.TotalCount)
	assert.Equal(t, "绍兴建材", listResp.Customers[0].Name)
}
