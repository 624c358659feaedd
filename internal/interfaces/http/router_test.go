package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/Suprimentos-api/internal/application/analytics"
	"github.com/jhoicas/Suprimentos-api/internal/application/auth"
	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/application/export"
	"github.com/jhoicas/Suprimentos-api/internal/application/ports"
	"github.com/jhoicas/Suprimentos-api/internal/application/usecase"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Suprimentos-api/internal/interfaces/http"
	"github.com/jhoicas/Suprimentos-api/pkg/logger"
)

type downLLM struct{}

func (downLLM) GenerateText(context.Context, ports.AITask, string, string) (string, error) {
	return "", errors.New("quota excedida")
}

type stubPDF struct{}

func (stubPDF) OrderPDF(context.Context, entity.Order) ([]byte, error) { return []byte("%PDF-1.4"), nil }
func (stubPDF) OrderFlowPDF(context.Context, []entity.Order, time.Time) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}
func (stubPDF) QuotationMapPDF(context.Context, entity.QuotationMap) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

// buildApp arma la API completa sobre el store en memoria.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OrderUC:     usecase.NewOrderUseCase(store.Orders(), store),
		QuotationUC: usecase.NewQuotationUseCase(store.Quotations(), store),
		AIUC:        usecase.NewAIUseCase(downLLM{}, store.Orders(), store.Quotations(), logger.Nop()),
		BackupUC:    usecase.NewBackupUseCase(store.Orders(), store.Quotations(), store),
		DashboardUC: appanalytics.NewDashboardUseCase(store.Orders(), store.Quotations()),
		PDFUC:       export.NewPDFUseCase(store.Orders(), store.Quotations(), stubPDF{}),
		AuthUC: auth.NewAuthUseCase(testOperator, string(hash), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestLogin_EmiteTokenUsable(t *testing.T) {
	app := buildApp(t)
	body, _ := json.Marshal(dto.LoginRequest{Operator: "mauricio", Password: "senha123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, testOperator, out.Operator)

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestLogin_SenhaErrada(t *testing.T) {
	app := buildApp(t)
	body, _ := json.Marshal(dto.LoginRequest{Operator: "mauricio", Password: "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOrders_CicloCompleto(t *testing.T) {
	app := buildApp(t)

	var created entity.Order
	resp := call(t, app, http.MethodPost, "/api/orders", map[string]any{
		"solicitacao_no": "SC-1",
		"fornecedor":     "rodobens",
		"valor":          "300,00",
		"parcelas":       3,
		"vencimento_nf":  "2026-01-31",
		"prioridade":     "URGENTE",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "RODOBENS", created.Supplier)
	assert.Equal(t, testOperator, created.Responsible)
	require.Len(t, created.Installments, 3)
	assert.Equal(t, "2026-02-28", created.Installments[1].DueDate.String())

	var list dto.OrderListResponse
	call(t, app, http.MethodGet, "/api/orders?q=rodo", nil, &list)
	assert.Equal(t, 1, list.Count)
	assert.True(t, decimal.NewFromInt(300).Equal(list.TotalAmount))

	var summary dto.DashboardSummaryDTO
	call(t, app, http.MethodGet, "/api/dashboard/summary", nil, &summary)
	assert.Equal(t, 1, summary.UrgentCount)

	var paid entity.Order
	resp = call(t, app, http.MethodPatch, "/api/orders/"+created.ID+"/installments/1", map[string]any{"paga": true}, &paid)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, paid.Installments[0].Paid)

	resp = call(t, app, http.MethodDelete, "/api/orders/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	resp = call(t, app, http.MethodDelete, "/api/orders/"+created.ID+"?confirm=true", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/orders/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOrders_ValidacionYPreview(t *testing.T) {
	app := buildApp(t)
	resp := call(t, app, http.MethodPost, "/api/orders", map[string]any{"fornecedor": "X"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/orders?status=PERDIDO", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var preview dto.InstallmentPreviewResponse
	call(t, app, http.MethodPost, "/api/orders/installments/preview", map[string]any{
		"valor": 100, "parcelas": 3, "vencimento_nf": "2026-01-10",
	}, &preview)
	require.Len(t, preview.Installments, 3)
	assert.True(t, decimal.NewFromInt(100).Equal(preview.Total))

	resp = call(t, app, http.MethodPost, "/api/orders/installments/preview", map[string]any{
		"valor": 100, "parcelas": int64(1) << 40,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	call(t, app, http.MethodPost, "/api/orders/installments/preview", map[string]any{
		"valor": "100", "parcelas": "4", "vencimento_nf": "2026-01-10",
	}, &preview)
	assert.Len(t, preview.Installments, 4)
}

func TestQuotations_PropagacionDeProveedores(t *testing.T) {
	app := buildApp(t)

	var m dto.QuotationMapResponse
	resp := call(t, app, http.MethodPost, "/api/quotations", nil, &m)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, m.Items, 1)
	require.Len(t, m.Items[0].Suppliers, 3)
	base := "/api/quotations/" + m.ID

	itemID, supplierID := m.Items[0].ID, m.Items[0].Suppliers[1].ID
	call(t, app, http.MethodPatch, base+"/items/"+itemID, map[string]any{"quantidade": "2"}, &m)
	call(t, app, http.MethodPatch, base+"/items/"+itemID+"/suppliers/"+supplierID,
		map[string]any{"valor_unit": "10,50", "difal": 10}, &m)
	assert.Equal(t, "23.1", m.Items[0].LowestTotal.String())
	assert.Equal(t, "FORNECEDOR 2", m.Items[0].Winner)
	assert.Equal(t, "23.1", m.GrandTotal.String())

	call(t, app, http.MethodPost, base+"/items", nil, &m)
	require.Len(t, m.Items, 2)
	assert.Len(t, m.Items[1].Suppliers, 3)

	call(t, app, http.MethodPost, base+"/suppliers", nil, &m)
	for _, it := range m.Items {
		assert.Len(t, it.Suppliers, 4)
	}

	var ids []string
	for _, s := range m.Items[0].Suppliers {
		ids = append(ids, s.ID)
	}
	for _, id := range ids[1:] {
		resp = call(t, app, http.MethodDelete, base+"/suppliers/"+id, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp = call(t, app, http.MethodDelete, base+"/suppliers/"+ids[0], nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = call(t, app, http.MethodGet, base+"/pdf", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "MAPA_")
}

func TestAI_RespaldoCuandoElModeloFalla(t *testing.T) {
	app := buildApp(t)
	var out dto.AITextResponse
	resp := call(t, app, http.MethodPost, "/api/ai/orders/summary", nil, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Fallback)
	assert.Equal(t, usecase.SummaryFallback, out.Text)

	resp = call(t, app, http.MethodPost, "/api/ai/quotations/MAP-404/analysis", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBackup_ExportaYRestaura(t *testing.T) {
	app := buildApp(t)
	call(t, app, http.MethodPost, "/api/orders", map[string]any{"solicitacao_no": "SC-9", "valor": 10}, nil)

	var backup dto.BackupDTO
	call(t, app, http.MethodGet, "/api/backup", nil, &backup)
	require.Len(t, backup.Orders, 1)

	other := buildApp(t)
	resp := call(t, other, http.MethodPut, "/api/backup", backup, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.OrderListResponse
	call(t, other, http.MethodGet, "/api/orders", nil, &list)
	assert.Equal(t, 1, list.Count)
}
