package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Multydelivery/nextjs-clone-dashboard/internal/config"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/routes"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/services/dashboard"
	"github.com/Multydelivery/nextjs-clone-dashboard/internal/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
		RevenueDelay: 0,
	}
	r := gin.New()
	routes.RegisterRoutes(r, store.NewMemoryStore(), cfg, zap.NewNop())
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "user@nextmail.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := do(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "user@nextmail.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials.")

	// malformed credentials get the same answer
	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{
		"/api/dashboard/cards",
		"/api/dashboard/revenue",
		"/api/invoices",
		"/api/customers",
	} {
		w := do(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := do(t, r, http.MethodGet, "/api/dashboard/cards", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@nextmail.com")
}

func TestDashboardCards(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/dashboard/cards", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cards dashboard.CardData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	assert.Equal(t, 13, cards.NumberOfInvoices)
	assert.Equal(t, 6, cards.NumberOfCustomers)
	assert.NotEmpty(t, cards.TotalPaid)
	assert.NotEmpty(t, cards.TotalPending)
}

func TestDashboardRevenue(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/dashboard/revenue", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Revenue []struct {
			Month string `json:"month"`
		} `json:"revenue"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Revenue, 12)
}

func TestLatestInvoicesEndpoint(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/dashboard/latest-invoices", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Latest []dashboard.InvoiceSummary `json:"latest_invoices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Latest, 5)
}

func TestInvoiceListAndPages(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/invoices?query=evil", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Invoices []dashboard.InvoiceSummary `json:"invoices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Invoices)
	for _, row := range resp.Invoices {
		assert.Equal(t, "Evil Rabbit", row.Name)
	}

	w = do(t, r, http.MethodGet, "/api/invoices/pages", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pages struct {
		TotalPages int `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pages))
	assert.Equal(t, 3, pages.TotalPages)
}

func TestInvoiceGetByDerivedID(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	inv := store.SeedData().Invoices[0]
	id := dashboard.DeriveInvoiceID(inv)

	w := do(t, r, http.MethodGet, "/api/invoices/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Invoice dashboard.InvoiceForm `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, inv.CustomerID, resp.Invoice.CustomerID)
	assert.Equal(t, float64(inv.Amount)/100, resp.Invoice.Amount)
}

func TestInvoiceGetErrors(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/invoices/onlyonepart", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/invoices/nonexistent-2023-01-01-999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateInvoiceValidation(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	w := do(t, r, http.MethodPost, "/api/invoices", token, gin.H{
		"amount": -5,
		"status": "overdue",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors  map[string][]string `json:"errors"`
		Message string              `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", resp.Message)
	assert.Contains(t, resp.Errors["customer_id"], "Please select a customer.")
	assert.Contains(t, resp.Errors["amount"], "Please enter an amount greater than $0.")
	assert.Contains(t, resp.Errors["status"], "Please select an invoice status.")
}

func TestCreateInvoiceDemoMode(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	customer := store.SeedData().Customers[0]
	w := do(t, r, http.MethodPost, "/api/invoices", token, gin.H{
		"customer_id": customer.ID,
		"amount":      12.34,
		"status":      "pending",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(),
		"Demo Mode: Invoice creation is not available with placeholder data.")
}

func TestUpdateAndDeleteInvoiceDemoMode(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	inv := store.SeedData().Invoices[1]
	id := dashboard.DeriveInvoiceID(inv)

	w := do(t, r, http.MethodPut, "/api/invoices/"+id, token, gin.H{
		"customer_id": inv.CustomerID,
		"amount":      99.99,
		"status":      "paid",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/dashboard/invoices")

	w = do(t, r, http.MethodPut, "/api/invoices/"+id, token, gin.H{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid form data.")

	w = do(t, r, http.MethodDelete, "/api/invoices/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/dashboard/invoices")

	// demo mode: nothing actually changed
	w = do(t, r, http.MethodGet, "/api/invoices/"+id, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCustomerEndpoints(t *testing.T) {
	r := newTestRouter()
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/api/customers?query=lee", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Customers []dashboard.CustomerSummary `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Customers, 1)
	assert.Equal(t, "Lee Robinson", resp.Customers[0].Name)
	assert.NotEmpty(t, resp.Customers[0].TotalPaid)

	w = do(t, r, http.MethodGet, "/api/customers/names", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var names struct {
		Customers []dashboard.CustomerName `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Len(t, names.Customers, 6)
	assert.Equal(t, "Amy Burns", names.Customers[0].Name)
}
