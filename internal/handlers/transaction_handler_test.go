package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhijaztravel/safarbay/internal/gateway"
	"github.com/alhijaztravel/safarbay/internal/models"
)

type stubTokenSource struct {
	token string
	err   error
}

func (s *stubTokenSource) CreateToken(ctx context.Context, orderID string, grossAmount int64, customer gateway.CustomerDetails) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func newTransactionRouter(tokens gateway.TokenSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/create-transaction", CreateTransaction(tokens))
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTransactionReturnsToken(t *testing.T) {
	router := newTransactionRouter(&stubTokenSource{token: "snap-abc"})

	w := postJSON(t, router, "/api/create-transaction", `{
		"orderId": "UMRAH-1700000000000",
		"grossAmount": 50000000,
		"customerDetails": {"name": "Ahmad", "email": "ahmad@example.com", "phone": "+628123"}
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "snap-abc", resp["token"])
}

func TestCreateTransactionRejectsIncompleteBody(t *testing.T) {
	router := newTransactionRouter(&stubTokenSource{token: "snap-abc"})

	w := postJSON(t, router, "/api/create-transaction", `{"orderId": "UMRAH-1"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.NotEmpty(t, resp["details"])
}

func TestCreateTransactionSurfacesGatewayDetail(t *testing.T) {
	router := newTransactionRouter(&stubTokenSource{
		err: &models.GatewayError{Detail: "transaction_details.gross_amount is not equal to the sum of item_details"},
	})

	w := postJSON(t, router, "/api/create-transaction", `{
		"orderId": "UMRAH-1700000000000",
		"grossAmount": 50000000,
		"customerDetails": {"name": "Ahmad", "email": "ahmad@example.com", "phone": "+628123"}
	}`)

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["details"], "gross_amount")
}
