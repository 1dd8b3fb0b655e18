package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalanjalan/jalanjalan-backend/services"
	"github.com/jalanjalan/jalanjalan-backend/types"
)

func expenseTestRouter(billStore *stubBillStore, tripStore *stubTripStore) *gin.Engine {
	h := NewExpenseHandler(services.NewExpenseService(billStore, tripStore))

	r := testEngine()
	r.POST("/v1/trips/:id/expenses", h.CreateBill)
	r.GET("/v1/trips/:id/expenses", h.ListBills)
	r.DELETE("/v1/expenses/:billId", h.DeleteBill)
	r.GET("/v1/trips/:id/balances", h.GetBalances)
	r.GET("/v1/trips/:id/settlement", h.GetSettlement)
	return r
}

func postBill(t *testing.T, r *gin.Engine, tripID string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/trips/"+tripID+"/expenses", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBill_Created(t *testing.T) {
	r := expenseTestRouter(&stubBillStore{}, newStubTripStore())

	w := postBill(t, r, "trip-1", map[string]interface{}{
		"title":        "seafood dinner",
		"amount":       120,
		"paidBy":       "Aina",
		"splitMethod":  "EQUAL",
		"participants": []string{"Aina", "Ben", "Mei"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var bill types.Bill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bill))
	assert.NotEmpty(t, bill.ID)
	assert.Equal(t, "trip-1", bill.TripID)
}

func TestCreateBill_ManualShareDriftIs400(t *testing.T) {
	r := expenseTestRouter(&stubBillStore{}, newStubTripStore())

	w := postBill(t, r, "trip-1", map[string]interface{}{
		"title":       "tickets",
		"amount":      100,
		"paidBy":      "Aina",
		"splitMethod": "MANUAL",
		"shares": []map[string]interface{}{
			{"participant": "Aina", "amount": 50},
			{"participant": "Ben", "amount": 49.5},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBill_MissingFieldsRejected(t *testing.T) {
	r := expenseTestRouter(&stubBillStore{}, newStubTripStore())

	w := postBill(t, r, "trip-1", map[string]interface{}{"title": "no amount"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBill_NotFoundIs404(t *testing.T) {
	r := expenseTestRouter(&stubBillStore{}, newStubTripStore())

	req := httptest.NewRequest(http.MethodDelete, "/v1/expenses/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSettlement_ReturnsTransfers(t *testing.T) {
	r := expenseTestRouter(&stubBillStore{}, newStubTripStore())

	require.Equal(t, http.StatusCreated, postBill(t, r, "trip-1", map[string]interface{}{
		"title":        "car rental",
		"amount":       90,
		"paidBy":       "Aina",
		"splitMethod":  "EQUAL",
		"participants": []string{"Aina", "Ben", "Mei"},
	}).Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/trips/trip-1/settlement", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Transfers []types.Transfer `json:"transfers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transfers, 2)
	for _, tr := range resp.Transfers {
		assert.Equal(t, "Aina", tr.To)
		assert.InDelta(t, 30, tr.Amount, 1e-9)
	}
}

func TestGetBalances_SettledTripIsAllZeros(t *testing.T) {
	r := expenseTestRouter(&stubBillStore{}, newStubTripStore(types.Trip{
		ID:           "trip-1",
		Participants: []string{"Aina", "Ben"},
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/trips/trip-1/balances", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Balances []types.ParticipantBalance `json:"balances"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Balances, 2)
	for _, b := range resp.Balances {
		assert.Zero(t, b.Balance)
	}
}
