package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th3akash/taste-haven-backend/entity"
	"github.com/th3akash/taste-haven-backend/services"
)

type stubOrderRepo struct {
	nextID string
	saved  []*entity.OrderRecord
}

func (s *stubOrderRepo) CreateOrder(_ context.Context, rec *entity.OrderRecord) (string, error) {
	s.saved = append(s.saved, rec)
	return s.nextID, nil
}

type stubBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (s *stubBroadcaster) Broadcast(channel string, _ any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, channel)
}

func newOrderRouter(repo *stubOrderRepo, hub *stubBroadcaster) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := NewOrderController(services.NewOrderService(repo, hub))
	r := gin.New()
	r.POST("/place-order", ctl.PlaceOnline)
	r.POST("/place-cod-order", ctl.PlaceCOD)
	return r
}

const orderBody = `{
	"table": 4,
	"items": [
		{"name": "Paneer Tikka", "price": 100, "image": "p.jpg", "quantity": 2},
		{"name": "Lassi", "price": 50, "image": "l.jpg", "quantity": 1}
	]
}`

func TestPlaceOrderEndpoint(t *testing.T) {
	repo := &stubOrderRepo{nextID: "-Nxyz"}
	hub := &stubBroadcaster{}
	r := newOrderRouter(repo, hub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/place-order", strings.NewReader(orderBody))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "-Nxyz", body["order_id"])

	require.Len(t, repo.saved, 1)
	assert.Equal(t, entity.StatusOrderPlaced, repo.saved[0].Status)
	assert.Equal(t, []string{"kitchen"}, hub.events)
}

func TestPlaceCODOrderEndpoint(t *testing.T) {
	repo := &stubOrderRepo{nextID: "-Ncod"}
	hub := &stubBroadcaster{}
	r := newOrderRouter(repo, hub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/place-cod-order", strings.NewReader(orderBody))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "-Ncod", body["order_id"])

	require.Len(t, repo.saved, 1)
	assert.Equal(t, entity.StatusPendingPayment, repo.saved[0].Status)
	assert.Empty(t, hub.events, "cash orders wait for admin approval")
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	r := newOrderRouter(&stubOrderRepo{nextID: "x"}, &stubBroadcaster{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/place-order", strings.NewReader(`{"table": 4, "items": []}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
