package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/api/internal/models"
	"shopfront/api/internal/repository"
	"shopfront/api/internal/service"
)

type memoryOrderStore struct {
	orders map[string]models.Order
}

func (m *memoryOrderStore) Create(_ context.Context, order models.Order) error {
	m.orders[order.ID] = order
	return nil
}

func (m *memoryOrderStore) List(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, order := range m.orders {
		out = append(out, order)
	}
	return out, nil
}

func (m *memoryOrderStore) GetByID(_ context.Context, id string) (models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return models.Order{}, repository.ErrOrderNotFound
	}
	return order, nil
}

func (m *memoryOrderStore) UpdateStatus(_ context.Context, id string, status models.OrderStatus) (models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return models.Order{}, repository.ErrOrderNotFound
	}
	order.Status = status
	m.orders[id] = order
	return order, nil
}

func (m *memoryOrderStore) Delete(_ context.Context, id string) error {
	if _, ok := m.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

func orderTestRouter() (*gin.Engine, *memoryOrderStore) {
	gin.SetMode(gin.TestMode)
	store := &memoryOrderStore{orders: make(map[string]models.Order)}

	h := HandlerSet{
		log:          zerolog.Nop(),
		orderService: service.NewOrderService(store, zerolog.Nop()),
	}

	engine := gin.New()
	engine.POST("/api/orders", h.CreateOrder)
	engine.PUT("/api/orders/:id", h.UpdateOrderStatus)
	return engine, store
}

func postJSON(engine *gin.Engine, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

const validOrderJSON = `{
	"customerName": "Test User",
	"phone": "044123456",
	"address": "Main Street 1",
	"items": [{"name": "iPhone 14", "qty": 1}],
	"total": 1099
}`

func TestCreateOrderHandler(t *testing.T) {
	engine, store := orderTestRouter()

	rec := postJSON(engine, http.MethodPost, "/api/orders", validOrderJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID        string    `json:"id"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Pending", resp.Status)
	assert.Contains(t, store.orders, resp.ID)
	// The 201 body carries the real creation time, not a zero value.
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreateOrderHandlerRejectsEmptyItems(t *testing.T) {
	engine, store := orderTestRouter()

	body := `{"customerName":"A","phone":"1","address":"B","items":[],"total":10}`
	rec := postJSON(engine, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.orders)
}

func TestCreateOrderHandlerRejectsNonNumericTotal(t *testing.T) {
	engine, _ := orderTestRouter()

	body := `{"customerName":"A","phone":"1","address":"B","items":[{"name":"x"}],"total":"abc"}`
	rec := postJSON(engine, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = `{"customerName":"A","phone":"1","address":"B","items":[{"name":"x"}]}`
	rec = postJSON(engine, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	engine, store := orderTestRouter()

	rec := postJSON(engine, http.MethodPost, "/api/orders", validOrderJSON)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = postJSON(engine, http.MethodPut, "/api/orders/"+created.ID, `{"status":"Completed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.OrderStatusCompleted, store.orders[created.ID].Status)

	rec = postJSON(engine, http.MethodPut, "/api/orders/"+created.ID, `{"status":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.OrderStatusCompleted, store.orders[created.ID].Status)

	rec = postJSON(engine, http.MethodPut, "/api/orders/missing", `{"status":"Shipping"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Unknown id wins over a bad status value.
	rec = postJSON(engine, http.MethodPut, "/api/orders/missing", `{"status":"bogus"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// listingOrderStore returns a fixed slice, standing in for the repository's
// newest-first SELECT.
type listingOrderStore struct {
	memoryOrderStore
	listed []models.Order
}

func (s *listingOrderStore) List(_ context.Context) ([]models.Order, error) {
	return s.listed, nil
}

func TestListOrdersPreservesStoreOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	store := &listingOrderStore{
		listed: []models.Order{
			{ID: "ord-3", Status: models.OrderStatusPending, CreatedAt: base.Add(2 * time.Hour)},
			{ID: "ord-2", Status: models.OrderStatusShipping, CreatedAt: base.Add(time.Hour)},
			{ID: "ord-1", Status: models.OrderStatusCompleted, CreatedAt: base},
		},
	}

	h := HandlerSet{
		log:          zerolog.Nop(),
		orderService: service.NewOrderService(store, zerolog.Nop()),
	}
	engine := gin.New()
	engine.GET("/api/orders", h.ListOrders)

	rec := postJSON(engine, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp []struct {
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 3)

	// Newest first, exactly as the store produced it.
	assert.Equal(t, "ord-3", resp[0].ID)
	assert.Equal(t, "ord-2", resp[1].ID)
	assert.Equal(t, "ord-1", resp[2].ID)
	assert.True(t, resp[0].CreatedAt.After(resp[1].CreatedAt))
	assert.True(t, resp[1].CreatedAt.After(resp[2].CreatedAt))
}
