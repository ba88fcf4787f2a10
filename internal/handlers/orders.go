package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopfront/api/internal/models"
	"shopfront/api/internal/repository"
	"shopfront/api/internal/service"
)

type createOrderRequest struct {
	CustomerName string           `json:"customerName"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	Items        []map[string]any `json:"items"`
	Total        *float64         `json:"total"`
}

type orderResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Items        []map[string]any   `json:"items"`
	Total        float64            `json:"total"`
	Status       models.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func toOrderResponse(order models.Order) orderResponse {
	return orderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Address:      order.Address,
		Items:        order.Items,
		Total:        order.Total,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
}

func (h HandlerSet) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload"})
		return
	}
	if req.Total == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total must be a non-negative number"})
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), service.CreateOrderInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        req.Items,
		Total:        *req.Total,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("create order failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h HandlerSet) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list orders failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}

	c.JSON(http.StatusOK, resp)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h HandlerSet) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		case errors.Is(err, repository.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			h.log.Error().Err(err).Msg("update order status failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h HandlerSet) DeleteOrder(c *gin.Context) {
	if err := h.orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		h.log.Error().Err(err).Msg("delete order failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
