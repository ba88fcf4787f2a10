package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopfront/api/internal/ids"
	"shopfront/api/internal/models"
	"shopfront/api/internal/repository"
)

type productRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	ImageURL    string  `json:"imageUrl"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toProductResponse(product models.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}

func (h HandlerSet) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	products, hit := h.productCache.GetList(ctx)
	if !hit {
		var err error
		products, err = h.products.List(ctx)
		if err != nil {
			h.log.Error().Err(err).Msg("list products failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		h.productCache.SetList(ctx, products)
	}

	resp := make([]productResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}

	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) GetProduct(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.log.Error().Err(err).Msg("get product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h HandlerSet) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:          ids.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.products.Create(c.Request.Context(), product); err != nil {
		h.log.Error().Err(err).Msg("create product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.productCache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h HandlerSet) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}

	product := models.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}

	updated, err := h.products.Update(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.log.Error().Err(err).Msg("update product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.productCache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, toProductResponse(updated))
}

func (h HandlerSet) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.log.Error().Err(err).Msg("delete product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.productCache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
