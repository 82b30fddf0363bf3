package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberia-cr/barberia-api/internal/cache"
	"github.com/barberia-cr/barberia-api/internal/models"
)

type AdminProductsHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	log   *zap.Logger
}

func NewAdminProductsHandler(db *gorm.DB, c *cache.Cache, log *zap.Logger) *AdminProductsHandler {
	return &AdminProductsHandler{db: db, cache: c, log: log}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	InStock     *bool   `json:"in_stock,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
}

// --------- Handlers ---------

func (h *AdminProductsHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	q := h.db.Session(&gorm.Session{})
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *AdminProductsHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    strings.ToLower(req.Category),
		ImageURL:    req.ImageURL,
		InStock:     true,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_product"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusCreated, product)
}

func (h *AdminProductsHandler) Update(c *gin.Context) {
	var product models.Product
	if err := h.db.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_product"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = strings.ToLower(*req.Category)
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, product)
}

func (h *AdminProductsHandler) Delete(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&models.Product{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminProductsHandler) invalidate(c *gin.Context) {
	if err := h.cache.Invalidate(c.Request.Context(), cache.KeyProducts); err != nil {
		h.log.Warn("cache invalidation failed",
			zap.String("key", cache.KeyProducts),
			zap.Error(err),
		)
	}
}
