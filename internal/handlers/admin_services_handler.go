package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberia-cr/barberia-api/internal/cache"
	"github.com/barberia-cr/barberia-api/internal/models"
)

type AdminServicesHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	log   *zap.Logger
}

func NewAdminServicesHandler(db *gorm.DB, c *cache.Cache, log *zap.Logger) *AdminServicesHandler {
	return &AdminServicesHandler{db: db, cache: c, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min"`
	ImageURL    string  `json:"image_url"`
	Visible     *bool   `json:"visible,omitempty"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Visible     *bool    `json:"visible,omitempty"`
}

// --------- Handlers ---------

// List devolve o catálogo completo, inclusive serviços ocultos: o admin
// enxerga tudo, só a listagem pública filtra visibilidade.
func (h *AdminServicesHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *AdminServicesHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		ImageURL:    req.ImageURL,
		Visible:     true,
	}
	if req.Visible != nil {
		service.Visible = *req.Visible
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusCreated, service)
}

func (h *AdminServicesHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.Where("id = ?", c.Param("id")).First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}
	if req.Visible != nil {
		service.Visible = *req.Visible
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, service)
}

func (h *AdminServicesHandler) Delete(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&models.Service{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AdminServicesHandler) invalidate(c *gin.Context) {
	if err := h.cache.Invalidate(c.Request.Context(), cache.KeyServices); err != nil {
		h.log.Warn("cache invalidation failed",
			zap.String("key", cache.KeyServices),
			zap.Error(err),
		)
	}
}
