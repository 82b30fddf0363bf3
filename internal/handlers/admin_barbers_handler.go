package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberia-cr/barberia-api/internal/cache"
	"github.com/barberia-cr/barberia-api/internal/models"
)

type AdminBarbersHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	log   *zap.Logger
}

func NewAdminBarbersHandler(db *gorm.DB, c *cache.Cache, log *zap.Logger) *AdminBarbersHandler {
	return &AdminBarbersHandler{db: db, cache: c, log: log}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name        string             `json:"name" binding:"required"`
	Role        string             `json:"role"`
	Experience  string             `json:"experience"`
	Quote       string             `json:"quote"`
	Specialties string             `json:"specialties"`
	ImageURL    string             `json:"image_url"`
	Visible     *bool              `json:"visible,omitempty"`
	WorkingDays models.WorkingDays `json:"working_days"`
}

type UpdateBarberRequest struct {
	Name        *string            `json:"name,omitempty"`
	Role        *string            `json:"role,omitempty"`
	Experience  *string            `json:"experience,omitempty"`
	Quote       *string            `json:"quote,omitempty"`
	Specialties *string            `json:"specialties,omitempty"`
	ImageURL    *string            `json:"image_url,omitempty"`
	Visible     *bool              `json:"visible,omitempty"`
	WorkingDays models.WorkingDays `json:"working_days,omitempty"`
}

// --------- Handlers ---------

func (h *AdminBarbersHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *AdminBarbersHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barber := models.Barber{
		Name:        req.Name,
		Role:        req.Role,
		Experience:  req.Experience,
		Quote:       req.Quote,
		Specialties: req.Specialties,
		ImageURL:    req.ImageURL,
		Visible:     true,
		WorkingDays: req.WorkingDays,
	}
	if req.Visible != nil {
		barber.Visible = *req.Visible
	}

	if err := h.db.Create(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusCreated, barber)
}

func (h *AdminBarbersHandler) Update(c *gin.Context) {
	var barber models.Barber
	if err := h.db.Where("id = ?", c.Param("id")).First(&barber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Role != nil {
		barber.Role = *req.Role
	}
	if req.Experience != nil {
		barber.Experience = *req.Experience
	}
	if req.Quote != nil {
		barber.Quote = *req.Quote
	}
	if req.Specialties != nil {
		barber.Specialties = *req.Specialties
	}
	if req.ImageURL != nil {
		barber.ImageURL = *req.ImageURL
	}
	if req.Visible != nil {
		barber.Visible = *req.Visible
	}
	if req.WorkingDays != nil {
		barber.WorkingDays = req.WorkingDays
	}

	if err := h.db.Save(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, barber)
}

func (h *AdminBarbersHandler) Delete(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&models.Barber{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_barber"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	h.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// invalidate descarta a listagem pública cacheada. Falha aqui não muda a
// resposta da mutação, mas serve dado velho até o TTL; fica no log.
func (h *AdminBarbersHandler) invalidate(c *gin.Context) {
	if err := h.cache.Invalidate(c.Request.Context(), cache.KeyBarbers); err != nil {
		h.log.Warn("cache invalidation failed",
			zap.String("key", cache.KeyBarbers),
			zap.Error(err),
		)
	}
}
