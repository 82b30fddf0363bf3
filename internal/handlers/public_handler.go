package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberia-cr/barberia-api/internal/cache"
	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/httpresp"
	"github.com/barberia-cr/barberia-api/internal/infra/repository"
	"github.com/barberia-cr/barberia-api/internal/models"
	"github.com/barberia-cr/barberia-api/internal/timezone"
	ucBooking "github.com/barberia-cr/barberia-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	catalog *repository.CatalogGormRepository
	cache   *cache.Cache
	log     *zap.Logger
	tz      string

	availabilityUC      *ucBooking.GetAvailability
	monthAvailabilityUC *ucBooking.GetMonthAvailability
	createBookingUC     *ucBooking.CreateBooking
}

func NewPublicHandler(
	catalog *repository.CatalogGormRepository,
	c *cache.Cache,
	log *zap.Logger,
	tz string,
	availabilityUC *ucBooking.GetAvailability,
	monthAvailabilityUC *ucBooking.GetMonthAvailability,
	createBookingUC *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		catalog:             catalog,
		cache:               c,
		log:                 log,
		tz:                  tz,
		availabilityUC:      availabilityUC,
		monthAvailabilityUC: monthAvailabilityUC,
		createBookingUC:     createBookingUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	BarberID    string `json:"barber_id" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // "2:00 PM"
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	var services []models.Service
	if found, _ := h.cache.GetJSON(ctx, cache.KeyServices, &services); found {
		httpresp.List(c, services)
		return
	}

	services, err := h.catalog.ListVisibleServices(ctx)
	if err != nil {
		h.log.Error("failed to list services", zap.Error(err))
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	if err := h.cache.SetJSON(ctx, cache.KeyServices, services); err != nil {
		h.log.Warn("cache set failed", zap.String("key", cache.KeyServices), zap.Error(err))
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	ctx := c.Request.Context()

	var barbers []models.Barber
	if found, _ := h.cache.GetJSON(ctx, cache.KeyBarbers, &barbers); found {
		httpresp.List(c, barbers)
		return
	}

	barbers, err := h.catalog.ListVisibleBarbers(ctx)
	if err != nil {
		h.log.Error("failed to list barbers", zap.Error(err))
		httperr.Internal(c, "failed_to_list_barbers", "Error al listar barberos.")
		return
	}

	if err := h.cache.SetJSON(ctx, cache.KeyBarbers, barbers); err != nil {
		h.log.Warn("cache set failed", zap.String("key", cache.KeyBarbers), zap.Error(err))
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.Query("category")

	// Só a listagem completa é cacheada; filtros por categoria vão
	// direto ao banco.
	if category == "" {
		var products []models.Product
		if found, _ := h.cache.GetJSON(ctx, cache.KeyProducts, &products); found {
			httpresp.List(c, products)
			return
		}
	}

	products, err := h.catalog.ListProducts(ctx, category)
	if err != nil {
		h.log.Error("failed to list products", zap.Error(err))
		httperr.Internal(c, "failed_to_list_products", "Error al listar productos.")
		return
	}

	if category == "" {
		if err := h.cache.SetJSON(ctx, cache.KeyProducts, products); err != nil {
			h.log.Warn("cache set failed", zap.String("key", cache.KeyProducts), zap.Error(err))
		}
	}

	httpresp.List(c, products)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "La fecha es obligatoria.")
		return
	}

	date, err := timezone.ParseDate(dateStr, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	day, err := h.availabilityUC.Execute(c.Request.Context(), date, "")
	if err != nil {
		h.log.Error("availability failed", zap.String("date", dateStr), zap.Error(err))
		httperr.Internal(c, "availability_failed", "Error al calcular horarios.")
		return
	}

	httpresp.OK(c, day)
}

func (h *PublicHandler) MonthAvailability(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	days, err := h.monthAvailabilityUC.Execute(c.Request.Context(), year, time.Month(month))
	if err != nil {
		h.log.Error("month availability failed", zap.Error(err))
		httperr.Internal(c, "availability_failed", "Error al calcular el calendario.")
		return
	}

	httpresp.List(c, days)
}

////////////////////////////////////////////////////////
// CREATE BOOKING (wizard submit)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createBookingUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BarberID:    req.BarberID,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
		},
	)
	if err != nil {
		if httperr.BusinessCode(err) == "" {
			h.log.Error("create booking failed", zap.Error(err))
		}
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}
