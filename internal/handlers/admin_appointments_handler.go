package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/httpresp"
	"github.com/barberia-cr/barberia-api/internal/middleware"
	ucAdmin "github.com/barberia-cr/barberia-api/internal/usecase/admin"
)

type AdminAppointmentsHandler struct {
	createUC       *ucAdmin.CreateAppointment
	updateUC       *ucAdmin.UpdateAppointment
	deleteUC       *ucAdmin.DeleteAppointment
	listUC         *ucAdmin.ListAppointments
	changeStatusUC *ucAdmin.ChangeStatus
}

func NewAdminAppointmentsHandler(
	createUC *ucAdmin.CreateAppointment,
	updateUC *ucAdmin.UpdateAppointment,
	deleteUC *ucAdmin.DeleteAppointment,
	listUC *ucAdmin.ListAppointments,
	changeStatusUC *ucAdmin.ChangeStatus,
) *AdminAppointmentsHandler {
	return &AdminAppointmentsHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		listUC:         listUC,
		changeStatusUC: changeStatusUC,
	}
}

// --------- Requests ---------

type AdminCreateAppointmentRequest struct {
	BarberID   string `json:"barber_id"`
	BarberName string `json:"barber_name"`

	ServiceID    string  `json:"service_id"`
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email"`

	Status string `json:"status"`
}

type AdminUpdateAppointmentRequest struct {
	BarberID   *string `json:"barber_id,omitempty"`
	BarberName *string `json:"barber_name,omitempty"`

	ServiceID    *string  `json:"service_id,omitempty"`
	ServiceName  *string  `json:"service_name,omitempty"`
	ServicePrice *float64 `json:"service_price,omitempty"`

	Date *string `json:"date,omitempty"`
	Time *string `json:"time,omitempty"`

	ClientName  *string `json:"client_name,omitempty"`
	ClientEmail *string `json:"client_email,omitempty"`

	Status *string `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *AdminAppointmentsHandler) List(c *gin.Context) {
	period := ucAdmin.Period(c.DefaultQuery("period", "day"))

	result, err := h.listUC.Execute(c.Request.Context(), ucAdmin.ListAppointmentsInput{
		Period: period,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, result)
}

func (h *AdminAppointmentsHandler) Create(c *gin.Context) {
	var req AdminCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		middleware.ActorEmail(c),
		ucAdmin.CreateAppointmentInput{
			BarberID:     req.BarberID,
			BarberName:   req.BarberName,
			ServiceID:    req.ServiceID,
			ServiceName:  req.ServiceName,
			ServicePrice: req.ServicePrice,
			Date:         req.Date,
			Time:         req.Time,
			ClientName:   req.ClientName,
			ClientEmail:  req.ClientEmail,
			Status:       req.Status,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AdminAppointmentsHandler) Update(c *gin.Context) {
	var req AdminUpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(
		c.Request.Context(),
		middleware.ActorEmail(c),
		c.Param("id"),
		ucAdmin.UpdateAppointmentInput{
			BarberID:     req.BarberID,
			BarberName:   req.BarberName,
			ServiceID:    req.ServiceID,
			ServiceName:  req.ServiceName,
			ServicePrice: req.ServicePrice,
			Date:         req.Date,
			Time:         req.Time,
			ClientName:   req.ClientName,
			ClientEmail:  req.ClientEmail,
			Status:       req.Status,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AdminAppointmentsHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), middleware.ActorEmail(c), c.Param("id")); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *AdminAppointmentsHandler) Confirm(c *gin.Context) {
	ap, err := h.changeStatusUC.Confirm(c.Request.Context(), middleware.ActorEmail(c), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AdminAppointmentsHandler) Cancel(c *gin.Context) {
	ap, err := h.changeStatusUC.Cancel(c.Request.Context(), middleware.ActorEmail(c), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AdminAppointmentsHandler) Complete(c *gin.Context) {
	ap, err := h.changeStatusUC.Complete(c.Request.Context(), middleware.ActorEmail(c), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, ap)
}
