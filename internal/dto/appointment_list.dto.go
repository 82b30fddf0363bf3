package dto

import "github.com/barberia-cr/barberia-api/internal/models"

// AppointmentMetrics são os totais do painel admin para o período filtrado.
type AppointmentMetrics struct {
	Total   int     `json:"total"`
	Income  float64 `json:"income"`
	Average float64 `json:"average"`
}

type AppointmentListResult struct {
	Appointments []models.Appointment `json:"appointments"`
	Metrics      AppointmentMetrics   `json:"metrics"`
}
