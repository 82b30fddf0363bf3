package booking

import (
	"context"

	"github.com/barberia-cr/barberia-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Appointment (availability) --------
	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsBetween(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)

	// -------- Appointment (CRUD) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)
}
