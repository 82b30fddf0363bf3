package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status IN ?", date, activeStatuses).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	// Datas no formato YYYY-MM-DD ordenam lexicograficamente.
	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ? AND status IN ?", from, to, activeStatuses).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

var activeStatuses = []string{"pending", "confirmed"}

// --------------------------------------------------
// Appointment CRUD
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return translateConstraintError(err)
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return translateConstraintError(err)
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{}).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// translateConstraintError mapeia a violação do índice único
// (barber_id, date, time) para o erro de negócio slot_taken. É essa
// violação, e não a checagem prévia de disponibilidade, que garante a
// ausência de double-booking sob concorrência.
func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}
