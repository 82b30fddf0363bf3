package booking

import (
	"context"
	"errors"
	"strconv"

	"github.com/barberia-cr/barberia-api/internal/models"
)

var errNotFound = errors.New("registro não encontrado")

// stubRepo implementa booking.Repository em memória para os testes de
// use case.
type stubRepo struct {
	barbers  map[string]*models.Barber
	services map[string]*models.Service

	appointments []models.Appointment

	created []*models.Appointment
	listErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		barbers: map[string]*models.Barber{
			"b1": {ID: "b1", Name: "Carlos", Visible: true},
			"b2": {ID: "b2", Name: "Oculto", Visible: false},
		},
		services: map[string]*models.Service{
			"s1": {ID: "s1", Name: "Corte clásico", Price: 7000},
		},
	}
}

func (r *stubRepo) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, errNotFound
	}
	return b, nil
}

func (r *stubRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubRepo) ListAppointmentsByDate(_ context.Context, date string) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubRepo) ListAppointmentsBetween(_ context.Context, from, to string) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.Date >= from && a.Date <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = "ap-" + strconv.Itoa(len(r.created)+1)
	}
	r.created = append(r.created, ap)
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *stubRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (r *stubRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (r *stubRepo) DeleteAppointment(_ context.Context, id string) error {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (r *stubRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.appointments, nil
}
