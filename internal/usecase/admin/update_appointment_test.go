package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/models"
	"github.com/barberia-cr/barberia-api/internal/timezone"
)

func strPtr(s string) *string { return &s }

func repoWithAppointment() *stubRepo {
	repo := newStubRepo()
	repo.appointments = []models.Appointment{
		{
			ID:         "ap-1",
			Date:       "2025-06-11",
			Time:       "2:00 PM",
			ClientName: "José",
			Status:     "confirmed",
		},
	}
	return repo
}

func newUpdateAppointment(repo *stubRepo) *UpdateAppointment {
	return NewUpdateAppointment(repo, testDispatcher(), timezone.DefaultTimezone)
}

func TestUpdateAppointmentKeepsOwnSlot(t *testing.T) {
	repo := repoWithAppointment()
	uc := newUpdateAppointment(repo)

	// Muda só o nome do cliente, reenviando a mesma data/horário: o
	// próprio agendamento não pode bloquear o slot.
	ap, err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-1", UpdateAppointmentInput{
		ClientName: strPtr("José María"),
		Date:       strPtr("2025-06-11"),
		Time:       strPtr("2:00 PM"),
	})
	require.NoError(t, err)
	assert.Equal(t, "José María", ap.ClientName)
	assert.Equal(t, "2:00 PM", ap.Time)
}

func TestUpdateAppointmentMoveToTakenSlot(t *testing.T) {
	repo := repoWithAppointment()
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: "ap-2", Date: "2025-06-11", Time: "3:00 PM", Status: "pending",
	})
	uc := newUpdateAppointment(repo)

	_, err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-1", UpdateAppointmentInput{
		Time: strPtr("3:00 PM"),
	})
	assert.Equal(t, "slot_taken", httperr.BusinessCode(err))
}

func TestUpdateAppointmentMoveToFreeSlot(t *testing.T) {
	repo := repoWithAppointment()
	uc := newUpdateAppointment(repo)

	ap, err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-1", UpdateAppointmentInput{
		Time: strPtr("5:30 PM"),
	})
	require.NoError(t, err)
	assert.Equal(t, "5:30 PM", ap.Time)
}

func TestUpdateAppointmentMoveToSunday(t *testing.T) {
	uc := newUpdateAppointment(repoWithAppointment())

	_, err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-1", UpdateAppointmentInput{
		Date: strPtr("2025-06-08"),
	})
	assert.Equal(t, "closed_day", httperr.BusinessCode(err))
}

func TestUpdateAppointmentEmptyClientName(t *testing.T) {
	uc := newUpdateAppointment(repoWithAppointment())

	_, err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-1", UpdateAppointmentInput{
		ClientName: strPtr("   "),
	})
	assert.Equal(t, "missing_required_fields", httperr.BusinessCode(err))
}

func TestUpdateAppointmentInvalidStatus(t *testing.T) {
	uc := newUpdateAppointment(repoWithAppointment())

	_, err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-1", UpdateAppointmentInput{
		Status: strPtr("agendado"),
	})
	assert.Equal(t, "invalid_status", httperr.BusinessCode(err))
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	uc := newUpdateAppointment(newStubRepo())

	_, err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-999", UpdateAppointmentInput{})
	assert.Equal(t, "appointment_not_found", httperr.BusinessCode(err))
}

func TestUpdateAppointmentResolvesCatalogService(t *testing.T) {
	repo := repoWithAppointment()
	uc := newUpdateAppointment(repo)

	ap, err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-1", UpdateAppointmentInput{
		ServiceID: strPtr("s1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Corte clásico", ap.ServiceName)
	assert.Equal(t, float64(7000), ap.ServicePrice)
}
