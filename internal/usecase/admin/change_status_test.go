package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/models"
)

func newChangeStatus(repo *stubRepo) *ChangeStatus {
	return NewChangeStatus(repo, testDispatcher())
}

func pendingAppointment() models.Appointment {
	return models.Appointment{
		ID: "ap-1", Date: "2025-06-11", Time: "2:00 PM", Status: "pending",
	}
}

func TestChangeStatusConfirm(t *testing.T) {
	repo := newStubRepo()
	repo.appointments = []models.Appointment{pendingAppointment()}
	uc := newChangeStatus(repo)

	ap, err := uc.Confirm(context.Background(), "admin@barberia.cr", "ap-1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	stored, err := repo.GetAppointment(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)
}

func TestChangeStatusConfirmTwice(t *testing.T) {
	repo := newStubRepo()
	repo.appointments = []models.Appointment{pendingAppointment()}
	uc := newChangeStatus(repo)

	_, err := uc.Confirm(context.Background(), "admin@barberia.cr", "ap-1")
	require.NoError(t, err)

	_, err = uc.Confirm(context.Background(), "admin@barberia.cr", "ap-1")
	assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
}

func TestChangeStatusCancelAndComplete(t *testing.T) {
	repo := newStubRepo()
	repo.appointments = []models.Appointment{
		pendingAppointment(),
		{ID: "ap-2", Date: "2025-06-11", Time: "3:00 PM", Status: "confirmed"},
	}
	uc := newChangeStatus(repo)

	ap, err := uc.Cancel(context.Background(), "admin@barberia.cr", "ap-1")
	require.NoError(t, err)
	assert.Equal(t, "canceled", ap.Status)

	ap, err = uc.Complete(context.Background(), "admin@barberia.cr", "ap-2")
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)

	// Cancelado e concluído são estados terminais.
	_, err = uc.Cancel(context.Background(), "admin@barberia.cr", "ap-1")
	assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
	_, err = uc.Complete(context.Background(), "admin@barberia.cr", "ap-2")
	assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
}

func TestChangeStatusNotFound(t *testing.T) {
	uc := newChangeStatus(newStubRepo())

	_, err := uc.Confirm(context.Background(), "admin@barberia.cr", "ap-999")
	assert.Equal(t, "appointment_not_found", httperr.BusinessCode(err))
}

func TestDeleteAppointment(t *testing.T) {
	repo := newStubRepo()
	repo.appointments = []models.Appointment{pendingAppointment()}
	uc := NewDeleteAppointment(repo, testDispatcher())

	require.NoError(t, uc.Execute(context.Background(), "admin@barberia.cr", "ap-1"))
	assert.Equal(t, []string{"ap-1"}, repo.deleted)

	err := uc.Execute(context.Background(), "admin@barberia.cr", "ap-1")
	assert.Equal(t, "appointment_not_found", httperr.BusinessCode(err))
}
