package booking

import "github.com/barberia-cr/barberia-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// InitialStatus é o status de um agendamento criado pelo fluxo público.
func InitialStatus() Status {
	return StatusPending
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
