package booking

import "github.com/barberia-cr/barberia-api/internal/models"

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	return nil
}
