package admin

import (
	"context"

	"github.com/barberia-cr/barberia-api/internal/audit"
	domain "github.com/barberia-cr/barberia-api/internal/domain/booking"
	"github.com/barberia-cr/barberia-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: auditDisp}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor string,
	id string,
) error {

	if _, err := uc.repo.GetAppointment(ctx, id); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	return nil
}
