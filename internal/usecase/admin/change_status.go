package admin

import (
	"context"

	"github.com/barberia-cr/barberia-api/internal/audit"
	domain "github.com/barberia-cr/barberia-api/internal/domain/booking"
	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/models"
)

// ChangeStatus cobre as ações de um clique do painel: confirmar,
// concluir e cancelar, com as transições validadas no domínio.
type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{repo: repo, audit: auditDisp}
}

func (uc *ChangeStatus) Confirm(ctx context.Context, actor, id string) (*models.Appointment, error) {
	return uc.apply(ctx, actor, id, "appointment_confirmed", domain.Confirm)
}

func (uc *ChangeStatus) Cancel(ctx context.Context, actor, id string) (*models.Appointment, error) {
	return uc.apply(ctx, actor, id, "appointment_canceled", domain.Cancel)
}

func (uc *ChangeStatus) Complete(ctx context.Context, actor, id string) (*models.Appointment, error) {
	return uc.apply(ctx, actor, id, "appointment_completed", domain.Complete)
}

func (uc *ChangeStatus) apply(
	ctx context.Context,
	actor string,
	id string,
	action string,
	transition func(*models.Appointment) error,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := transition(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   action,
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
