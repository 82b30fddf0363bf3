package admin

import (
	"context"
	"strings"

	"github.com/barberia-cr/barberia-api/internal/audit"
	domain "github.com/barberia-cr/barberia-api/internal/domain/booking"
	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/models"
)

// Campos nil ficam como estão.
type UpdateAppointmentInput struct {
	BarberID   *string
	BarberName *string

	ServiceID    *string
	ServiceName  *string
	ServicePrice *float64

	Date *string
	Time *string

	ClientName  *string
	ClientEmail *string

	Status *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewUpdateAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	tz string,
) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, audit: auditDisp, tz: tz}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor string,
	id string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.BarberID != nil {
		barber, err := uc.repo.GetBarber(ctx, *in.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		ap.BarberID = barber.ID
		ap.BarberName = barber.Name
	}
	if in.BarberName != nil {
		ap.BarberName = *in.BarberName
	}

	if in.ServiceID != nil {
		service, err := uc.repo.GetService(ctx, *in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		ap.ServiceID = service.ID
		ap.ServiceName = service.Name
		ap.ServicePrice = service.Price
	}
	if in.ServiceName != nil {
		ap.ServiceName = *in.ServiceName
	}
	if in.ServicePrice != nil {
		ap.ServicePrice = *in.ServicePrice
	}

	if in.ClientName != nil {
		name := strings.TrimSpace(*in.ClientName)
		if name == "" {
			return nil, httperr.ErrBusiness("missing_required_fields")
		}
		ap.ClientName = name
	}
	if in.ClientEmail != nil {
		ap.ClientEmail = strings.TrimSpace(*in.ClientEmail)
	}

	if in.Status != nil {
		if !domain.IsValid(domain.Status(*in.Status)) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		ap.Status = *in.Status
	}

	// Data e horário são inputs independentes no admin; qualquer mudança
	// passa pelo motor de disponibilidade, excluindo o próprio ID para
	// que o agendamento possa manter o horário atual.
	if in.Date != nil || in.Time != nil {
		if in.Date != nil {
			ap.Date = *in.Date
		}
		if in.Time != nil {
			ap.Time = *in.Time
		}
		if err := checkSlot(ctx, uc.repo, uc.tz, ap.Date, ap.Time, ap.ID); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"date": ap.Date, "time": ap.Time},
	})

	return ap, nil
}
