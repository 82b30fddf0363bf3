package booking

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/barberia-cr/barberia-api/internal/audit"
	domain "github.com/barberia-cr/barberia-api/internal/domain/booking"
	"github.com/barberia-cr/barberia-api/internal/domain/schedule"
	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/models"
	"github.com/barberia-cr/barberia-api/internal/timezone"
	"github.com/barberia-cr/barberia-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarberID  string `validate:"required"`
	ServiceID string `validate:"required"`

	Date string `validate:"required"` // YYYY-MM-DD
	Time string `validate:"required"` // rótulo do catálogo

	ClientName  string `validate:"required"`
	ClientEmail string `validate:"required,email"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	validate *validator.Validate

	tz      string
	mxCheck bool
}

func NewCreateBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	tz string,
	mxCheck bool,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    auditDisp,
		validate: validator.New(),
		tz:       tz,
		mxCheck:  mxCheck,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida a submissão do wizard e cria o agendamento com status
// pending. Toda validação acontece antes de qualquer escrita; uma falha
// aqui nunca deixa escrita parcial para trás.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)

	if err := uc.validate.Struct(in); err != nil {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	if uc.mxCheck && !validators.IsEmailDomainValid(in.ClientEmail) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Visible {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	date, err := timezone.ParseDate(in.Date, uc.tz)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	slots := schedule.SlotsForDate(date, appointments, "")
	if len(slots) == 0 {
		return nil, httperr.ErrBusiness("closed_day")
	}
	if schedule.IsDayFullyBooked(date, appointments) {
		return nil, httperr.ErrBusiness("day_fully_booked")
	}

	slot, ok := findSlot(slots, in.Time)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if slot.Taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		BarberID:     barber.ID,
		BarberName:   barber.Name,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		Date:         in.Date,
		Time:         in.Time,
		ClientName:   in.ClientName,
		ClientEmail:  in.ClientEmail,
		Status:       string(domain.InitialStatus()),
	}

	// A checagem acima é cortesia para mensagens amigáveis; quem fecha a
	// corrida entre dois clientes é o índice único no banco, que o
	// repositório traduz para slot_taken.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "public",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"date": ap.Date, "time": ap.Time},
	})

	return ap, nil
}

func findSlot(slots []schedule.SlotStatus, label string) (schedule.SlotStatus, bool) {
	for _, s := range slots {
		if s.Time == label {
			return s, true
		}
	}
	return schedule.SlotStatus{}, false
}
