package admin

import (
	"context"
	"strings"

	"github.com/barberia-cr/barberia-api/internal/audit"
	domain "github.com/barberia-cr/barberia-api/internal/domain/booking"
	"github.com/barberia-cr/barberia-api/internal/domain/schedule"
	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/models"
	"github.com/barberia-cr/barberia-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// O admin pode referenciar barbeiro/serviço do catálogo ou digitar nomes
// livres (agendamentos por telefone de clientes antigos).
type CreateAppointmentInput struct {
	BarberID   string
	BarberName string

	ServiceID    string
	ServiceName  string
	ServicePrice float64

	Date string
	Time string

	ClientName  string
	ClientEmail string

	Status string // vazio vira confirmed
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{repo: repo, audit: auditDisp, tz: tz}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor string,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	in.ClientName = strings.TrimSpace(in.ClientName)
	if in.ClientName == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	status := domain.Status(in.Status)
	if in.Status == "" {
		status = domain.StatusConfirmed
	}
	if !domain.IsValid(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// Barbeiro/serviço do catálogo têm os nomes desnormalizados aqui;
	// visibilidade não importa no fluxo admin.
	if in.BarberID != "" {
		barber, err := uc.repo.GetBarber(ctx, in.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		in.BarberName = barber.Name
	}
	if in.ServiceID != "" {
		service, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		in.ServiceName = service.Name
		in.ServicePrice = service.Price
	}

	if err := uc.checkSlot(ctx, in.Date, in.Time, ""); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarberID:     in.BarberID,
		BarberName:   in.BarberName,
		ServiceID:    in.ServiceID,
		ServiceName:  in.ServiceName,
		ServicePrice: in.ServicePrice,
		Date:         in.Date,
		Time:         in.Time,
		ClientName:   in.ClientName,
		ClientEmail:  strings.TrimSpace(in.ClientEmail),
		Status:       string(status),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"date": ap.Date, "time": ap.Time},
	})

	return ap, nil
}

// checkSlot valida data e horário com o mesmo motor do fluxo público:
// domingo é rejeitado (e não aceito em silêncio), o horário tem que
// pertencer à janela do dia e estar livre. excludeID deixa uma edição
// manter o próprio horário.
func (uc *CreateAppointment) checkSlot(
	ctx context.Context,
	dateStr string,
	timeLabel string,
	excludeID string,
) error {
	return checkSlot(ctx, uc.repo, uc.tz, dateStr, timeLabel, excludeID)
}

func checkSlot(
	ctx context.Context,
	repo domain.Repository,
	tz string,
	dateStr string,
	timeLabel string,
	excludeID string,
) error {

	date, err := timezone.ParseDate(dateStr, tz)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	appointments, err := repo.ListAppointmentsByDate(ctx, dateStr)
	if err != nil {
		return err
	}

	slots := schedule.SlotsForDate(date, appointments, excludeID)
	if len(slots) == 0 {
		return httperr.ErrBusiness("closed_day")
	}

	for _, s := range slots {
		if s.Time != timeLabel {
			continue
		}
		if s.Taken {
			return httperr.ErrBusiness("slot_taken")
		}
		return nil
	}

	return httperr.ErrBusiness("invalid_time")
}
