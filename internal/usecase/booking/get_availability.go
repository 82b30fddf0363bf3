package booking

import (
	"context"
	"time"

	domain "github.com/barberia-cr/barberia-api/internal/domain/booking"
	"github.com/barberia-cr/barberia-api/internal/domain/schedule"
	"github.com/barberia-cr/barberia-api/internal/dto"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute calcula os horários de uma data. excludeID é usado pelo fluxo
// de edição do admin para que o agendamento mantenha o próprio horário.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	excludeID string,
) (*dto.DayAvailability, error) {

	dateStr := schedule.DateKey(date)

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	slots := schedule.SlotsForDate(date, appointments, excludeID)

	out := &dto.DayAvailability{
		Date:  dateStr,
		Slots: slots,
	}

	if len(slots) == 0 {
		out.Closed = true
		return out, nil
	}

	out.FullyBooked = schedule.IsDayFullyBooked(date, appointments)
	return out, nil
}
