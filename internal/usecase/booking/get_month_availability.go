package booking

import (
	"context"
	"time"

	domain "github.com/barberia-cr/barberia-api/internal/domain/booking"
	"github.com/barberia-cr/barberia-api/internal/domain/schedule"
	"github.com/barberia-cr/barberia-api/internal/dto"
	"github.com/barberia-cr/barberia-api/internal/timezone"
)

// GetMonthAvailability alimenta o calendário do wizard: devolve, para
// cada dia do mês, se a data pode ser selecionada (domingos e dias
// lotados ficam desabilitados).
type GetMonthAvailability struct {
	repo domain.Repository
	tz   string
}

func NewGetMonthAvailability(repo domain.Repository, tz string) *GetMonthAvailability {
	return &GetMonthAvailability{repo: repo, tz: tz}
}

func (uc *GetMonthAvailability) Execute(
	ctx context.Context,
	year int,
	month time.Month,
) ([]dto.MonthDay, error) {

	loc := timezone.Location(uc.tz)

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	appointments, err := uc.repo.ListAppointmentsBetween(
		ctx,
		schedule.DateKey(first),
		schedule.DateKey(last),
	)
	if err != nil {
		return nil, err
	}

	days := make([]dto.MonthDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, dto.MonthDay{
			Date:       schedule.DateKey(d),
			Selectable: schedule.CanSelectDate(d, appointments),
		})
	}

	return days, nil
}
