package admin

import (
	"context"
	"time"

	domain "github.com/barberia-cr/barberia-api/internal/domain/booking"
	"github.com/barberia-cr/barberia-api/internal/domain/schedule"
	"github.com/barberia-cr/barberia-api/internal/dto"
	"github.com/barberia-cr/barberia-api/internal/httperr"
	"github.com/barberia-cr/barberia-api/internal/models"
	"github.com/barberia-cr/barberia-api/internal/timezone"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

type ListAppointmentsInput struct {
	Period Period

	// Now permite fixar o relógio em testes; zero usa o horário atual
	// no fuso da barbearia.
	Now time.Time
}

type ListAppointments struct {
	repo domain.Repository
	tz   string
}

func NewListAppointments(repo domain.Repository, tz string) *ListAppointments {
	return &ListAppointments{repo: repo, tz: tz}
}

// Execute lista agendamentos do período e calcula as métricas do painel:
// total, receita somada e ticket médio.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) (*dto.AppointmentListResult, error) {

	now := in.Now
	if now.IsZero() {
		now = timezone.NowIn(uc.tz)
	}

	var (
		apps []models.Appointment
		err  error
	)

	if in.Period == PeriodAll || in.Period == "" {
		apps, err = uc.repo.ListAppointments(ctx)
	} else {
		var from, to string
		from, to, err = periodRange(in.Period, now)
		if err != nil {
			return nil, err
		}
		apps, err = uc.repo.ListAppointmentsBetween(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}

	metrics := dto.AppointmentMetrics{Total: len(apps)}
	for _, a := range apps {
		metrics.Income += a.ServicePrice
	}
	if metrics.Total > 0 {
		metrics.Average = metrics.Income / float64(metrics.Total)
	}

	return &dto.AppointmentListResult{
		Appointments: apps,
		Metrics:      metrics,
	}, nil
}

// periodRange devolve o intervalo [from, to] em YYYY-MM-DD. A semana
// começa no domingo, como o painel original filtrava.
func periodRange(p Period, now time.Time) (string, string, error) {
	switch p {
	case PeriodDay:
		d := schedule.DateKey(now)
		return d, d, nil

	case PeriodWeek:
		start := now.AddDate(0, 0, -int(now.Weekday()))
		end := start.AddDate(0, 0, 6)
		return schedule.DateKey(start), schedule.DateKey(end), nil

	case PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return schedule.DateKey(first), schedule.DateKey(last), nil

	case PeriodYear:
		first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		last := time.Date(now.Year(), 12, 31, 0, 0, 0, 0, now.Location())
		return schedule.DateKey(first), schedule.DateKey(last), nil
	}

	return "", "", httperr.ErrBusiness("invalid_period")
}
