package schedule

import (
	"time"

	"github.com/barberia-cr/barberia-api/internal/models"
)

// SlotStatus é um horário do catálogo com a marcação de ocupado.
type SlotStatus struct {
	Time  string `json:"time"`
	Taken bool   `json:"taken"`
}

// DateKey devolve a forma canônica YYYY-MM-DD de uma data.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SlotsForDate calcula os horários reserváveis de uma data: filtra o
// catálogo pelo expediente do dia (o horário de fechamento também é um
// início reservável) e marca como ocupados os horários que já têm
// agendamento na mesma data. excludeID permite que um agendamento em
// edição mantenha o próprio horário.
//
// Dia fechado devolve slice vazio. Agendamentos com horário fora do
// expediente do dia simplesmente não casam com nenhum slot retido.
func SlotsForDate(date time.Time, appointments []models.Appointment, excludeID string) []SlotStatus {
	window, open := WindowFor(date.Weekday())
	if !open {
		return nil
	}

	dateStr := DateKey(date)

	taken := make(map[string]bool)
	for _, a := range appointments {
		if a.Date != dateStr {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		taken[a.Time] = true
	}

	var slots []SlotStatus
	for _, label := range catalog {
		m := ToMinutes(label)
		if m < window.Opens || m > window.Closes {
			continue
		}
		slots = append(slots, SlotStatus{Time: label, Taken: taken[label]})
	}

	return slots
}

// IsDayFullyBooked é verdadeiro quando o dia tem slots e todos estão
// ocupados. Dia fechado NÃO é "lotado": os chamadores distinguem os dois
// casos na mensagem ao usuário.
func IsDayFullyBooked(date time.Time, appointments []models.Appointment) bool {
	slots := SlotsForDate(date, appointments, "")
	if len(slots) == 0 {
		return false
	}
	for _, s := range slots {
		if !s.Taken {
			return false
		}
	}
	return true
}

// CanSelectDate diz se uma data pode ser escolhida no calendário:
// falso para domingo ou dia lotado.
func CanSelectDate(date time.Time, appointments []models.Appointment) bool {
	if date.Weekday() == time.Sunday {
		return false
	}
	return !IsDayFullyBooked(date, appointments)
}
