package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberia-cr/barberia-api/internal/models"
)

// 2025-06-08 foi um domingo; a semana seguinte cobre todos os dias.
var (
	sunday    = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	monday    = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
)

func appointmentAt(date time.Time, label string) models.Appointment {
	return models.Appointment{
		ID:   "ap-" + label,
		Date: DateKey(date),
		Time: label,
	}
}

func TestSlotsForDateWeekdayNoAppointments(t *testing.T) {
	slots := SlotsForDate(monday, nil, "")

	require.Len(t, slots, 23) // 9:00 AM a 8:00 PM em passos de 30 min

	assert.Equal(t, "9:00 AM", slots[0].Time)
	assert.Equal(t, "8:00 PM", slots[len(slots)-1].Time)

	prev := -1
	for _, s := range slots {
		assert.False(t, s.Taken)
		m := ToMinutes(s.Time)
		assert.Greater(t, m, prev, "slots devem vir em ordem cronológica")
		prev = m
	}
}

func TestSlotsForDateSaturdayWindow(t *testing.T) {
	slots := SlotsForDate(saturday, nil, "")

	require.Len(t, slots, 19) // 9:00 AM a 6:00 PM
	assert.Equal(t, "9:00 AM", slots[0].Time)
	assert.Equal(t, "6:00 PM", slots[len(slots)-1].Time)
}

func TestSlotsForDateSundayEmpty(t *testing.T) {
	appointments := []models.Appointment{appointmentAt(sunday, "10:00 AM")}

	assert.Empty(t, SlotsForDate(sunday, nil, ""))
	assert.Empty(t, SlotsForDate(sunday, appointments, ""))
}

func TestSlotsForDateTakenExactness(t *testing.T) {
	appointments := []models.Appointment{
		appointmentAt(wednesday, "2:00 PM"),
		appointmentAt(wednesday, "9:30 AM"),
		appointmentAt(monday, "2:00 PM"), // outra data, não conta
	}

	slots := SlotsForDate(wednesday, appointments, "")
	require.Len(t, slots, 23)

	for _, s := range slots {
		if s.Time == "2:00 PM" || s.Time == "9:30 AM" {
			assert.True(t, s.Taken, s.Time)
		} else {
			assert.False(t, s.Taken, s.Time)
		}
	}
}

func TestSlotsForDateExcludeIDKeepsOwnSlot(t *testing.T) {
	appointments := []models.Appointment{appointmentAt(wednesday, "2:00 PM")}

	slots := SlotsForDate(wednesday, appointments, "ap-2:00 PM")
	for _, s := range slots {
		assert.False(t, s.Taken, s.Time)
	}
}

func TestSlotsForDateIgnoresOutOfWindowAppointment(t *testing.T) {
	// Sábado fecha às 6:00 PM; um agendamento às 7:00 PM não casa com
	// nenhum slot retido.
	appointments := []models.Appointment{appointmentAt(saturday, "7:00 PM")}

	slots := SlotsForDate(saturday, appointments, "")
	require.Len(t, slots, 19)
	for _, s := range slots {
		assert.False(t, s.Taken, s.Time)
	}
}

func TestIsDayFullyBooked(t *testing.T) {
	var appointments []models.Appointment
	for _, s := range SlotsForDate(saturday, nil, "") {
		appointments = append(appointments, appointmentAt(saturday, s.Time))
	}

	assert.True(t, IsDayFullyBooked(saturday, appointments))
	assert.False(t, CanSelectDate(saturday, appointments))

	// Liberar um único horário desfaz o lotado.
	assert.False(t, IsDayFullyBooked(saturday, appointments[1:]))
	assert.True(t, CanSelectDate(saturday, appointments[1:]))
}

func TestIsDayFullyBookedClosedDayIsNotFull(t *testing.T) {
	assert.False(t, IsDayFullyBooked(sunday, nil))
	// fechado ainda assim não é selecionável
	assert.False(t, CanSelectDate(sunday, nil))
}

func TestWednesdayScenario(t *testing.T) {
	appointments := []models.Appointment{appointmentAt(wednesday, "2:00 PM")}

	slots := SlotsForDate(wednesday, appointments, "")
	require.Len(t, slots, 23)

	taken := 0
	for _, s := range slots {
		if s.Taken {
			taken++
			assert.Equal(t, "2:00 PM", s.Time)
		}
	}
	assert.Equal(t, 1, taken)
	assert.False(t, IsDayFullyBooked(wednesday, appointments))
}
