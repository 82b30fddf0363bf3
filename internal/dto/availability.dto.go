package dto

import "github.com/barberia-cr/barberia-api/internal/domain/schedule"

// DayAvailability é a resposta da disponibilidade de uma data.
// Closed e FullyBooked nunca são verdadeiros ao mesmo tempo: dia fechado
// não tem slots para lotar.
type DayAvailability struct {
	Date        string                `json:"date"`
	Closed      bool                  `json:"closed"`
	FullyBooked bool                  `json:"fully_booked"`
	Slots       []schedule.SlotStatus `json:"slots"`
}

// MonthDay marca se uma data do mês pode ser escolhida no calendário.
type MonthDay struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}
