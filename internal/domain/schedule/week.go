package schedule

import "time"

// Window é o expediente de um dia da semana, em minutos desde meia-noite.
type Window struct {
	Opens  int
	Closes int
}

// Expediente fixo da barbearia: seg–sex 09:00–20:00, sáb 09:00–18:00,
// domingo fechado.
var week = [7]*Window{
	time.Sunday:    nil,
	time.Monday:    {Opens: 9 * 60, Closes: 20 * 60},
	time.Tuesday:   {Opens: 9 * 60, Closes: 20 * 60},
	time.Wednesday: {Opens: 9 * 60, Closes: 20 * 60},
	time.Thursday:  {Opens: 9 * 60, Closes: 20 * 60},
	time.Friday:    {Opens: 9 * 60, Closes: 20 * 60},
	time.Saturday:  {Opens: 9 * 60, Closes: 18 * 60},
}

// WindowFor devolve o expediente do dia. ok == false significa fechado.
func WindowFor(weekday time.Weekday) (Window, bool) {
	w := week[weekday]
	if w == nil {
		return Window{}, false
	}
	return *w, true
}
