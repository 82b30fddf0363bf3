package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// catalog é a lista ordenada de horários reserváveis, em passos de 30
// minutos, cobrindo a união de todos os expedientes da semana.
var catalog = []string{
	"9:00 AM", "9:30 AM",
	"10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM",
	"1:00 PM", "1:30 PM",
	"2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM",
	"5:00 PM", "5:30 PM",
	"6:00 PM", "6:30 PM",
	"7:00 PM", "7:30 PM",
	"8:00 PM",
}

// AllSlots devolve uma cópia do catálogo, em ordem cronológica.
func AllSlots() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// IsCatalogSlot informa se o rótulo pertence ao catálogo.
func IsCatalogSlot(label string) bool {
	for _, s := range catalog {
		if s == label {
			return true
		}
	}
	return false
}

// ToMinutes converte um rótulo de 12 horas ("2:30 PM") para minutos desde
// meia-noite. O catálogo é estático e produzido internamente, então um
// rótulo malformado é bug de programação, não erro de usuário.
func ToMinutes(label string) int {
	clock, period, ok := strings.Cut(label, " ")
	if !ok {
		panic(fmt.Sprintf("schedule: malformed slot label %q", label))
	}

	hs, ms, ok := strings.Cut(clock, ":")
	if !ok {
		panic(fmt.Sprintf("schedule: malformed slot label %q", label))
	}

	h, err := strconv.Atoi(hs)
	if err != nil {
		panic(fmt.Sprintf("schedule: malformed slot label %q", label))
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		panic(fmt.Sprintf("schedule: malformed slot label %q", label))
	}

	switch period {
	case "PM":
		if h != 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	default:
		panic(fmt.Sprintf("schedule: malformed slot label %q", label))
	}

	return h*60 + m
}
