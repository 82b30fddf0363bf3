package timezone

import "time"

// A barbearia opera num único fuso; todas as datas do sistema são
// interpretadas nele.
const DefaultTimezone = "America/Costa_Rica"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate interpreta YYYY-MM-DD no fuso da barbearia.
func ParseDate(dateStr string, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location(tz))
}
