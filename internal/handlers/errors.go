package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberia-cr/barberia-api/internal/httperr"
)

// writeBusinessError traduz códigos de negócio para status HTTP e
// mensagem ao usuário. Erros que não são de negócio viram 500 genérico:
// o detalhe fica no log, nunca na resposta.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case "missing_required_fields":
		httperr.BadRequest(c, code, "Faltan campos obligatorios.")
	case "invalid_email_domain":
		httperr.BadRequest(c, code, "El correo electrónico no parece válido.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Fecha inválida.")
	case "invalid_time":
		httperr.BadRequest(c, code, "Horario inválido.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Estado inválido.")
	case "invalid_period":
		httperr.BadRequest(c, code, "Período inválido.")
	case "closed_day":
		httperr.BadRequest(c, code, "La barbería está cerrada ese día.")
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbero no encontrado.")
	case "service_not_found":
		httperr.NotFound(c, code, "Servicio no encontrado.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Cita no encontrada.")
	case "day_fully_booked":
		httperr.Conflict(c, code, "No quedan horarios disponibles ese día.")
	case "slot_taken":
		httperr.Conflict(c, code, "Ese horario ya está reservado.")
	case "invalid_state":
		httperr.Conflict(c, code, "La cita no permite esa transición.")
	default:
		httperr.Internal(c, "internal_error", "Algo salió mal. Intenta de nuevo.")
	}
}
