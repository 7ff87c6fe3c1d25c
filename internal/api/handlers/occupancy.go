package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/occupancy"
)

// OccupancyErrorResponse ответ гостю при нарушении правил размещения.
// Code совпадает с видом нарушения и позволяет форме показать свой текст.
type OccupancyErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	RoomType string `json:"roomType,omitempty"`
}

// OccupancyError формирует ответ по ошибке размещения. ok=false, если err другой природы.
func OccupancyError(err error) (*OccupancyErrorResponse, bool) {
	var validationErr *occupancy.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, false
	}

	resp := &OccupancyErrorResponse{
		Error: OccupancyMessage(validationErr.Kind, validationErr.RoomType),
		Code:  string(validationErr.Kind),
	}
	if validationErr.RoomType != nil {
		resp.RoomType = validationErr.RoomType.Slug
	}
	return resp, true
}

// OccupancyMessage текст нарушения для гостя на языке сайта отеля (испанский)
func OccupancyMessage(kind occupancy.ErrorKind, rt *domain.RoomType) string {
	if rt == nil && kind != occupancy.KindNoAdult && kind != occupancy.KindNoGuests {
		return "Tipo de habitación no válido."
	}

	switch kind {
	case occupancy.KindInvalidRoomType:
		return "Tipo de habitación no válido."
	case occupancy.KindNoAdult:
		return "Se requiere al menos 1 adulto por reserva."
	case occupancy.KindNoGuests:
		return "Debe haber al menos 1 huésped."
	case occupancy.KindTooManyAdults:
		return fmt.Sprintf("Máximo %d adultos permitidos para esta habitación.", rt.MaxAdults)
	case occupancy.KindTooManyKids:
		return fmt.Sprintf("Máximo %d niños permitidos para esta habitación.", rt.MaxKids)
	case occupancy.KindCapacityExceeded:
		return fmt.Sprintf("Capacidad máxima de %d personas excedida.", rt.MaxTotal)
	case occupancy.KindAdultOverflowNotAllowed:
		return fmt.Sprintf("Solo se permiten hasta %d adultos. Los huéspedes adicionales deben ser niños.", rt.BaseOccupancy)
	default:
		return "La ocupación seleccionada no es válida."
	}
}

// RespondOccupancyError отправляет 422 с описанием нарушения
func RespondOccupancyError(w http.ResponseWriter, resp *OccupancyErrorResponse) {
	RespondJSON(w, http.StatusUnprocessableEntity, resp)
}
