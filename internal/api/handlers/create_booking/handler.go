package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/create_booking"
)

const (
	msgBookingCreated     = "Solicitud enviada correctamente."
	msgInvalidRequestBody = "Solicitud no válida."
	msgSpamDetected       = "Spam detectado."
	msgIncompleteData     = "Datos incompletos."
	msgInvalidDate        = "La fecha de llegada no es válida."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if occupancyErr, ok := handlers.OccupancyError(err); ok {
			h.logger.Warn("POST /bookings - Occupancy rejected: code=%s, room_type=%s",
				occupancyErr.Code, req.RoomType)
			handlers.RespondOccupancyError(w, occupancyErr)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrSpamDetected):
			h.logger.Warn("POST /bookings - Spam detected: remote=%s", r.RemoteAddr)
			handlers.RespondBadRequest(w, msgSpamDetected)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgIncompleteData)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid check-in date: check_in=%q", req.CheckIn)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_type=%s, error=%v", req.RoomType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, code=%s",
		result.ID, result.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
