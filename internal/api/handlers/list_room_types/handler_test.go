package list_room_types

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
)

type fakeService struct {
	roomTypes domain.RoomTypes
	err       error
}

func (f *fakeService) GetAll(context.Context) (domain.RoomTypes, error) {
	return f.roomTypes, f.err
}

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(&fakeService{roomTypes: domain.DefaultRoomTypes()[:1]}, logger.Discard())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/room-types", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"roomTypes":[{
		"slug":"double","name":"Doble","basePrice":"2100.00","beds":2,"baseOccupancy":2,
		"maxTotal":4,"maxAdults":4,"maxKids":3,"overflowRule":"any"
	}]}`, rec.Body.String())
}

func TestHandler_Handle_Error(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("db down")}, logger.Discard())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/room-types", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
