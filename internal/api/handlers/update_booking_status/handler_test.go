package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelQuoteService/internal/service/bookings"
	"github.com/m04kA/SMC-HotelQuoteService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func patch(svc BookingService, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id+"/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdateStatus", mock.Anything, int64(42), &models.UpdateStatusRequest{Status: "confirmed"}).
		Return(&models.BookingResponse{ID: 42, Status: "confirmed"}, nil)

	rec := patch(svc, "42", `{"status":"confirmed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
		err  error
		want int
	}{
		{"bad id", "abc", `{"status":"confirmed"}`, nil, http.StatusBadRequest},
		{"bad body", "42", `{`, nil, http.StatusBadRequest},
		{"invalid status", "42", `{"status":"lost"}`, bookings.ErrInvalidStatus, http.StatusBadRequest},
		{"not found", "42", `{"status":"cancelled"}`, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", "42", `{"status":"cancelled"}`, bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.want, patch(svc, tt.id, tt.body).Code)
		})
	}
}
