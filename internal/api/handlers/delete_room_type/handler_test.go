package delete_room_type

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelQuoteService/internal/service/roomtypes"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/logger"
)

type fakeService struct {
	deleted string
	err     error
}

func (f *fakeService) Delete(_ context.Context, slug string) error {
	f.deleted = slug
	return f.err
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", roomtypes.ErrRoomTypeNotFound, http.StatusNotFound},
		{"last type", roomtypes.ErrCannotDeleteLast, http.StatusConflict},
		{"internal", roomtypes.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/room-types/single", nil)
			req = mux.SetURLVars(req, map[string]string{"slug": "single"})
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.Discard()).Handle(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "single", svc.deleted)
		})
	}
}
