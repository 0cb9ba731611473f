package adaptor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"missing resource", errors.New("booking not found"), http.StatusNotFound},
		{"validation", errors.New("validation failed: room_count must be at most 10"), http.StatusBadRequest},
		{"bad input", errors.New("invalid date range: select a valid check-in/check-out range"), http.StatusBadRequest},
		{"illegal transition", errors.New("booking is rejected, cannot move to approved"), http.StatusBadRequest},
		{"sold out room", errors.New("room Superior is not available"), http.StatusBadRequest},
		{"duplicate account", errors.New("email already registered"), http.StatusBadRequest},
		{"bad credentials", errors.New("invalid credentials"), http.StatusUnauthorized},
		{"unknown failure", errors.New("failed to create booking"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
