package certificates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
)

func TestGetCertificates(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	issued := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	certificate := domain.Certificate{ID: uuid.New(), OrderID: uuid.New(), IssuedAt: issued}

	tests := []struct {
		name         string
		userID       int
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Certificates found",
			userID: 1,
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return([]domain.Certificate{certificate}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "No certificates",
			userID: 1,
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Database failure",
			userID: 1,
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Unauthorized",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/certificates", nil)
			if tt.userID != 0 {
				r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, tt.userID))
			}
			w := httptest.NewRecorder()
			handler.GetCertificates(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.CertificateResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				require.Len(t, resp, 1)
				assert.Equal(t, certificate.OrderID, resp[0].OrderID)
				assert.True(t, issued.Equal(resp[0].IssuedOn))
			}
		})
	}
}
