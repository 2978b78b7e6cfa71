package batchorders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/internal/flow"
	"github.com/GlebRadaev/coursemarket/internal/service/batchorderservice"
	"github.com/GlebRadaev/coursemarket/internal/service/signatureservice"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

func NewMock(t *testing.T) (*BatchOrderHandler, *MockService, *MockSignatureService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	signatures := NewMockSignatureService(ctrl)
	return New(service, signatures), service, signatures
}

func newRequest(method, body string, id string) *http.Request {
	r := httptest.NewRequest(method, "/api/v1/batch-orders", bytes.NewReader([]byte(body)))
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func newBatchOrder(state domain.BatchOrderState) *domain.BatchOrder {
	org := uuid.New()
	return &domain.BatchOrder{
		ID:             uuid.New(),
		OwnerID:        1,
		ProductID:      uuid.New(),
		CourseID:       uuid.New(),
		OrganizationID: &org,
		CompanyName:    "Acme",
		NbSeats:        10,
		Total:          decimal.NewFromInt(1000),
		State:          state,
		PaymentState:   schedule.StatePending,
	}
}

func TestCreateBatchOrder(t *testing.T) {
	handler, service, _ := NewMock(t)
	batch := newBatchOrder(domain.BatchOrderStatePending)
	valid := `{"product_id":"` + batch.ProductID.String() + `","course_id":"` + batch.CourseID.String() + `","company_name":" Acme ","nb_seats":10}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful creation",
			body: valid,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, batchorderservice.CreateInput{
					ProductID:   batch.ProductID,
					CourseID:    batch.CourseID,
					CompanyName: "Acme",
					NbSeats:     10,
				}).Return(batch, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "No seats",
			body:         `{"product_id":"` + batch.ProductID.String() + `","course_id":"` + batch.CourseID.String() + `","company_name":"Acme","nb_seats":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing company",
			body:         `{"product_id":"` + batch.ProductID.String() + `","course_id":"` + batch.CourseID.String() + `","nb_seats":3}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Certificate product",
			body: valid,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, batchorderservice.ErrInvalidBatchOrder)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Course not found",
			body: valid,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, batchorderservice.ErrCourseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Database failure",
			body: valid,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateBatchOrder(w, newRequest(http.MethodPost, tt.body, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.BatchOrderResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, batch.ID, resp.ID)
				assert.Equal(t, 10, resp.NbSeats)
			}
		})
	}
}

func TestGetBatchOrder(t *testing.T) {
	handler, service, _ := NewMock(t)
	batch := newBatchOrder(domain.BatchOrderStateCompleted)

	service.EXPECT().Get(gomock.Any(), 1, batch.ID).Return(batch, nil)
	w := httptest.NewRecorder()
	handler.GetBatchOrder(w, newRequest(http.MethodGet, "", batch.ID.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().Get(gomock.Any(), 1, batch.ID).Return(nil, batchorderservice.ErrForbidden)
	w = httptest.NewRecorder()
	handler.GetBatchOrder(w, newRequest(http.MethodGet, "", batch.ID.String()))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	handler.GetBatchOrder(w, newRequest(http.MethodGet, "", "not-a-uuid"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitForSignature(t *testing.T) {
	handler, _, signatures := NewMock(t)
	id := uuid.New()

	signatures.EXPECT().SubmitBatchOrder(gomock.Any(), 1, id).Return("https://dummysignaturebackend.fr/?requestToken=wfl", nil)
	w := httptest.NewRecorder()
	handler.SubmitForSignature(w, newRequest(http.MethodPost, "", id.String()))
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SubmitForSignatureResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "https://dummysignaturebackend.fr/?requestToken=wfl", resp.InvitationLink)

	signatures.EXPECT().SubmitBatchOrder(gomock.Any(), 1, id).Return("", signatureservice.ErrNoContract)
	w = httptest.NewRecorder()
	handler.SubmitForSignature(w, newRequest(http.MethodPost, "", id.String()))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCancelBatchOrder(t *testing.T) {
	handler, service, _ := NewMock(t)
	batch := newBatchOrder(domain.BatchOrderStateCanceled)

	service.EXPECT().Cancel(gomock.Any(), 1, batch.ID).Return(batch, nil)
	w := httptest.NewRecorder()
	handler.CancelBatchOrder(w, newRequest(http.MethodPost, "", batch.ID.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().Cancel(gomock.Any(), 1, batch.ID).Return(nil, flow.ErrTransitionNotAllowed)
	w = httptest.NewRecorder()
	handler.CancelBatchOrder(w, newRequest(http.MethodPost, "", batch.ID.String()))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
