package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/idempotency"
	"github.com/GlebRadaev/coursemarket/internal/service/paymentservice"
	"github.com/GlebRadaev/coursemarket/internal/service/signatureservice"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
	"github.com/GlebRadaev/coursemarket/pkg/signature"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

const (
	paymentSecret   = "payment-secret"
	signatureSecret = "signature-secret"
)

type mocks struct {
	payments   *MockPaymentService
	signatures *MockSignatureService
	deduper    *idempotency.MockDeduper
}

func NewMock(t *testing.T) (*WebhookHandler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		payments:   NewMockPaymentService(ctrl),
		signatures: NewMockSignatureService(ctrl),
		deduper:    idempotency.NewMockDeduper(ctrl),
	}
	handler := New(
		m.payments,
		m.signatures,
		signature.NewVerifier([]string{"old-secret", paymentSecret}),
		signature.NewVerifier([]string{signatureSecret}),
		m.deduper,
	)
	return handler, m
}

func signedRequest(path, secret, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	if secret != "" {
		r.Header.Set(signature.Header, signature.Sign(secret, []byte(body)))
	}
	return r
}

func TestPaymentNotification(t *testing.T) {
	handler, m := NewMock(t)
	orderID := uuid.New()
	installmentID := uuid.New()
	n := paymentservice.Notification{
		PaymentID:     "pay_1",
		Type:          paymentservice.TypePayment,
		State:         paymentservice.StateSuccess,
		OrderID:       &orderID,
		InstallmentID: &installmentID,
	}
	raw, err := json.Marshal(n)
	require.NoError(t, err)
	body := string(raw)
	key := "payment:pay_1:payment:success:order:" + orderID.String() + ":" + installmentID.String()

	tests := []struct {
		name            string
		secret          string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "Payment applied",
			secret: paymentSecret,
			body:   body,
			prepareMock: func() {
				m.deduper.EXPECT().First(gomock.Any(), key).Return(true, nil)
				m.payments.EXPECT().HandleNotification(gomock.Any(), n).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "OK",
		},
		{
			name:   "Duplicate delivery",
			secret: paymentSecret,
			body:   body,
			prepareMock: func() {
				m.deduper.EXPECT().First(gomock.Any(), key).Return(false, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Already processed",
		},
		{
			name:   "Deduplication store down",
			secret: paymentSecret,
			body:   body,
			prepareMock: func() {
				m.deduper.EXPECT().First(gomock.Any(), key).Return(false, errors.New("redis down"))
				m.payments.EXPECT().HandleNotification(gomock.Any(), n).Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "OK",
		},
		{
			name:   "Unknown installment releases the key",
			secret: paymentSecret,
			body:   body,
			prepareMock: func() {
				m.deduper.EXPECT().First(gomock.Any(), key).Return(true, nil)
				m.payments.EXPECT().HandleNotification(gomock.Any(), n).Return(schedule.ErrInstallmentNotFound)
				m.deduper.EXPECT().Release(gomock.Any(), key).Return(nil)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: schedule.ErrInstallmentNotFound.Error(),
		},
		{
			name:            "Missing signature",
			body:            body,
			prepareMock:     func() {},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: signature.ErrMissingSignature.Error(),
		},
		{
			name:            "Signed with another secret",
			secret:          signatureSecret,
			body:            body,
			prepareMock:     func() {},
			expectedCode:    http.StatusForbidden,
			expectedMessage: signature.ErrInvalidSignature.Error(),
		},
		{
			name:         "Malformed body",
			secret:       paymentSecret,
			body:         `{"payment_id":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing payment id",
			secret:       paymentSecret,
			body:         `{"type":"payment","state":"success","order_id":"` + orderID.String() + `","installment_id":"` + installmentID.String() + `"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unknown type",
			secret:       paymentSecret,
			body:         `{"payment_id":"pay_1","type":"chargeback","state":"success"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.PaymentNotification(w, signedRequest("/api/v1/payments/notifications", tt.secret, tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMessage != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

type memoryDeduper struct {
	seen map[string]bool
}

func (d *memoryDeduper) First(_ context.Context, key string) (bool, error) {
	if d.seen[key] {
		return false, nil
	}
	d.seen[key] = true
	return true, nil
}

func (d *memoryDeduper) Release(_ context.Context, key string) error {
	delete(d.seen, key)
	return nil
}

func TestPaymentNotification_DistinctInstallmentsAreBothApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	payments := NewMockPaymentService(ctrl)
	handler := New(payments, NewMockSignatureService(ctrl),
		signature.NewVerifier([]string{paymentSecret}), signature.NewVerifier([]string{signatureSecret}),
		&memoryDeduper{seen: map[string]bool{}})

	orderID := uuid.New()
	payments.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		installmentID := uuid.New()
		raw, err := json.Marshal(paymentservice.Notification{
			PaymentID:     "pay_" + installmentID.String(),
			Type:          paymentservice.TypePayment,
			State:         paymentservice.StateSuccess,
			OrderID:       &orderID,
			InstallmentID: &installmentID,
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		handler.PaymentNotification(w, signedRequest("/api/v1/payments/notifications", paymentSecret, string(raw)))

		var resp utils.Response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", resp.Message)
	}
}

func TestSignatureNotification(t *testing.T) {
	handler, m := NewMock(t)
	body := `{"event_type":"signed","reference":"wfl_fake_dummy_1"}`
	n := signatureservice.Notification{EventType: signatureservice.EventSigned, Reference: "wfl_fake_dummy_1"}
	key := "signature:wfl_fake_dummy_1:signed"

	tests := []struct {
		name         string
		secret       string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Signed",
			secret: signatureSecret,
			body:   body,
			prepareMock: func() {
				m.deduper.EXPECT().First(gomock.Any(), key).Return(true, nil)
				m.signatures.EXPECT().HandleNotification(gomock.Any(), n).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown event",
			secret: signatureSecret,
			body:   body,
			prepareMock: func() {
				m.deduper.EXPECT().First(gomock.Any(), key).Return(true, nil)
				m.signatures.EXPECT().HandleNotification(gomock.Any(), n).Return(signatureservice.ErrUnknownEvent)
				m.deduper.EXPECT().Release(gomock.Any(), key).Return(nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Contract not found",
			secret: signatureSecret,
			body:   body,
			prepareMock: func() {
				m.deduper.EXPECT().First(gomock.Any(), key).Return(true, nil)
				m.signatures.EXPECT().HandleNotification(gomock.Any(), n).Return(signatureservice.ErrContractNotFound)
				m.deduper.EXPECT().Release(gomock.Any(), key).Return(errors.New("redis down"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Missing reference",
			secret:       signatureSecret,
			body:         `{"event_type":"signed"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Payment secret is not accepted",
			secret:       paymentSecret,
			body:         body,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.SignatureNotification(w, signedRequest("/api/v1/signature/notifications", tt.secret, tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestNoSecretsConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := New(
		NewMockPaymentService(ctrl),
		NewMockSignatureService(ctrl),
		signature.NewVerifier(nil),
		signature.NewVerifier(nil),
		idempotency.NopDeduper{},
	)
	body := `{"event_type":"signed","reference":"wfl"}`

	w := httptest.NewRecorder()
	handler.SignatureNotification(w, signedRequest("/api/v1/signature/notifications", "anything", body))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
