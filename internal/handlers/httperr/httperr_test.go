package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/coursemarket/internal/flow"
	"github.com/GlebRadaev/coursemarket/internal/service/authservice"
	"github.com/GlebRadaev/coursemarket/internal/service/creditcardservice"
	"github.com/GlebRadaev/coursemarket/internal/service/orderservice"
	"github.com/GlebRadaev/coursemarket/pkg/signature"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: orderservice.ErrInvalidOrder, code: http.StatusBadRequest},
		{err: authservice.ErrWeakPassword, code: http.StatusBadRequest},
		{err: authservice.ErrInvalidCredentials, code: http.StatusUnauthorized},
		{err: authservice.ErrLoginTaken, code: http.StatusConflict},
		{err: signature.ErrMissingSignature, code: http.StatusUnauthorized},
		{err: signature.ErrInvalidSignature, code: http.StatusForbidden},
		{err: orderservice.ErrForbidden, code: http.StatusForbidden},
		{err: orderservice.ErrOrderNotFound, code: http.StatusNotFound},
		{err: creditcardservice.ErrCardInUse, code: http.StatusConflict},
		{err: fmt.Errorf("%w: order is completed", flow.ErrTransitionNotAllowed), code: http.StatusUnprocessableEntity},
		{err: orderservice.ErrNoOrganization, code: http.StatusUnprocessableEntity},
		{err: creditcardservice.ErrInvalidCard, code: http.StatusUnprocessableEntity},
		{err: errors.New("connection reset"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, Status(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	Respond(w, errors.New("pq: password authentication failed"))

	var resp utils.Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Message)

	w = httptest.NewRecorder()
	Respond(w, orderservice.ErrVoucherUsed)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"voucher already used"}`, w.Body.String())
}
