// Package httperr maps service errors to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/flow"
	"github.com/GlebRadaev/coursemarket/internal/service/authservice"
	"github.com/GlebRadaev/coursemarket/internal/service/batchorderservice"
	"github.com/GlebRadaev/coursemarket/internal/service/certificateservice"
	"github.com/GlebRadaev/coursemarket/internal/service/creditcardservice"
	"github.com/GlebRadaev/coursemarket/internal/service/orderservice"
	"github.com/GlebRadaev/coursemarket/internal/service/paymentservice"
	"github.com/GlebRadaev/coursemarket/internal/service/signatureservice"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
	"github.com/GlebRadaev/coursemarket/pkg/signature"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

var statuses = []struct {
	code int
	errs []error
}{
	{
		code: http.StatusBadRequest,
		errs: []error{
			authservice.ErrInvalidLogin,
			authservice.ErrWeakPassword,
			orderservice.ErrInvalidOrder,
			batchorderservice.ErrInvalidBatchOrder,
			paymentservice.ErrInvalidNotification,
			signatureservice.ErrUnknownEvent,
		},
	},
	{
		code: http.StatusUnauthorized,
		errs: []error{
			signature.ErrMissingSignature,
			authservice.ErrInvalidCredentials,
		},
	},
	{
		code: http.StatusForbidden,
		errs: []error{
			signature.ErrInvalidSignature,
			orderservice.ErrForbidden,
			batchorderservice.ErrForbidden,
			creditcardservice.ErrForbidden,
		},
	},
	{
		code: http.StatusNotFound,
		errs: []error{
			orderservice.ErrOrderNotFound,
			orderservice.ErrProductNotFound,
			orderservice.ErrCourseNotFound,
			orderservice.ErrEnrollmentNotFound,
			orderservice.ErrCardNotFound,
			orderservice.ErrVoucherNotFound,
			batchorderservice.ErrBatchOrderNotFound,
			batchorderservice.ErrProductNotFound,
			batchorderservice.ErrCourseNotFound,
			creditcardservice.ErrCardNotFound,
			signatureservice.ErrContractNotFound,
			schedule.ErrInstallmentNotFound,
		},
	},
	{
		code: http.StatusConflict,
		errs: []error{
			authservice.ErrLoginTaken,
			orderservice.ErrVoucherUsed,
			creditcardservice.ErrCardInUse,
		},
	},
	{
		code: http.StatusUnprocessableEntity,
		errs: []error{
			flow.ErrTransitionNotAllowed,
			domain.ErrOrganizationRequired,
			orderservice.ErrNoOrganization,
			batchorderservice.ErrNoOrganization,
			creditcardservice.ErrInvalidCard,
			creditcardservice.ErrCardExpired,
			signatureservice.ErrNoContract,
			paymentservice.ErrNoPaymentMethod,
			certificateservice.ErrOrderNotCompleted,
		},
	},
}

func Status(err error) int {
	for _, s := range statuses {
		for _, target := range s.errs {
			if errors.Is(err, target) {
				return s.code
			}
		}
	}
	return http.StatusInternalServerError
}

// Respond writes the error with its status. Unknown errors are logged and
// hidden from the client.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
