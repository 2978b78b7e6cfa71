// Package webhooks receives the signed notifications of the payment provider
// and of the signature backend.
package webhooks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/coursemarket/internal/handlers/httperr"
	"github.com/GlebRadaev/coursemarket/internal/idempotency"
	"github.com/GlebRadaev/coursemarket/internal/service/paymentservice"
	"github.com/GlebRadaev/coursemarket/internal/service/signatureservice"
	"github.com/GlebRadaev/coursemarket/pkg/signature"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

//go:generate mockgen -source=webhooks.go -destination=mock_webhooks.go -package=webhooks

const maxBodySize = 1 << 20

type PaymentService interface {
	HandleNotification(ctx context.Context, n paymentservice.Notification) error
}

type SignatureService interface {
	HandleNotification(ctx context.Context, n signatureservice.Notification) error
}

type WebhookHandler struct {
	paymentService    PaymentService
	signatureService  SignatureService
	paymentVerifier   *signature.Verifier
	signatureVerifier *signature.Verifier
	deduper           idempotency.Deduper
}

func New(
	paymentService PaymentService,
	signatureService SignatureService,
	paymentVerifier *signature.Verifier,
	signatureVerifier *signature.Verifier,
	deduper idempotency.Deduper,
) *WebhookHandler {
	return &WebhookHandler{
		paymentService:    paymentService,
		signatureService:  signatureService,
		paymentVerifier:   paymentVerifier,
		signatureVerifier: signatureVerifier,
		deduper:           deduper,
	}
}

// readSigned returns the raw body once its signature is checked.
func readSigned(w http.ResponseWriter, r *http.Request, verifier *signature.Verifier) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := verifier.VerifyRequest(r, body); err != nil {
		zap.L().Warn("rejected webhook", zap.String("path", r.URL.Path), zap.Error(err))
		httperr.Respond(w, err)
		return nil, false
	}
	return body, true
}

// handleOnce runs fn unless the same notification was already accepted.
// A failed run releases the key so the sender can retry.
func (h *WebhookHandler) handleOnce(w http.ResponseWriter, r *http.Request, key string, fn func(ctx context.Context) error) {
	first, err := h.deduper.First(r.Context(), key)
	if err != nil {
		zap.L().Warn("deduplication unavailable", zap.String("key", key), zap.Error(err))
		first = true
	}
	if !first {
		zap.L().Info("duplicate notification ignored", zap.String("key", key))
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Already processed"})
		return
	}

	if err := fn(r.Context()); err != nil {
		if releaseErr := h.deduper.Release(r.Context(), key); releaseErr != nil {
			zap.L().Error("failed to release notification key", zap.String("key", key), zap.Error(releaseErr))
		}
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "OK"})
}

// PaymentNotification godoc
//
//	@Summary		Payment provider notification
//	@Description	Reports the outcome of an installment debit, a refund or a batch order payment. The body must be signed with a shared secret.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header	string							true	"SIG-HMAC-SHA256 <hex digest>"
//	@Param			request			body	paymentservice.Notification		true	"Notification"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid notification"
//	@Failure		401	{object}	utils.Response	"Missing signature"
//	@Failure		403	{object}	utils.Response	"Invalid signature"
//	@Failure		404	{object}	utils.Response	"Order or installment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/payments/notifications [post]
func (h *WebhookHandler) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	body, ok := readSigned(w, r, h.paymentVerifier)
	if !ok {
		return
	}
	var n paymentservice.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := n.Validate(); err != nil {
		httperr.Respond(w, err)
		return
	}

	h.handleOnce(w, r, n.Key(), func(ctx context.Context) error {
		return h.paymentService.HandleNotification(ctx, n)
	})
}

// SignatureNotification godoc
//
//	@Summary		Signature backend notification
//	@Description	Reports that a contract was signed or that the signature was refused.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header	string							true	"SIG-HMAC-SHA256 <hex digest>"
//	@Param			request			body	signatureservice.Notification	true	"Notification"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid notification"
//	@Failure		401	{object}	utils.Response	"Missing signature"
//	@Failure		403	{object}	utils.Response	"Invalid signature"
//	@Failure		404	{object}	utils.Response	"Contract not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/signature/notifications [post]
func (h *WebhookHandler) SignatureNotification(w http.ResponseWriter, r *http.Request) {
	body, ok := readSigned(w, r, h.signatureVerifier)
	if !ok {
		return
	}
	var n signatureservice.Notification
	if err := json.Unmarshal(body, &n); err != nil || n.Reference == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	key := "signature:" + n.Reference + ":" + n.EventType
	h.handleOnce(w, r, key, func(ctx context.Context) error {
		return h.signatureService.HandleNotification(ctx, n)
	})
}
