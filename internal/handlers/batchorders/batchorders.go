package batchorders

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/internal/handlers/httperr"
	"github.com/GlebRadaev/coursemarket/internal/service/batchorderservice"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

//go:generate mockgen -source=batchorders.go -destination=mock_batchorders.go -package=batchorders

type Service interface {
	Create(ctx context.Context, userID int, in batchorderservice.CreateInput) (*domain.BatchOrder, error)
	Get(ctx context.Context, userID int, id uuid.UUID) (*domain.BatchOrder, error)
	Cancel(ctx context.Context, userID int, id uuid.UUID) (*domain.BatchOrder, error)
}

type SignatureService interface {
	SubmitBatchOrder(ctx context.Context, userID int, batchOrderID uuid.UUID) (string, error)
}

type BatchOrderHandler struct {
	batchOrderService Service
	signatureService  SignatureService
}

func New(batchOrderService Service, signatureService SignatureService) *BatchOrderHandler {
	return &BatchOrderHandler{
		batchOrderService: batchOrderService,
		signatureService:  signatureService,
	}
}

func target(w http.ResponseWriter, r *http.Request) (int, uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, uuid.Nil, false
	}
	id, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid batch order id")
		return 0, uuid.Nil, false
	}
	return userID, id, true
}

// CreateBatchOrder godoc
//
//	@Summary		Create a batch order
//	@Description	Buy several seats of a course for a company. Seats become claimable orders once the batch order is paid.
//	@Tags			BatchOrders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateBatchOrderRequestDTO	true	"Batch order to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BatchOrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Product or course not found"
//	@Failure		422	{object}	utils.Response	"No organization can be assigned"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/batch-orders [post]
func (h *BatchOrderHandler) CreateBatchOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateBatchOrderRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if req.ProductID == uuid.Nil || req.CourseID == uuid.Nil || req.CompanyName == "" || req.NbSeats < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	batch, err := h.batchOrderService.Create(r.Context(), userID, batchorderservice.CreateInput{
		ProductID:   req.ProductID,
		CourseID:    req.CourseID,
		CompanyName: req.CompanyName,
		NbSeats:     req.NbSeats,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBatchOrderResponse(batch))
}

// GetBatchOrder godoc
//
//	@Summary	Get a batch order
//	@Tags		BatchOrders
//	@Produce	json
//	@Param		id	path	string	true	"Batch order id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BatchOrderResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid batch order id"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Batch order of another user"
//	@Failure	404	{object}	utils.Response	"Batch order not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/batch-orders/{id} [get]
func (h *BatchOrderHandler) GetBatchOrder(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	batch, err := h.batchOrderService.Get(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBatchOrderResponse(batch))
}

// SubmitForSignature godoc
//
//	@Summary	Submit the batch order contract for signature
//	@Tags		BatchOrders
//	@Produce	json
//	@Param		id	path	string	true	"Batch order id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.SubmitForSignatureResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid batch order id"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Batch order of another user"
//	@Failure	404	{object}	utils.Response	"Batch order not found"
//	@Failure	422	{object}	utils.Response	"Batch order has no contract or is not waiting for a signature"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/batch-orders/{id}/submit-for-signature [post]
func (h *BatchOrderHandler) SubmitForSignature(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	link, err := h.signatureService.SubmitBatchOrder(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubmitForSignatureResponseDTO{InvitationLink: link})
}

// CancelBatchOrder godoc
//
//	@Summary	Cancel a batch order
//	@Tags		BatchOrders
//	@Produce	json
//	@Param		id	path	string	true	"Batch order id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BatchOrderResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid batch order id"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Batch order of another user"
//	@Failure	404	{object}	utils.Response	"Batch order not found"
//	@Failure	422	{object}	utils.Response	"Batch order cannot be canceled"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/batch-orders/{id}/cancel [post]
func (h *BatchOrderHandler) CancelBatchOrder(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	batch, err := h.batchOrderService.Cancel(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBatchOrderResponse(batch))
}
