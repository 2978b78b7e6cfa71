package creditcards

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/internal/handlers/httperr"
	"github.com/GlebRadaev/coursemarket/internal/service/creditcardservice"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

//go:generate mockgen -source=creditcards.go -destination=mock_creditcards.go -package=creditcards

type Service interface {
	Create(ctx context.Context, userID int, in creditcardservice.CreateInput) (*domain.CreditCard, error)
	List(ctx context.Context, userID int) ([]domain.CreditCard, error)
	Get(ctx context.Context, userID int, id uuid.UUID) (*domain.CreditCard, error)
	Promote(ctx context.Context, userID int, id uuid.UUID) (*domain.CreditCard, error)
	Delete(ctx context.Context, userID int, id uuid.UUID) error
}

type CreditCardHandler struct {
	creditCardService Service
}

func New(creditCardService Service) *CreditCardHandler {
	return &CreditCardHandler{creditCardService: creditCardService}
}

func target(w http.ResponseWriter, r *http.Request) (int, uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, uuid.Nil, false
	}
	id, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid credit card id")
		return 0, uuid.Nil, false
	}
	return userID, id, true
}

// CreateCreditCard godoc
//
//	@Summary		Register a credit card
//	@Description	Only the brand, the last four digits and a provider token are kept. The first card of a user becomes the main one.
//	@Tags			CreditCards
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateCreditCardRequestDTO	true	"Card"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreditCardResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Invalid or expired card"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/credit-cards [post]
func (h *CreditCardHandler) CreateCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateCreditCardRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || req.Number == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := h.creditCardService.Create(r.Context(), userID, creditcardservice.CreateInput{
		Number:          req.Number,
		Title:           req.Title,
		ExpirationMonth: req.ExpirationMonth,
		ExpirationYear:  req.ExpirationYear,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCreditCardResponse(card))
}

// GetCreditCards godoc
//
//	@Summary	List the user's credit cards
//	@Tags		CreditCards
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.CreditCardResponseDTO
//	@Success	204	"No data available"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/credit-cards [get]
func (h *CreditCardHandler) GetCreditCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cards, err := h.creditCardService.List(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(cards) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := make([]dto.CreditCardResponseDTO, 0, len(cards))
	for i := range cards {
		response = append(response, dto.NewCreditCardResponse(&cards[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCreditCard godoc
//
//	@Summary	Get a credit card
//	@Tags		CreditCards
//	@Produce	json
//	@Param		id	path	string	true	"Credit card id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CreditCardResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid credit card id"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Card of another user"
//	@Failure	404	{object}	utils.Response	"Card not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/credit-cards/{id} [get]
func (h *CreditCardHandler) GetCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	card, err := h.creditCardService.Get(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCreditCardResponse(card))
}

// PromoteCreditCard godoc
//
//	@Summary	Make a credit card the main one
//	@Tags		CreditCards
//	@Produce	json
//	@Param		id	path	string	true	"Credit card id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CreditCardResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid credit card id"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Card of another user"
//	@Failure	404	{object}	utils.Response	"Card not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/credit-cards/{id}/promote [post]
func (h *CreditCardHandler) PromoteCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	card, err := h.creditCardService.Promote(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCreditCardResponse(card))
}

// DeleteCreditCard godoc
//
//	@Summary	Delete a credit card
//	@Tags		CreditCards
//	@Param		id	path	string	true	"Credit card id"
//	@Security	BearerAuth
//	@Success	204	"Deleted"
//	@Failure	400	{object}	utils.Response	"Invalid credit card id"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Card of another user"
//	@Failure	404	{object}	utils.Response	"Card not found"
//	@Failure	409	{object}	utils.Response	"Card still used by an order"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/credit-cards/{id} [delete]
func (h *CreditCardHandler) DeleteCreditCard(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	if err := h.creditCardService.Delete(r.Context(), userID, id); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
