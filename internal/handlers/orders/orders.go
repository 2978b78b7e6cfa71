package orders

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/internal/handlers/httperr"
	"github.com/GlebRadaev/coursemarket/internal/service/orderservice"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	Create(ctx context.Context, userID int, in orderservice.CreateInput) (*domain.Order, error)
	List(ctx context.Context, userID int) ([]domain.Order, error)
	Get(ctx context.Context, userID int, id uuid.UUID) (*domain.Order, error)
	SetPaymentMethod(ctx context.Context, userID int, orderID, cardID uuid.UUID) (*domain.Order, error)
	Cancel(ctx context.Context, userID int, orderID uuid.UUID) (*domain.Order, error)
	Claim(ctx context.Context, userID int, voucher string) (*domain.Order, error)
}

type SignatureService interface {
	SubmitOrder(ctx context.Context, userID int, orderID uuid.UUID) (string, error)
}

type OrderHandler struct {
	orderService     Service
	signatureService SignatureService
}

func New(orderService Service, signatureService SignatureService) *OrderHandler {
	return &OrderHandler{
		orderService:     orderService,
		signatureService: signatureService,
	}
}

// target reads the authenticated user and the order id of the route.
func target(w http.ResponseWriter, r *http.Request) (int, uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, uuid.Nil, false
	}
	id, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return 0, uuid.Nil, false
	}
	return userID, id, true
}

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Order a product on a course, or a certificate on one of the user's enrollments. The order is assigned to an organization and moved to the first state waiting for the user.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Enrollment of another user"
//	@Failure		404	{object}	utils.Response	"Product, course or enrollment not found"
//	@Failure		422	{object}	utils.Response	"No organization can be assigned"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateOrderRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || req.ProductID == uuid.Nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), userID, orderservice.CreateInput{
		ProductID:    req.ProductID,
		CourseID:     req.CourseID,
		EnrollmentID: req.EnrollmentID,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve the orders owned by the authorized user, newest first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Success		204	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.List(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, dto.NewOrderResponse(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Order of another user"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	order, err := h.orderService.Get(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// SubmitForSignature godoc
//
//	@Summary		Submit the order contract for signature
//	@Description	Creates or refreshes the contract of an order in to_sign or signing and returns the link the user signs it with.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SubmitForSignatureResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Order of another user"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		422	{object}	utils.Response	"Order has no contract or is not waiting for a signature"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/{id}/submit-for-signature [post]
func (h *OrderHandler) SubmitForSignature(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	link, err := h.signatureService.SubmitOrder(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubmitForSignatureResponseDTO{InvitationLink: link})
}

// SetPaymentMethod godoc
//
//	@Summary		Set the card debited for the order
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Order id"
//	@Param			request	body	dto.SetPaymentMethodRequestDTO	true	"Credit card"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Order of another user"
//	@Failure		404	{object}	utils.Response	"Order or card not found"
//	@Failure		422	{object}	utils.Response	"Order does not accept a payment method"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/{id}/payment-method [post]
func (h *OrderHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	var req dto.SetPaymentMethodRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || req.CreditCardID == uuid.Nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.orderService.SetPaymentMethod(r.Context(), userID, id, req.CreditCardID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// CancelOrder godoc
//
//	@Summary		Cancel an order
//	@Description	Pending installments are canceled and paid ones refunded.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	string	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Order of another user"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		422	{object}	utils.Response	"Order cannot be canceled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := target(w, r)
	if !ok {
		return
	}
	order, err := h.orderService.Cancel(r.Context(), userID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// ClaimOrder godoc
//
//	@Summary		Claim a seat bought by a batch order
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ClaimOrderRequestDTO	true	"Voucher"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Voucher not found"
//	@Failure		409	{object}	utils.Response	"Voucher already used"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/orders/claim [post]
func (h *OrderHandler) ClaimOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.ClaimOrderRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil || strings.TrimSpace(req.Voucher) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.orderService.Claim(r.Context(), userID, strings.TrimSpace(req.Voucher))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}
