package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/internal/handlers/httperr"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func decodeCredentials(r *http.Request) (dto.CredentialsRequestDTO, bool) {
	var req dto.CredentialsRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		return req, false
	}
	req.Login = strings.TrimSpace(req.Login)
	return req, req.Login != "" && req.Password != ""
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, userID int, message string) {
	token, err := h.authService.GenerateToken(userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: message,
		Token:   token,
	})
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a student account. Logins are case-insensitive, passwords need 8 characters
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CredentialsRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or weak credentials"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	h.respondWithToken(w, user.ID, "User successfully registered")
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a user account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CredentialsRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	h.respondWithToken(w, user.ID, "User successfully authenticated")
}
