package certificates

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/internal/handlers/httperr"
	"github.com/GlebRadaev/coursemarket/pkg/auth"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

//go:generate mockgen -source=certificates.go -destination=mock_certificates.go -package=certificates

type Service interface {
	List(ctx context.Context, userID int) ([]domain.Certificate, error)
}

type CertificateHandler struct {
	certificateService Service
}

func New(certificateService Service) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

// GetCertificates godoc
//
//	@Summary	List the user's certificates
//	@Tags		Certificates
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.CertificateResponseDTO
//	@Success	204	"No data available"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/certificates [get]
func (h *CertificateHandler) GetCertificates(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	certificates, err := h.certificateService.List(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(certificates) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := make([]dto.CertificateResponseDTO, 0, len(certificates))
	for _, c := range certificates {
		response = append(response, dto.CertificateResponseDTO{ID: c.ID, OrderID: c.OrderID, IssuedOn: c.IssuedAt})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
