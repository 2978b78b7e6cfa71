package organizations

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/internal/dto"
	"github.com/GlebRadaev/coursemarket/internal/handlers/httperr"
	"github.com/GlebRadaev/coursemarket/pkg/utils"
)

//go:generate mockgen -source=organizations.go -destination=mock_organizations.go -package=organizations

type Service interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.Organization, error)
}

type OrganizationHandler struct {
	organizationService Service
}

func New(organizationService Service) *OrganizationHandler {
	return &OrganizationHandler{organizationService: organizationService}
}

// GetOrganizations godoc
//
//	@Summary	List the organizations selling a product
//	@Tags		Organizations
//	@Produce	json
//	@Param		product_id	query	string	true	"Product id"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.OrganizationResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid product id"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/v1/organizations [get]
func (h *OrganizationHandler) GetOrganizations(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.URL.Query().Get("product_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	organizations, err := h.organizationService.ListByProduct(r.Context(), productID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.OrganizationResponseDTO, 0, len(organizations))
	for _, o := range organizations {
		response = append(response, dto.OrganizationResponseDTO{ID: o.ID, Code: o.Code, Title: o.Title})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
