package handler

import (
	"fmt"
	"net/http"

	"github.com/dmartell/amorcito-api/internal/progress"
)

// ClaimPrizeRequest is the body for claiming a prize
type ClaimPrizeRequest struct {
	PrizeID int `json:"premio_id" validate:"required,gt=0"`
}

// HandleListPrizes handles listing all prizes with claim status
// @Summary List prizes
// @Description List every prize with its claimed flag, sorted by cost ascending
// @Tags premios
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/premios [get]
func HandleListPrizes(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prizes, err := svc.ListPrizes(r.Context())
		if err != nil {
			respondServiceError(w, r, "List prizes", err)
			return
		}

		respondData(w, http.StatusOK, prizes, fmt.Sprintf("Se encontraron %d premios", len(prizes)))
	}
}

// HandleClaimPrize handles redeeming a prize for stars
// @Summary Claim a prize
// @Description Redeem a prize, deducting its cost from the star balance
// @Tags premios
// @Accept json
// @Produce json
// @Param request body ClaimPrizeRequest true "Prize to claim"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/reclamar-premio [post]
func HandleClaimPrize(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimPrizeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim prize"); err != nil {
			return
		}

		result, err := svc.ClaimPrize(r.Context(), req.PrizeID)
		if err != nil {
			respondServiceError(w, r, "Claim prize", err)
			return
		}

		respondData(w, http.StatusOK, result, "Premio reclamado exitosamente")
	}
}
