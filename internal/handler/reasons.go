package handler

import (
	"fmt"
	"net/http"

	"github.com/dmartell/amorcito-api/internal/progress"
)

// HandleListReasons handles listing unlocked reasons
// @Summary List unlocked reasons
// @Description List only the unlocked reasons, sorted by points threshold ascending
// @Tags razones
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/razones [get]
func HandleListReasons(svc progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reasons, err := svc.ListUnlockedReasons(r.Context())
		if err != nil {
			respondServiceError(w, r, "List reasons", err)
			return
		}

		message := fmt.Sprintf("Se encontraron %d razones desbloqueadas", len(reasons))
		if len(reasons) == 0 {
			message = "No hay razones desbloqueadas aún"
		}
		respondData(w, http.StatusOK, reasons, message)
	}
}
