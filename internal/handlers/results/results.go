package results

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/dto"
	"github.com/GlebRadaev/xoso/internal/service/resultservice"
	"github.com/GlebRadaev/xoso/pkg/utils"
)

type Service interface {
	Lookup(ctx context.Context, province, date string) (domain.ResultLookup, error)
}

type ResultHandler struct {
	resultService Service
}

func New(resultService Service) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
	}
}

// GetResults godoc
//
//	@Summary		Get draw results
//	@Description	Return the stored prize tiers for a province and date, or explain why they are not available yet.
//	@Tags			Results
//	@Produce		json
//	@Param			province	query		string	true	"Province name"
//	@Param			date		query		string	true	"Draw date, YYYY-MM-DD"
//	@Success		200			{object}	dto.ResultResponseDTO
//	@Failure		400			{object}	utils.Response	"Province and date are required"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/results [get]
func (h *ResultHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lookup, err := h.resultService.Lookup(r.Context(), query.Get("province"), query.Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, resultservice.ErrInvalidQuery):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if lookup.Result == nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.ResultResponseDTO{
			Success: false,
			Reason:  lookup.Reason,
			Message: lookup.Message,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ResultResponseDTO{
		Success:  true,
		Province: lookup.Result.Province,
		Date:     lookup.Result.Date,
		Region:   lookup.Result.Region,
		Results:  lookup.Result.Prizes,
	})
}
