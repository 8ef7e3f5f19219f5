package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssistantHandler struct {
	service usecase.AssistantService
	log     *zap.Logger
}

func NewAssistantHandler(service usecase.AssistantService, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: service,
		log:     log.With(zap.String("handler", "assistant")),
	}
}

// AskAboutMovie handles POST /api/movies/{id}/insights
func (h *AssistantHandler) AskAboutMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var req request.MovieInsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	insights, err := h.service.AskAboutMovie(r.Context(), movieID, &req)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "not found") {
			h.log.Warn("ask about movie failed - not found", zap.Error(err))
			utils.ResponseNotFound(w, errMsg)
			return
		}

		h.log.Error("Failed to ask about movie", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", insights)
}
