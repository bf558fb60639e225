package current_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/auth"
)

const msgUnauthorized = "нет активной сессии"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser()
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			h.logger.Warn("GET /auth/me - No active session")
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		h.logger.Error("GET /auth/me - Failed to read session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
