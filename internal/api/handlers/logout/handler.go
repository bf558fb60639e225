package logout

import (
	"net/http"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
)

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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.Logout()

	h.logger.Info("POST /auth/logout - Session cleared")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
