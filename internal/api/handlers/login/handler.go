package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
	msgLoginFailed        = "не удалось войти: бэкенд не выдал токен"
	msgBackendUnavailable = "сервис бронирования недоступен"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /auth/login - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	user, err := h.service.Login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: login_id=%s", req.LoginID)
			handlers.RespondUnauthorized(w, handlers.BackendMessage(err, msgInvalidCredentials))

		case errors.Is(err, auth.ErrLoginFailed):
			h.logger.Error("POST /auth/login - No token in response: login_id=%s", req.LoginID)
			handlers.RespondBadGateway(w, msgLoginFailed)

		case errors.Is(err, auth.ErrBackendUnavailable):
			h.logger.Error("POST /auth/login - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /auth/login - Failed to login: login_id=%s, error=%v", req.LoginID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: login_id=%s, role=%s", user.LoginID, user.Role)
	handlers.RespondJSON(w, http.StatusOK, user)
}
