package password_reset

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "нужен логин или email"
	msgInvalidToken       = "нужны токен и новый пароль"
	msgPasswordMismatch   = "пароль и подтверждение не совпадают"
	msgUserNotFound       = "пользователь не найден"
	msgRejected           = "запрос на сброс пароля отклонен"
	msgResetRequested     = "ссылка для сброса пароля отправлена"
	msgPasswordUpdated    = "пароль обновлен"
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

// Handle POST /api/v1/auth/password-reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password-reset - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /auth/password-reset - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.RequestPasswordReset(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /auth/password-reset", msgInvalidInput, err)
		return
	}

	if result.Message == "" {
		result.Message = msgResetRequested
	}

	h.logger.Info("POST /auth/password-reset - Reset requested")
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleConfirm POST /api/v1/auth/password-reset/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmResetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/password-reset/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /auth/password-reset/confirm - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.ResetPassword(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /auth/password-reset/confirm", msgInvalidToken, err)
		return
	}

	if result.Message == "" {
		result.Message = msgPasswordUpdated
	}

	h.logger.Info("POST /auth/password-reset/confirm - Password updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route, invalidMsg string, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, invalidMsg)

	case errors.Is(err, auth.ErrPasswordMismatch):
		h.logger.Warn("%s - Password mismatch", route)
		handlers.RespondBadRequest(w, msgPasswordMismatch)

	case errors.Is(err, auth.ErrUserNotFound):
		h.logger.Warn("%s - User not found", route)
		handlers.RespondNotFound(w, msgUserNotFound)

	case errors.Is(err, auth.ErrUnauthorized):
		h.logger.Warn("%s - Unauthorized: %v", route, err)
		handlers.RespondUnauthorized(w, handlers.BackendMessage(err, msgRejected))

	case errors.Is(err, auth.ErrRejected):
		h.logger.Warn("%s - Rejected by backend: %v", route, err)
		handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgRejected))

	case errors.Is(err, auth.ErrBackendUnavailable):
		h.logger.Error("%s - Backend unavailable: %v", route, err)
		handlers.RespondBadGateway(w, msgBackendUnavailable)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
