package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MovieBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "нужны логин и пароль"
	msgPasswordMismatch   = "пароль и подтверждение не совпадают"
	msgRejected           = "регистрация отклонена"
	msgRegistered         = "пользователь зарегистрирован"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /auth/register - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, auth.ErrPasswordMismatch):
			h.logger.Warn("POST /auth/register - Password mismatch: login_id=%s", req.LoginID)
			handlers.RespondBadRequest(w, msgPasswordMismatch)

		case errors.Is(err, auth.ErrRejected), errors.Is(err, auth.ErrUnauthorized):
			h.logger.Warn("POST /auth/register - Rejected by backend: login_id=%s, error=%v", req.LoginID, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgRejected))

		case errors.Is(err, auth.ErrBackendUnavailable):
			h.logger.Error("POST /auth/register - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /auth/register - Failed to register: login_id=%s, error=%v", req.LoginID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Message == "" {
		result.Message = msgRegistered
	}

	h.logger.Info("POST /auth/register - Registered: login_id=%s", req.LoginID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
