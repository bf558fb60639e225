package moviebooking

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при ошибках транспорта: запрос не удалось выполнить
	ErrInternal = errors.New("moviebooking client: internal error")

	// ErrInvalidResponse возвращается при неожиданном статусе или теле ответа
	ErrInvalidResponse = errors.New("moviebooking client: invalid response")

	// ErrUnauthorized возвращается при 401: токен отсутствует или недействителен
	ErrUnauthorized = errors.New("moviebooking client: unauthorized")

	// ErrForbidden возвращается при 403
	ErrForbidden = errors.New("moviebooking client: forbidden")

	// ErrNotFound возвращается при 404
	ErrNotFound = errors.New("moviebooking client: not found")

	// ErrConflict возвращается при 409
	ErrConflict = errors.New("moviebooking client: conflict")

	// ErrRejected возвращается, когда бэкенд ответил success=false или 400
	ErrRejected = errors.New("moviebooking client: request rejected")
)

// APIError ответ бэкенда с ошибкой. Kind - один из sentinel выше,
// Message - текст из конверта ответа, если он был.
type APIError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", e.Kind, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// MessageOf возвращает сообщение бэкенда из цепочки ошибок
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsTransport возвращает true, если бэкенд недоступен или ответил некорректно
func IsTransport(err error) bool {
	return errors.Is(err, ErrInternal) || errors.Is(err, ErrInvalidResponse)
}
