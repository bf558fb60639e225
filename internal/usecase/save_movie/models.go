package save_movie

import (
	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
)

// Request модель запроса на создание фильма
type Request struct {
	Movie             domain.Movie    // Поля формы; ShowTimes - простые строки сеансов
	ShowTimesDetailed []mapper.Record // Подробные сеансы {time, date, screenNumber}, приоритетнее ShowTimes
	ShowDate          string          // Общая дата для сеансов без своей даты
}

// UpdateRequest модель запроса на обновление фильма
type UpdateRequest struct {
	Key domain.MovieKey // Идентичность из пути, а не из формы
	Request
}

// Response модель ответа с сохраненным фильмом
type Response struct {
	Movie domain.Movie
}
