package handlers

import (
	"errors"

	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

const (
	msgNoShowTimes      = "нужен хотя бы один сеанс: передайте showTimesDetailed или showTimes вместе с showDate"
	msgMissingDate      = "у каждого сеанса должна быть дата"
	msgMissingTime      = "у каждого сеанса должно быть время"
	msgUnparseableTime  = "некорректное время сеанса, ожидается HH:MM, HH:MM:SS или 10:00 AM"
	msgUnparseableDate  = "некорректная дата сеанса, ожидается YYYY-MM-DD"
	msgNoSeats          = "нужно выбрать хотя бы одно место"
	msgSeatMismatch     = "количество мест должно совпадать с количеством билетов"
	msgTooManyTickets   = "за одно бронирование можно купить не больше 10 билетов"
	msgInvalidPayload   = "некорректные данные запроса"
	msgInvalidMovieData = "некорректные данные фильма: нужны название и кинотеатр, вместимость не может быть отрицательной"
)

// PayloadMessage возвращает текст ошибки построения payload для клиента
func PayloadMessage(err error) string {
	switch {
	case errors.Is(err, payload.ErrNoShowTimes):
		return msgNoShowTimes
	case errors.Is(err, payload.ErrMissingDate):
		return msgMissingDate
	case errors.Is(err, payload.ErrMissingTime):
		return msgMissingTime
	case errors.Is(err, payload.ErrUnparseableTime):
		return msgUnparseableTime
	case errors.Is(err, payload.ErrUnparseableDate):
		return msgUnparseableDate
	case errors.Is(err, payload.ErrNoSeats):
		return msgNoSeats
	case errors.Is(err, payload.ErrSeatCountMismatch):
		return msgSeatMismatch
	case errors.Is(err, payload.ErrTooManyTickets):
		return msgTooManyTickets
	case errors.Is(err, payload.ErrInvalidInput):
		return msgInvalidMovieData
	default:
		return msgInvalidPayload
	}
}
