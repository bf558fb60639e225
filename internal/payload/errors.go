package payload

import "errors"

var (
	// ErrUnparseableTime возвращается, когда время сеанса не удалось распознать
	ErrUnparseableTime = errors.New("payload: unparseable show time")

	// ErrUnparseableDate возвращается, когда дату сеанса не удалось распознать
	ErrUnparseableDate = errors.New("payload: unparseable show date")

	// ErrNoShowTimes возвращается, когда не передано ни одного сеанса
	ErrNoShowTimes = errors.New("payload: at least one show time is required, provide showTimesDetailed or showTimes with showDate")

	// ErrMissingDate возвращается, когда у сеанса нет даты и нет общей showDate
	ErrMissingDate = errors.New("payload: show date is required for each show time")

	// ErrMissingTime возвращается, когда у сеанса нет времени
	ErrMissingTime = errors.New("payload: show time is required for each show time entry")

	// ErrNoSeats возвращается, когда список мест пуст
	ErrNoSeats = errors.New("payload: at least one seat number is required")

	// ErrSeatCountMismatch возвращается, когда количество мест не совпадает с количеством билетов
	ErrSeatCountMismatch = errors.New("payload: number of seat numbers must match number of tickets")

	// ErrTooManyTickets возвращается при превышении лимита билетов на одно бронирование
	ErrTooManyTickets = errors.New("payload: maximum 10 tickets can be booked at once")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("payload: invalid input data")
)

// Failure kinds reported to metrics
const (
	KindUnparseableTime = "unparseable_time"
	KindUnparseableDate = "unparseable_date"
	KindNoShowTimes     = "no_show_times"
	KindMissingDate     = "missing_date"
	KindMissingTime     = "missing_time"
	KindNoSeats         = "no_seats"
	KindSeatMismatch    = "seat_count_mismatch"
	KindTooManyTickets  = "too_many_tickets"
	KindInvalidInput    = "invalid_input"
	KindUnknown         = "unknown"
)

var failureKinds = []struct {
	err  error
	kind string
}{
	{ErrUnparseableTime, KindUnparseableTime},
	{ErrUnparseableDate, KindUnparseableDate},
	{ErrNoShowTimes, KindNoShowTimes},
	{ErrMissingDate, KindMissingDate},
	{ErrMissingTime, KindMissingTime},
	{ErrNoSeats, KindNoSeats},
	{ErrSeatCountMismatch, KindSeatMismatch},
	{ErrTooManyTickets, KindTooManyTickets},
	{ErrInvalidInput, KindInvalidInput},
}

// FailureKind классифицирует ошибку построения payload для метрик
func FailureKind(err error) string {
	for _, fk := range failureKinds {
		if errors.Is(err, fk.err) {
			return fk.kind
		}
	}
	return KindUnknown
}

// IsParseFailure возвращает true для ошибок распознавания даты или времени
func IsParseFailure(err error) bool {
	return errors.Is(err, ErrUnparseableTime) || errors.Is(err, ErrUnparseableDate)
}

// IsValidationFailure возвращает true для ошибок неполного или противоречивого payload
func IsValidationFailure(err error) bool {
	switch FailureKind(err) {
	case KindUnknown, KindUnparseableTime, KindUnparseableDate:
		return false
	default:
		return true
	}
}
