package tickets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/service/tickets/models"
	"github.com/m04kA/SMC-MovieBooking/internal/session"
)

// Service сервис для работы с билетами
type Service struct {
	client  TicketClient
	session SessionReader
	catalog CacheInvalidator
	logger  Logger
}

// NewService создает новый экземпляр сервиса билетов.
// catalog может быть nil.
func NewService(client TicketClient, session SessionReader, catalog CacheInvalidator, logger Logger) *Service {
	return &Service{
		client:  client,
		session: session,
		catalog: catalog,
		logger:  logger,
	}
}

// GetTickets получает билеты текущего пользователя, указанного пользователя
// или все билеты.
// Чужие и все билеты доступны только администратору.
func (s *Service) GetTickets(ctx context.Context, req *models.GetTicketsRequest) (*models.TicketListResponse, error) {
	username := strings.TrimSpace(req.Username)
	s.logger.Info("GetTickets: fetching tickets username=%q all=%t", username, req.All)

	user, err := s.session.User()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			s.logger.Warn("GetTickets: no active session")
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: GetTickets - session error: %v", ErrUnauthorized, err)
	}

	var (
		records []mapper.Record
		op      string
	)
	switch {
	case req.All:
		op = "AllTickets"
		if !user.IsAdmin() {
			s.logger.Warn("GetTickets: user=%s is not admin, all tickets denied", user.LoginID)
			return nil, ErrAccessDenied
		}
		records, err = s.client.AllTickets(ctx)

	case username != "" && username != user.LoginID:
		op = "UserTickets"
		if !user.IsAdmin() {
			s.logger.Warn("GetTickets: user=%s cannot read tickets of %s", user.LoginID, username)
			return nil, ErrAccessDenied
		}
		records, err = s.client.UserTickets(ctx, username)

	default:
		op = "CurrentUserTickets"
		records, err = s.client.CurrentUserTickets(ctx)
	}

	if err != nil {
		s.logger.Warn("GetTickets: %s backend error: %v", op, err)
		return nil, clientError("GetTickets", err)
	}

	tickets := mapper.MapTickets(records)

	s.logger.Info("GetTickets: successfully fetched %d tickets (%s)", len(tickets), op)
	return models.FromDomainTicketList(tickets), nil
}

// Cancel отменяет бронирование по booking reference (или id билета)
func (s *Service) Cancel(ctx context.Context, reference string) error {
	reference = strings.TrimSpace(reference)
	s.logger.Info("Cancel: cancelling booking reference=%q", reference)

	if reference == "" {
		s.logger.Warn("Cancel: empty booking reference")
		return fmt.Errorf("%w: booking reference is required", ErrInvalidInput)
	}

	if err := s.client.CancelTicket(ctx, reference); err != nil {
		s.logger.Warn("Cancel: backend error for reference=%q: %v", reference, err)
		return clientError("Cancel", err)
	}

	// Отмена возвращает места в продажу
	if s.catalog != nil {
		s.catalog.Invalidate()
	}

	s.logger.Info("Cancel: successfully cancelled booking reference=%q", reference)
	return nil
}
