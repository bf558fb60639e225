// Package session holds the process-wide auth session: the current user
// and the bearer token. It is populated by login, cleared by logout, and
// cleared automatically once the token is found absent or expired.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
)

// ErrNoSession возвращается, когда активной сессии нет
var ErrNoSession = errors.New("session: no active session")

// Store потокобезопасное хранилище сессии
type Store struct {
	mu    sync.RWMutex
	token string
	user  *domain.User
	now   func() time.Time
}

// NewStore создает пустое хранилище сессии
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Set сохраняет сессию после успешного логина
func (s *Store) Set(token string, user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user
}

// Clear удаляет сессию
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
}

// Token возвращает токен текущей сессии. Истекший токен очищает сессию.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return "", false
	}

	if s.expired(token) {
		s.clearIfCurrent(token)
		return "", false
	}

	return token, true
}

// User возвращает копию пользователя текущей сессии
func (s *Store) User() (domain.User, error) {
	if _, ok := s.Token(); !ok {
		return domain.User{}, ErrNoSession
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, ErrNoSession
	}
	return *s.user, nil
}

// IsAuthenticated возвращает true, если есть действующий токен
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// expired читает exp без проверки подписи: подпись проверяет бэкенд.
// Непрозрачные (не JWT) токены считаются действующими.
func (s *Store) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !s.now().Before(exp.Time)
}

// clearIfCurrent не трогает сессию, если ее уже заменил новый логин
func (s *Store) clearIfCurrent(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == token {
		s.token = ""
		s.user = nil
	}
}
