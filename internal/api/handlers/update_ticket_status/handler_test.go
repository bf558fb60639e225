package update_ticket_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies"
	"github.com/m04kA/SMC-MovieBooking/internal/service/movies/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	key    domain.MovieKey
	status string
	err    error
}

func (s *stubService) UpdateTicketStatus(_ context.Context, key domain.MovieKey, status string) (*models.MovieResponse, error) {
	s.key, s.status = key, status
	if s.err != nil {
		return nil, s.err
	}
	return &models.MovieResponse{MovieName: key.MovieName, TheatreName: key.TheatreName, Status: status}, nil
}

func router(svc *stubService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/movies/{movieName}/{theatreName}/status/{status}", h.Handle).Methods(http.MethodPut)
	r.HandleFunc("/movies/{movieName}/status/{status}", h.Handle).Methods(http.MethodPut)
	return r
}

func TestHandle_TheatreFromPath(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	router(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/movies/Avatar/PVR/status/SOLD_OUT", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.MovieKey{MovieName: "Avatar", TheatreName: "PVR"}, svc.key)
	assert.Equal(t, "SOLD_OUT", svc.status)
}

func TestHandle_TheatreFromQuery(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	router(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/movies/Avatar/status/BOOK_ASAP?theatreName=INOX", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "INOX", svc.key.TheatreName)
}

func TestHandle_NoTheatreLeftToService(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	router(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/movies/Avatar/status/BOOK_ASAP", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.key.TheatreName)
}

func TestHandle_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	router(&stubService{err: movies.ErrMovieNotFound}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPut, "/movies/Avatar/PVR/status/SOLD_OUT", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
