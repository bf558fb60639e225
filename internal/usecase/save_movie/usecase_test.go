package save_movie

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
	"github.com/m04kA/SMC-MovieBooking/pkg/logger"
	"github.com/m04kA/SMC-MovieBooking/pkg/ptr"
	"github.com/m04kA/SMC-MovieBooking/pkg/temporal"
)

type fakeClient struct {
	addRecord mapper.Record
	addErr    error
	deleteErr error

	calls []string
	added []*payload.MovieRequest
}

func (f *fakeClient) AddMovie(_ context.Context, req *payload.MovieRequest) (mapper.Record, error) {
	f.calls = append(f.calls, "add:"+req.MovieName+"/"+req.TheatreName)
	f.added = append(f.added, req)
	return f.addRecord, f.addErr
}

func (f *fakeClient) DeleteMovie(_ context.Context, movieName, theatreName string) error {
	f.calls = append(f.calls, "delete:"+movieName+"/"+theatreName)
	return f.deleteErr
}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) Invalidate() { f.calls++ }

type fakeMetrics struct{ kinds []string }

func (f *fakeMetrics) PayloadBuildFailed(kind string) { f.kinds = append(f.kinds, kind) }

type fixture struct {
	uc      *UseCase
	client  *fakeClient
	cache   *fakeInvalidator
	metrics *fakeMetrics
}

func newFixture(client *fakeClient) *fixture {
	f := &fixture{client: client, cache: &fakeInvalidator{}, metrics: &fakeMetrics{}}
	builder := payload.NewBuilder(payload.ShapeStructured, temporal.Parser{Location: time.UTC})
	f.uc = NewUseCase(builder, client, f.cache, f.metrics, logger.NewWithWriter(io.Discard, "error"))
	return f
}

func TestAdd(t *testing.T) {
	f := newFixture(&fakeClient{addRecord: mapper.Record{"movie_name": "Dune", "theatre_name": "PVR", "id": 9}})

	resp, err := f.uc.Add(t.Context(), &Request{
		Movie: domain.Movie{MovieName: "Dune", TheatreName: "PVR", TotalTickets: ptr.Ptr(100)},
		ShowTimesDetailed: []mapper.Record{
			{"time": "10:00 AM"},
			{"show_time": "6:30 PM", "show_date": "2025-01-02"},
		},
		ShowDate: "2025-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "9", resp.Movie.ID)
	require.Len(t, f.client.added, 1)
	assert.Equal(t, []payload.ShowTimeRecord{
		{Time: "10:00:00", Date: "2025-01-01"},
		{Time: "18:30:00", Date: "2025-01-02"},
	}, f.client.added[0].ShowTimes.Records)
	assert.Equal(t, 1, f.cache.calls)
	assert.Empty(t, f.metrics.kinds)
}

func TestAdd_EmptyResponseFallsBackToPayload(t *testing.T) {
	f := newFixture(&fakeClient{addRecord: mapper.Record{}})

	resp, err := f.uc.Add(t.Context(), &Request{
		Movie:    domain.Movie{MovieName: " Dune ", TheatreName: "PVR", ShowTimes: []string{"10:00"}},
		ShowDate: "2025-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dune", resp.Movie.MovieName)
	assert.Equal(t, []string{"2025-01-01 10:00:00"}, resp.Movie.ShowTimes)
}

func TestAdd_BuildFailures(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
		kind string
	}{
		{
			name: "no show times",
			req:  Request{Movie: domain.Movie{MovieName: "Dune", TheatreName: "PVR"}},
			want: payload.ErrNoShowTimes,
			kind: payload.KindNoShowTimes,
		},
		{
			name: "unparseable time",
			req:  Request{Movie: domain.Movie{MovieName: "Dune", TheatreName: "PVR", ShowTimes: []string{"noon-ish"}}, ShowDate: "2025-01-01"},
			want: payload.ErrUnparseableTime,
			kind: payload.KindUnparseableTime,
		},
		{
			name: "missing date",
			req:  Request{Movie: domain.Movie{MovieName: "Dune", TheatreName: "PVR", ShowTimes: []string{"10:00"}}},
			want: payload.ErrMissingDate,
			kind: payload.KindMissingDate,
		},
		{
			name: "missing theatre",
			req:  Request{Movie: domain.Movie{MovieName: "Dune", ShowTimes: []string{"2025-01-01 10:00"}}},
			want: payload.ErrInvalidInput,
			kind: payload.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(&fakeClient{})

			_, err := f.uc.Add(t.Context(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, []string{tt.kind}, f.metrics.kinds)
			assert.Empty(t, f.client.calls)
			assert.Zero(t, f.cache.calls)
		})
	}
}

func TestAdd_BackendRejects(t *testing.T) {
	f := newFixture(&fakeClient{addErr: &moviebooking.APIError{Kind: moviebooking.ErrRejected, StatusCode: 400, Message: "Movie already exists"}})

	_, err := f.uc.Add(t.Context(), &Request{
		Movie: domain.Movie{MovieName: "Dune", TheatreName: "PVR", ShowTimes: []string{"2025-01-01 10:00:00"}},
	})
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "Movie already exists", moviebooking.MessageOf(err))
	assert.Zero(t, f.cache.calls)
}

func TestUpdate_DeleteThenRecreate(t *testing.T) {
	f := newFixture(&fakeClient{addRecord: mapper.Record{}})

	resp, err := f.uc.Update(t.Context(), &UpdateRequest{
		Key: domain.MovieKey{MovieName: "Dune", TheatreName: "PVR"},
		Request: Request{
			Movie: domain.Movie{
				MovieName:    "Renamed in form",
				TheatreName:  "Other",
				TotalTickets: ptr.Ptr(120),
				ShowTimes:    []string{"2025-01-01 10:00:00", "2025-01-01 18:30:00"},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete:Dune/PVR", "add:Dune/PVR"}, f.client.calls)
	sent := f.client.added[0]
	assert.Equal(t, ptr.Ptr(120), sent.AvailableTickets)
	assert.Len(t, sent.ShowTimes.Records, 2)
	assert.Equal(t, "Dune", resp.Movie.MovieName)
	assert.Equal(t, 2, f.cache.calls)
}

func TestUpdate_BuildFailsBeforeDelete(t *testing.T) {
	f := newFixture(&fakeClient{})

	_, err := f.uc.Update(t.Context(), &UpdateRequest{
		Key:     domain.MovieKey{MovieName: "Dune", TheatreName: "PVR"},
		Request: Request{Movie: domain.Movie{ShowTimes: []string{"25:99"}}, ShowDate: "2025-01-01"},
	})
	assert.ErrorIs(t, err, payload.ErrUnparseableTime)
	assert.Empty(t, f.client.calls)
}

func TestUpdate_Failures(t *testing.T) {
	f := newFixture(&fakeClient{})
	_, err := f.uc.Update(t.Context(), &UpdateRequest{Key: domain.MovieKey{MovieName: "Dune"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	valid := Request{Movie: domain.Movie{ShowTimes: []string{"2025-01-01 10:00"}}}
	key := domain.MovieKey{MovieName: "Dune", TheatreName: "PVR"}

	f = newFixture(&fakeClient{deleteErr: &moviebooking.APIError{Kind: moviebooking.ErrNotFound, StatusCode: 404}})
	_, err = f.uc.Update(t.Context(), &UpdateRequest{Key: key, Request: valid})
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Equal(t, []string{"delete:Dune/PVR"}, f.client.calls)

	f = newFixture(&fakeClient{addErr: moviebooking.ErrInternal})
	_, err = f.uc.Update(t.Context(), &UpdateRequest{Key: key, Request: valid})
	assert.ErrorIs(t, err, ErrRecreateFailed)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, 1, f.cache.calls)
}
