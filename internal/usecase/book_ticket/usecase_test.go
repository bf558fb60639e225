package book_ticket

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MovieBooking/internal/domain"
	"github.com/m04kA/SMC-MovieBooking/internal/integrations/moviebooking"
	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
	"github.com/m04kA/SMC-MovieBooking/pkg/logger"
)

type fakeClient struct {
	record mapper.Record
	err    error

	movieName string
	sent      *payload.BookingRequest
}

func (f *fakeClient) BookTicket(_ context.Context, movieName string, req *payload.BookingRequest) (mapper.Record, error) {
	f.movieName = movieName
	f.sent = req
	return f.record, f.err
}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) Invalidate() { f.calls++ }

type fakeMetrics struct{ kinds []string }

func (f *fakeMetrics) PayloadBuildFailed(kind string) { f.kinds = append(f.kinds, kind) }

func newUseCase(client *fakeClient) (*UseCase, *fakeInvalidator, *fakeMetrics) {
	inv := &fakeInvalidator{}
	m := &fakeMetrics{}
	return NewUseCase(client, inv, m, logger.NewWithWriter(io.Discard, "error")), inv, m
}

func TestExecute(t *testing.T) {
	client := &fakeClient{record: mapper.Record{
		"id":                1,
		"movie_name":        "Dune",
		"theatre_name":      "PVR",
		"number_of_tickets": 2,
		"seat_numbers":      []any{"A1", "A2"},
		"booking_reference": "BK-1",
		"booked_at":         "2025-01-01T10:00:00.123456",
	}}
	uc, inv, m := newUseCase(client)

	resp, err := uc.Execute(t.Context(), &Request{
		MovieName:   " Dune ",
		TheatreName: "PVR",
		SeatNumbers: "A1, A2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dune", client.movieName)
	assert.Equal(t, &payload.BookingRequest{
		MovieName: "Dune", TheatreName: "PVR", NumberOfTickets: 2, SeatNumbers: []string{"A1", "A2"},
	}, client.sent)

	assert.Equal(t, "BK-1", resp.Ticket.CancellationKey())
	assert.Equal(t, domain.StatusConfirmed, resp.Ticket.Status)
	assert.Equal(t, "2025-01-01T10:00:00.123", resp.Ticket.BookingDate)
	assert.Equal(t, 1, inv.calls)
	assert.Empty(t, m.kinds)
}

func TestExecute_EmptyResponseKeepsSelection(t *testing.T) {
	uc, _, _ := newUseCase(&fakeClient{record: mapper.Record{}})

	resp, err := uc.Execute(t.Context(), &Request{MovieName: "Dune", TheatreName: "PVR", NumberOfTickets: 1, SeatNumbers: "C7"})
	require.NoError(t, err)

	assert.Equal(t, "Dune", resp.Ticket.MovieName)
	assert.Equal(t, []string{"C7"}, resp.Ticket.SeatNumbers)
	assert.Equal(t, 1, resp.Ticket.NumberOfTickets)
}

func TestExecute_InvalidSelection(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
		kind string
	}{
		{name: "no seats", req: Request{MovieName: "Dune", TheatreName: "PVR", SeatNumbers: " , "}, want: payload.ErrNoSeats, kind: payload.KindNoSeats},
		{name: "mismatch", req: Request{MovieName: "Dune", TheatreName: "PVR", NumberOfTickets: 3, SeatNumbers: "A1,A2"}, want: payload.ErrSeatCountMismatch, kind: payload.KindSeatMismatch},
		{
			name: "too many",
			req:  Request{MovieName: "Dune", TheatreName: "PVR", SeatNumbers: "A1,A2,A3,A4,A5,A6,A7,A8,A9,A10,A11"},
			want: payload.ErrTooManyTickets,
			kind: payload.KindTooManyTickets,
		},
		{name: "no theatre", req: Request{MovieName: "Dune", SeatNumbers: "A1"}, want: payload.ErrInvalidInput, kind: payload.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			uc, inv, m := newUseCase(client)

			_, err := uc.Execute(t.Context(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidBooking)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, []string{tt.kind}, m.kinds)
			assert.Nil(t, client.sent)
			assert.Zero(t, inv.calls)
		})
	}
}

func TestExecute_BackendErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "not found", err: &moviebooking.APIError{Kind: moviebooking.ErrNotFound, StatusCode: 404}, want: ErrMovieNotFound},
		{name: "conflict", err: &moviebooking.APIError{Kind: moviebooking.ErrConflict, StatusCode: 409}, want: ErrSeatsUnavailable},
		{name: "rejected", err: &moviebooking.APIError{Kind: moviebooking.ErrRejected, StatusCode: 400, Message: "Seats already booked"}, want: ErrRejected},
		{name: "unauthorized", err: &moviebooking.APIError{Kind: moviebooking.ErrUnauthorized, StatusCode: 401}, want: ErrUnauthorized},
		{name: "transport", err: moviebooking.ErrInternal, want: ErrBackendUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, inv, _ := newUseCase(&fakeClient{err: tt.err})

			_, err := uc.Execute(t.Context(), &Request{MovieName: "Dune", TheatreName: "PVR", SeatNumbers: "A1"})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, moviebooking.MessageOf(tt.err), moviebooking.MessageOf(err))
			assert.Zero(t, inv.calls)
		})
	}
}
