package moviebooking

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// BookTicket POST /{movieName}/add
func (c *Client) BookTicket(ctx context.Context, movieName string, req *payload.BookingRequest) (mapper.Record, error) {
	env, err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/{movieName}/add",
		path:   "/" + segment(movieName) + "/add",
		body:   req,
	})
	if err != nil {
		return nil, err
	}
	return mapper.ParseRecord(env.Data), nil
}

// CurrentUserTickets GET /tickets/user
func (c *Client) CurrentUserTickets(ctx context.Context) ([]mapper.Record, error) {
	return c.tickets(ctx, "/tickets/user", "/tickets/user")
}

// UserTickets GET /tickets/{username}
func (c *Client) UserTickets(ctx context.Context, username string) ([]mapper.Record, error) {
	return c.tickets(ctx, "/tickets/{username}", "/tickets/"+segment(username))
}

// AllTickets GET /tickets/all, только для администратора
func (c *Client) AllTickets(ctx context.Context) ([]mapper.Record, error) {
	return c.tickets(ctx, "/tickets/all", "/tickets/all")
}

// CancelTicket DELETE /tickets/cancel/{bookingReference}
func (c *Client) CancelTicket(ctx context.Context, reference string) error {
	_, err := c.do(ctx, call{
		method: http.MethodDelete,
		route:  "/tickets/cancel/{bookingReference}",
		path:   "/tickets/cancel/" + segment(reference),
	})
	return err
}

func (c *Client) tickets(ctx context.Context, route, path string) ([]mapper.Record, error) {
	env, err := c.do(ctx, call{method: http.MethodGet, route: route, path: path})
	if err != nil {
		return nil, err
	}
	return mapper.ParseRecords(env.Data), nil
}
