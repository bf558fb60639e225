package moviebooking

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
	"github.com/m04kA/SMC-MovieBooking/internal/payload"
)

// ListMovies GET /all
func (c *Client) ListMovies(ctx context.Context) ([]mapper.Record, error) {
	env, err := c.do(ctx, call{method: http.MethodGet, route: "/all", path: "/all"})
	if err != nil {
		return nil, err
	}
	return mapper.ParseRecords(env.Data), nil
}

// SearchMovies GET /movies/search/{movieName}
func (c *Client) SearchMovies(ctx context.Context, movieName string) ([]mapper.Record, error) {
	env, err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/movies/search/{movieName}",
		path:   "/movies/search/" + segment(movieName),
	})
	if err != nil {
		return nil, err
	}
	return mapper.ParseRecords(env.Data), nil
}

// AddMovie POST /admin/add
func (c *Client) AddMovie(ctx context.Context, req *payload.MovieRequest) (mapper.Record, error) {
	env, err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/admin/add",
		path:   "/admin/add",
		body:   req,
	})
	if err != nil {
		return nil, err
	}
	return mapper.ParseRecord(env.Data), nil
}

// DeleteMovie DELETE /{movieName}/delete/{theatreName}
func (c *Client) DeleteMovie(ctx context.Context, movieName, theatreName string) error {
	_, err := c.do(ctx, call{
		method: http.MethodDelete,
		route:  "/{movieName}/delete/{theatreName}",
		path:   "/" + segment(movieName) + "/delete/" + segment(theatreName),
	})
	return err
}

// UpdateTicketStatus PUT /{movieName}/update/{status}?theatreName=
func (c *Client) UpdateTicketStatus(ctx context.Context, movieName, theatreName, status string) (mapper.Record, error) {
	env, err := c.do(ctx, call{
		method: http.MethodPut,
		route:  "/{movieName}/update/{status}",
		path:   "/" + segment(movieName) + "/update/" + segment(status),
		query:  url.Values{"theatreName": []string{theatreName}},
	})
	if err != nil {
		return nil, err
	}
	return mapper.ParseRecord(env.Data), nil
}
