package moviebooking

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MovieBooking/internal/mapper"
)

// Login POST /login. Возвращает data ответа: токен и данные пользователя.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (mapper.Record, error) {
	env, err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/login",
		path:   "/login",
		body:   req,
	})
	if err != nil {
		return nil, err
	}
	return mapper.ParseRecord(env.Data), nil
}

// Register POST /register
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	return c.message(ctx, call{
		method: http.MethodPost,
		route:  "/register",
		path:   "/register",
		body:   req,
	})
}

// ForgotPassword GET /{username}/forgot, устаревший вариант сброса пароля
func (c *Client) ForgotPassword(ctx context.Context, username string) (string, error) {
	return c.message(ctx, call{
		method: http.MethodGet,
		route:  "/{username}/forgot",
		path:   "/" + segment(username) + "/forgot",
	})
}

// RequestPasswordReset POST /forgot-password
func (c *Client) RequestPasswordReset(ctx context.Context, req *ForgotPasswordRequest) (string, error) {
	return c.message(ctx, call{
		method: http.MethodPost,
		route:  "/forgot-password",
		path:   "/forgot-password",
		body:   req,
	})
}

// ResetPassword POST /reset-password
func (c *Client) ResetPassword(ctx context.Context, req *ResetPasswordRequest) (string, error) {
	return c.message(ctx, call{
		method: http.MethodPost,
		route:  "/reset-password",
		path:   "/reset-password",
		body:   req,
	})
}

func (c *Client) message(ctx context.Context, cl call) (string, error) {
	env, err := c.do(ctx, cl)
	if err != nil {
		return "", err
	}
	return messageOrData(env), nil
}
