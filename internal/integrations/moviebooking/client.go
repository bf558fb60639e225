package moviebooking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-MovieBooking/pkg/metrics"
)

// maxErrorBody ограничивает чтение тела ответа с ошибкой
const maxErrorBody = 64 << 10

// Client клиент для работы с бэкендом бронирования фильмов.
// Повторов нет: ошибка возвращается вызывающему сразу.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	metrics    Metrics
	log        Logger
}

// Option настраивает клиент
type Option func(*Client)

// WithHTTPClient заменяет http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenSource добавляет Authorization: Bearer к запросам
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithMetrics включает метрики вызовов
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call описывает один вызов бэкенда. route - шаблон пути для метрик и логов.
type call struct {
	method string
	route  string
	path   string
	query  url.Values
	body   any
}

func (c *Client) do(ctx context.Context, cl call) (*Envelope, error) {
	start := time.Now()
	endpoint := cl.method + " " + cl.route

	env, err := c.execute(ctx, cl)

	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case IsTransport(err):
		outcome = metrics.OutcomeError
	default:
		outcome = metrics.OutcomeRejected
	}
	if c.metrics != nil {
		c.metrics.ObserveBackend(endpoint, outcome, time.Since(start))
	}

	if err != nil {
		if outcome == metrics.OutcomeError {
			c.log.Error("%s: backend call failed: %v", endpoint, err)
		} else {
			c.log.Warn("%s: backend rejected request: %v", endpoint, err)
		}
		return nil, err
	}
	return env, nil
}

func (c *Client) execute(ctx context.Context, cl call) (*Envelope, error) {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNoContent:
		return &Envelope{Success: true}, nil
	case http.StatusBadRequest:
		return nil, apiError(ErrRejected, resp)
	case http.StatusUnauthorized:
		return nil, apiError(ErrUnauthorized, resp)
	case http.StatusForbidden:
		return nil, apiError(ErrForbidden, resp)
	case http.StatusNotFound:
		return nil, apiError(ErrNotFound, resp)
	case http.StatusConflict:
		return nil, apiError(ErrConflict, resp)
	default:
		return nil, apiError(ErrInvalidResponse, resp)
	}

	// Парсим конверт
	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			return &Envelope{Success: true}, nil
		}
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !env.Success {
		return nil, &APIError{Kind: ErrRejected, StatusCode: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

// apiError читает сообщение из конверта ошибки, если оно есть
func apiError(kind error, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := strings.TrimSpace(string(data))
	var env Envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		msg = env.Message
	}

	return &APIError{Kind: kind, StatusCode: resp.StatusCode, Message: msg}
}

// segment экранирует значение для вставки в путь
func segment(s string) string {
	return url.PathEscape(s)
}

// messageOrData возвращает текст ответа: строковое data либо message
func messageOrData(env *Envelope) string {
	var s string
	if len(env.Data) > 0 && json.Unmarshal(env.Data, &s) == nil && s != "" {
		return s
	}
	return env.Message
}
