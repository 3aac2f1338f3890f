package horoscope

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"resty.dev/v3"
)

// Response is the raw outcome of one fetch: any HTTP status plus the unparsed body.
type Response struct {
	StatusCode int
	Body       string
}

// OK reports whether the response can be handed to Parse.
func (r *Response) OK() bool {
	return r.StatusCode == 200
}

// Client fetches horoscopes over HTTP. It never retries and sets no timeout of its own.
type Client struct {
	baseURL string
	client  *resty.Client
	logger  *zap.Logger
}

// NewClient creates a Client for the API rooted at baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetHeader("Accept", "application/json")

	return &Client{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// Fetch issues a single GET for req. Non-200 statuses are not errors; transport failures are.
func (c *Client) Fetch(ctx context.Context, req Request) (*Response, error) {
	endpoint := req.URL(c.baseURL)

	resp, err := c.client.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, newTimeoutError(err)
		}
		return nil, newNetworkError(err)
	}

	c.logger.Debug("horoscope fetched",
		zap.String("url", endpoint),
		zap.Int("status_code", resp.StatusCode()))

	if resp.StatusCode() != 200 {
		c.logger.Debug("horoscope API rejected request", zap.Error(ClassifyStatus(resp.StatusCode())))
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
	}, nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.client.Close()
}
