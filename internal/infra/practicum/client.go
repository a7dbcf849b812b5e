package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Client fetches homework statuses from the Practicum API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
	}
}

// Fetch requests every homework updated since the given Unix timestamp.
// It returns the decoded JSON body, or nil when the body is empty.
func (c *Client) Fetch(ctx context.Context, timestamp int64) (any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, c.endpointError(err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(timestamp, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, c.endpointError(err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("from_date", timestamp).Debug("Запрос к API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.endpointError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &HTTPStatusError{StatusCode: resp.StatusCode}
		c.logger.WithField("status_code", resp.StatusCode).Error(statusErr)
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.endpointError(fmt.Errorf("read response: %w", err))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, c.endpointError(fmt.Errorf("unmarshal response: %w", err))
	}
	return payload, nil
}

func (c *Client) endpointError(err error) error {
	endpointErr := &EndpointError{Endpoint: c.endpoint, Err: err}
	c.logger.Error(endpointErr)
	return endpointErr
}
