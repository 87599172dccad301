package seatapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"seatsync/internal/domain/entity"
	appErrors "seatsync/internal/pkg/errors"
	"seatsync/internal/pkg/logger"
)

const requestTimeout = 10 * time.Second

// Client talks to the remote seat service over HTTP. All errors it returns
// are classified: ErrSeatAPI for transport/decode failures, ErrRequireLogin
// for an expired session, *FailedError for server-reported business errors.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     logger.Logger

	mu    sync.Mutex
	token string
}

// NewClient creates a seat service client for baseURL.
func NewClient(baseURL string, log logger.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid seat service base URL %q: %w", baseURL, err)
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}, nil
}

// SetToken installs a previously established session token, used when an
// account is rehydrated from storage across restarts.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Login establishes a session and returns the session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	query := url.Values{}
	query.Set("username", username)
	query.Set("password", password)
	data, err := c.get(ctx, "auth?"+query.Encode(), "")
	if err != nil {
		return "", err
	}
	var login loginData
	if err := json.Unmarshal(data, &login); err != nil {
		return "", fmt.Errorf("%w: decoding login response: %v", appErrors.ErrSeatAPI, err)
	}
	c.SetToken(login.Token)
	return login.Token, nil
}

// FetchHistory fetches one page of the user's reservation history, newest
// first in server order.
func (c *Client) FetchHistory(ctx context.Context, page int) ([]*entity.SeatReservation, error) {
	if page < 1 {
		return nil, appErrors.ErrInvalidPage
	}
	data, err := c.get(ctx, fmt.Sprintf("history/%d", page), c.currentToken())
	if err != nil {
		return nil, err
	}
	var history historyData
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("%w: decoding history response: %v", appErrors.ErrSeatAPI, err)
	}
	reservations := make([]*entity.SeatReservation, 0, len(history.Reservations))
	for _, row := range history.Reservations {
		reservation, err := row.toEntity(time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing reservation %d: %v", appErrors.ErrSeatAPI, row.ID, err)
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

// Cancel requests cancellation of a reservation by ID.
func (c *Client) Cancel(ctx context.Context, reservationID int) error {
	_, err := c.get(ctx, fmt.Sprintf("cancel/%d", reservationID), c.currentToken())
	return err
}

// get issues one request and unwraps the response envelope, classifying
// failures per the error taxonomy.
func (c *Client) get(ctx context.Context, path, token string) (json.RawMessage, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: building request URL: %v", appErrors.ErrSeatAPI, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.ResolveReference(ref).String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", appErrors.ErrSeatAPI, err)
	}
	if token != "" {
		req.Header.Set("token", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrSeatAPI, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", appErrors.ErrSeatAPI, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decoding response envelope: %v", appErrors.ErrSeatAPI, err)
	}
	if env.Status != statusSuccess {
		if env.Code == codeRequireLogin {
			return nil, appErrors.ErrRequireLogin
		}
		c.log.Debug(fmt.Sprintf("Seat service reported failure code=%s message=%s", env.Code, env.Message))
		return nil, &appErrors.FailedError{Code: env.Code, Message: env.Message}
	}
	return env.Data, nil
}
