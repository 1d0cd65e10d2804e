package distancematrix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Google Distance Matrix JSON endpoint.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

	// defaultRequestsPerSecond bounds outbound calls; two calls per cache
	// miss means a full scan can burst, so allow some headroom.
	defaultRequestsPerSecond = 10
)

// ErrUnavailable means no duration could be determined for the pair. Every
// failure mode (transport, malformed body, non-OK statuses, missing
// durations) is reported through it: callers degrade by skipping, never by
// crashing.
var ErrUnavailable = errors.New("driving duration unavailable")

// Client queries the Distance Matrix API for driving durations.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a Distance Matrix client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("distance matrix API key is required")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
	}, nil
}

// WithBaseURL overrides the API endpoint (used by tests).
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// MaskedKey returns the API key reduced to a short prefix plus a fixed
// placeholder, safe for diagnostics. The full key must never be logged.
func (c *Client) MaskedKey() string {
	if len(c.apiKey) <= 4 {
		return "****"
	}
	return c.apiKey[:4] + "****"
}

// redactKey strips the API key from an error message. Transport errors from
// http.Client embed the full request URL, which carries the key as a query
// parameter, so the message cannot be passed through as-is.
func (c *Client) redactKey(err error) string {
	msg := strings.ReplaceAll(err.Error(), c.apiKey, c.MaskedKey())
	if escaped := url.QueryEscape(c.apiKey); escaped != c.apiKey {
		msg = strings.ReplaceAll(msg, escaped, c.MaskedKey())
	}
	return msg
}

// Estimate returns the driving duration from origin to destination leaving
// at departure. With useTraffic the call requests a traffic-adjusted
// estimate for that departure time and falls back to the base duration if
// the API omits it. All failures surface as ErrUnavailable.
func (c *Client) Estimate(ctx context.Context, origin, destination string, departure time.Time, useTraffic bool) (time.Duration, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limiter: %v", ErrUnavailable, err)
	}

	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination)
	params.Set("mode", "driving")
	params.Set("key", c.apiKey)
	if useTraffic {
		params.Set("departure_time", strconv.FormatInt(departure.Unix(), 10))
		params.Set("traffic_model", "best_guess")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: transport: %s", ErrUnavailable, c.redactKey(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: http status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if parsed.Status != "OK" {
		return 0, fmt.Errorf("%w: api status %q", ErrUnavailable, parsed.Status)
	}
	if len(parsed.Rows) == 0 || len(parsed.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("%w: empty result matrix", ErrUnavailable)
	}

	element := parsed.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("%w: element status %q", ErrUnavailable, element.Status)
	}

	if useTraffic && element.DurationInTraffic != nil {
		return time.Duration(element.DurationInTraffic.Value) * time.Second, nil
	}
	if element.Duration != nil {
		return time.Duration(element.Duration.Value) * time.Second, nil
	}
	return 0, fmt.Errorf("%w: no duration in element", ErrUnavailable)
}
