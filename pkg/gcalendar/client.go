package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents lists events in [TimeMin, TimeMax], single-instance expanded
// and ordered by start time. Cancelled events are included so callers can
// clean up anything attached to them.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]*Event, error) {
	call := c.service.Events.List(req.CalendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(true).
		OrderBy("startTime")
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	events, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	result := make([]*Event, 0, len(events.Items))
	for _, item := range events.Items {
		result = append(result, fromGoogleEvent(item))
	}
	return result, nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*Event, error) {
	item, err := c.service.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return fromGoogleEvent(item), nil
}

// InsertEvent creates a new event from the payload.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, payload EventPayload) (*Event, error) {
	created, err := c.service.Events.Insert(calendarID, toGoogleEvent(payload)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	return fromGoogleEvent(created), nil
}

// PatchEvent applies the payload to an existing event by id.
func (c *Client) PatchEvent(ctx context.Context, calendarID, eventID string, payload EventPayload) (*Event, error) {
	patched, err := c.service.Events.Patch(calendarID, eventID, toGoogleEvent(payload)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch event: %w", err)
	}
	return fromGoogleEvent(patched), nil
}

// DeleteEvent deletes an event by id.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func toGoogleEvent(payload EventPayload) *calendar.Event {
	ev := &calendar.Event{
		Summary:     payload.Summary,
		Description: payload.Description,
		Start: &calendar.EventDateTime{
			// RFC3339 embeds the offset, so no separate TimeZone field is needed
			DateTime: payload.Start.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: payload.End.Format(time.RFC3339),
		},
	}
	if len(payload.Private) > 0 {
		ev.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: payload.Private,
		}
	}
	return ev
}

func fromGoogleEvent(item *calendar.Event) *Event {
	ev := &Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Status:      item.Status,
		HTMLLink:    item.HtmlLink,
	}
	if item.Start != nil && item.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
			ev.Start = &t
		}
	}
	if item.End != nil && item.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
			ev.End = &t
		}
	}
	if item.ExtendedProperties != nil {
		ev.Private = item.ExtendedProperties.Private
	}
	return ev
}
