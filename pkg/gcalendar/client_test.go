package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"drive-time-planner/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestClientCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Broken Credentials JSON", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed App Config With Token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed App Config Without Token", func(t *testing.T) {
		os.Remove("token.json")
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil || !strings.Contains(err.Error(), "token.json") {
			t.Errorf("expected missing token.json error, got %v", err)
		}
	})
}

func TestClientEvents(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/calendar/v3/calendars/primary/events", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("singleEvents") != "true" {
				t.Errorf("expected singleEvents=true, got %q", r.URL.Query().Get("singleEvents"))
			}
			if r.URL.Query().Get("showDeleted") != "true" {
				t.Errorf("expected showDeleted=true, got %q", r.URL.Query().Get("showDeleted"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{
						"id":      "ev1",
						"summary": "Standup",
						"status":  "confirmed",
						"start":   map[string]any{"dateTime": "2025-06-01T09:00:00-07:00"},
						"end":     map[string]any{"dateTime": "2025-06-01T09:30:00-07:00"},
						"extendedProperties": map[string]any{
							"private": map[string]string{"driveForEventId": "src1"},
						},
					},
					{
						"id":      "allday",
						"summary": "Holiday",
						"status":  "confirmed",
						"start":   map[string]any{"date": "2025-06-02"},
						"end":     map[string]any{"date": "2025-06-03"},
					},
					{
						"id":     "gone",
						"status": "cancelled",
					},
				},
			})
		case http.MethodPost:
			var body struct {
				Summary            string `json:"summary"`
				ExtendedProperties struct {
					Private map[string]string `json:"private"`
				} `json:"extendedProperties"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if body.ExtendedProperties.Private["driveForEventId"] != "src1" {
				t.Errorf("insert lost private properties: %+v", body.ExtendedProperties.Private)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id":      "created1",
				"summary": body.Summary,
				"start":   map[string]any{"dateTime": "2025-06-01T07:50:00-07:00"},
				"end":     map[string]any{"dateTime": "2025-06-01T08:50:00-07:00"},
			})
		}
	})
	mux.HandleFunc("/calendar/v3/calendars/primary/events/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.NotFound(w, r)
	})

	httpClient := &http.Client{
		Transport: &rewriteTransport{
			Transport: http.DefaultTransport,
			Host:      strings.TrimPrefix(server.URL, "http://"),
		},
	}
	client, err := gcalendar.NewClientFromHTTP(ctx, httpClient)
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}

	t.Run("List Parses Timed And All Day Events", func(t *testing.T) {
		events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(48 * time.Hour),
			MaxResults: 50,
		})
		if err != nil {
			t.Fatalf("unexpected list error: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events))
		}
		if events[0].Start == nil || events[0].Private["driveForEventId"] != "src1" {
			t.Errorf("timed event parsed wrong: %+v", events[0])
		}
		if events[1].Start != nil {
			t.Errorf("all-day event should have nil start, got %v", events[1].Start)
		}
		if events[2].Status != "cancelled" {
			t.Errorf("cancelled event must survive listing, got status %q", events[2].Status)
		}
	})

	t.Run("Insert Carries Private Properties", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 7, 50, 0, 0, time.UTC)
		created, err := client.InsertEvent(ctx, "primary", gcalendar.EventPayload{
			Summary: "Drive to 1 Infinite Loop",
			Start:   start,
			End:     start.Add(time.Hour),
			Private: map[string]string{"driveForEventId": "src1"},
		})
		if err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
		if created.ID != "created1" {
			t.Errorf("expected created id, got %q", created.ID)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := client.DeleteEvent(ctx, "primary", "ev1"); err != nil {
			t.Errorf("unexpected delete error: %v", err)
		}
	})
}
