package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/option"

	"todo-manager/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentialsJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("broken credentials", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), nil); err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), nil); err == nil {
			t.Errorf("expected error for missing token")
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), []byte(`{"broken": true`)); err == nil {
			t.Errorf("expected token parse error")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		tok := []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`)
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tok); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"evt-1","summary":"Buy milk #shopping","htmlLink":"https://calendar.test/evt-1"}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	client, err := gcalendar.NewClientFromHTTP(ctx, ts.Client(), option.WithEndpoint(ts.URL))
	if err != nil {
		t.Fatalf("NewClientFromHTTP: %v", err)
	}

	start := time.Date(2025, 7, 8, 14, 30, 0, 0, time.UTC)
	evt, err := client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:   "Buy milk #shopping",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if !strings.Contains(gotPath, "/calendars/primary/events") {
		t.Errorf("expected default calendar in path, got %s", gotPath)
	}
	if gotBody["summary"] != "Buy milk #shopping" {
		t.Errorf("unexpected summary sent: %v", gotBody["summary"])
	}
	if evt.ID != "evt-1" || evt.HtmlLink != "https://calendar.test/evt-1" {
		t.Errorf("unexpected event: %+v", evt)
	}
}

func TestCreateEventServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	client, _ := gcalendar.NewClientFromHTTP(ctx, ts.Client(), option.WithEndpoint(ts.URL))
	start := time.Now()
	if _, err := client.CreateEvent(ctx, gcalendar.CreateEventRequest{Summary: "x", StartTime: start, EndTime: start}); err == nil {
		t.Errorf("expected error on 403")
	}
}
