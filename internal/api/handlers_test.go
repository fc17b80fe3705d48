package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/persistence/memory"
)

func newTestMux(t *testing.T) (*http.ServeMux, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository(memory.DefaultSeed())
	handler := NewHandler(domain.NewService(repo))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux, repo
}

func TestListActivities(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var resp map[string]map[string]json.RawMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := resp["Basketball Team"]; !ok {
		t.Fatalf("expected Basketball Team in response")
	}

	for name, record := range resp {
		for _, field := range []string{"description", "schedule", "max_participants", "participants"} {
			if _, ok := record[field]; !ok {
				t.Fatalf("activity %q missing field %q", name, field)
			}
		}
		if len(record) != 4 {
			t.Fatalf("activity %q has %d fields, want 4", name, len(record))
		}
		var participants []string
		if err := json.Unmarshal(record["participants"], &participants); err != nil {
			t.Fatalf("activity %q participants not a list: %v", name, err)
		}
	}
}

func TestListActivitiesMethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/activities", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}

func TestSignupSuccess(t *testing.T) {
	mux, repo := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Basketball%20Team/signup?email=newstudent@mergington.edu", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp SignupResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "newstudent@mergington.edu") {
		t.Fatalf("message %q does not contain the email", resp.Message)
	}
	if !strings.Contains(resp.Message, "Basketball Team") {
		t.Fatalf("message %q does not contain the activity name", resp.Message)
	}

	activity, err := repo.Get(req.Context(), "Basketball Team")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := activity.Participants[len(activity.Participants)-1]; got != "newstudent@mergington.edu" {
		t.Fatalf("expected appended participant, got %q", got)
	}
}

func TestSignupDuplicate(t *testing.T) {
	mux, repo := newTestMux(t)

	target := "/activities/Drama%20Club/signup?email=duplicate@mergington.edu"
	first := httptest.NewRecorder()
	mux.ServeHTTP(first, httptest.NewRequest(http.MethodPost, target, nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first signup: expected 200 got %d", first.Code)
	}

	before, _ := repo.Get(context.Background(), "Drama Club")

	second := httptest.NewRecorder()
	mux.ServeHTTP(second, httptest.NewRequest(http.MethodPost, target, nil))
	if second.Code != http.StatusBadRequest {
		t.Fatalf("second signup: expected 400 got %d", second.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(second.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(body["detail"], "already signed up") {
		t.Fatalf("detail %q does not convey already signed up", body["detail"])
	}

	after, _ := repo.Get(context.Background(), "Drama Club")
	if len(after.Participants) != len(before.Participants) {
		t.Fatalf("duplicate signup changed the roster")
	}
}

func TestSignupUnknownActivity(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Nonexistent%20Club/signup?email=student@mergington.edu", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(body["detail"], "Activity not found") {
		t.Fatalf("detail %q does not contain Activity not found", body["detail"])
	}
}

func TestSignupMissingEmail(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestSignupMethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/activities/Chess%20Club/signup", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}

func TestRootRedirect(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != StaticIndexPath {
		t.Fatalf("expected redirect to %q got %q", StaticIndexPath, loc)
	}
}

func TestUnknownPath(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}
