package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yagnikpatel23cs-dotcom/ai-gym-trainer/internal/models"
)

type stubProgressStore struct {
	entries    []models.ProgressEntry
	listErr    error
	createErr  error
	lastUserID int64
	lastWeight float64
	lastGoal   string
}

func (s *stubProgressStore) Create(_ context.Context, userID int64, weight float64, goal string) (*models.ProgressEntry, error) {
	s.lastUserID = userID
	s.lastWeight = weight
	s.lastGoal = goal
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.ProgressEntry{ID: 1, UserID: userID, Weight: weight, Goal: goal, RecordedAt: time.Now().UTC()}, nil
}

func (s *stubProgressStore) ListByUserID(_ context.Context, _ int64) ([]models.ProgressEntry, error) {
	return s.entries, s.listErr
}

func newProgressApp(store *stubProgressStore) *fiber.App {
	handler := NewProgressHandler(store)

	app := fiber.New()
	app.Post("/progress/add", handler.AddProgress)
	app.Get("/progress/:user_id", handler.ListProgress)
	return app
}

func TestAddProgressForwardsEntry(t *testing.T) {
	store := &stubProgressStore{}
	app := newProgressApp(store)

	body := `{"user_id":42,"weight":81.5,"goal":"Weight Loss"}`
	req := httptest.NewRequest(http.MethodPost, "/progress/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastUserID != 42 || store.lastWeight != 81.5 || store.lastGoal != "Weight Loss" {
		t.Fatalf("unexpected stored entry: %d %.1f %q", store.lastUserID, store.lastWeight, store.lastGoal)
	}
}

func TestAddProgressRejectsNonPositiveWeight(t *testing.T) {
	store := &stubProgressStore{}
	app := newProgressApp(store)

	body := `{"user_id":42,"weight":0,"goal":"Weight Loss"}`
	req := httptest.NewRequest(http.MethodPost, "/progress/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListProgressPreservesStoreOrdering(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &stubProgressStore{
		entries: []models.ProgressEntry{
			{ID: 3, UserID: 42, Weight: 83, Goal: "Weight Loss", RecordedAt: base},
			{ID: 1, UserID: 42, Weight: 82, Goal: "Weight Loss", RecordedAt: base.Add(24 * time.Hour)},
			{ID: 2, UserID: 42, Weight: 81, Goal: "Weight Loss", RecordedAt: base.Add(48 * time.Hour)},
		},
	}
	app := newProgressApp(store)

	req := httptest.NewRequest(http.MethodGet, "/progress/42", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var entries []models.ProgressEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// The store returns entries sorted by recorded_at ascending regardless of
	// insertion order; the handler must not reorder them.
	if entries[0].ID != 3 || entries[1].ID != 1 || entries[2].ID != 2 {
		t.Fatalf("unexpected ordering: %d %d %d", entries[0].ID, entries[1].ID, entries[2].ID)
	}
	if !entries[0].RecordedAt.Before(entries[1].RecordedAt) || !entries[1].RecordedAt.Before(entries[2].RecordedAt) {
		t.Fatalf("expected ascending timestamps, got %v", entries)
	}
}

func TestListProgressReturnsEmptyListForNewUser(t *testing.T) {
	store := &stubProgressStore{entries: []models.ProgressEntry{}}
	app := newProgressApp(store)

	req := httptest.NewRequest(http.MethodGet, "/progress/42", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var entries []models.ProgressEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list, got %v", entries)
	}
}
