package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jiyuan880304-cmd/fitfocus/models"
	"github.com/jiyuan880304-cmd/fitfocus/services"

	"github.com/gin-gonic/gin"
)

// memStore backs the session manager in handler tests.
type memStore struct {
	mu   sync.Mutex
	data map[string]models.AppData
}

func newMemStore() *memStore {
	return &memStore{data: map[string]models.AppData{}}
}

func (s *memStore) Load(userID string) (*models.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data[userID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *memStore) Save(userID string, data models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = data
	return nil
}

func (s *memStore) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}

func postJSON(t *testing.T, handler gin.HandlerFunc, userID, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("userID", userID)
	handler(c)
	return w
}

func TestCompleteOnboardingSecondAttemptConflicts(t *testing.T) {
	m := services.NewSessionManager(newMemStore(), nil)
	pc := NewProfileController(m)

	body := `{"name":"Mia","gender":"female","height":165,"weight":70,"targetWeight":60,"petType":"cat","petName":"Mochi"}`

	if w := postJSON(t, pc.CompleteOnboarding, "u1", "/onboarding", body); w.Code != http.StatusCreated {
		t.Fatalf("first onboarding: code=%d body=%s", w.Code, w.Body)
	}

	// Earn something so a silent profile reset would be visible.
	_, err := m.Apply("u1", func(d models.AppData) models.AppData {
		p := *d.Profile
		p.Tokens += 40
		d.Profile = &p
		return d
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if w := postJSON(t, pc.CompleteOnboarding, "u1", "/onboarding", body); w.Code != http.StatusConflict {
		t.Fatalf("second onboarding: code=%d body=%s", w.Code, w.Body)
	}

	data, err := m.Data("u1")
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if data.Profile.Tokens != 140 {
		t.Errorf("profile was reset by the second attempt: tokens=%d, want 140", data.Profile.Tokens)
	}
}
