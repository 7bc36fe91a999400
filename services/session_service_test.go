package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jiyuan880304-cmd/fitfocus/models"
)

// stubStore is an in-memory CloudStore so session behavior can be
// tested without a database.
type stubStore struct {
	mu      sync.Mutex
	data    map[string]models.AppData
	failing bool
	saves   int
}

func newStubStore() *stubStore {
	return &stubStore{data: map[string]models.AppData{}}
}

func (s *stubStore) Load(userID string) (*models.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data[userID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *stubStore) Save(userID string, data models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.failing {
		return errors.New("cloud unavailable")
	}
	s.data[userID] = data
	return nil
}

func (s *stubStore) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}

func onboarded() models.AppData {
	d := models.NewAppData()
	d.Profile = &models.UserProfile{
		Name: "Mia", Gender: "female", Height: 165, Weight: 70,
		Tokens: 100, Affection: 10, Inventory: []string{},
	}
	return d
}

func addWater(amount int) func(models.AppData) models.AppData {
	return func(d models.AppData) models.AppData {
		today := TodayKey()
		entry := GetLogOrDefault(d.Logs, today, d.Profile.Weight)
		entry.WaterIntake += amount
		d.Logs = PutLog(d.Logs, today, entry)
		return d
	}
}

func TestApplyFirstWriteOfDayEarnsNothing(t *testing.T) {
	store := newStubStore()
	store.data["u1"] = onboarded()
	m := NewSessionManager(store, nil)

	// No log exists for today, so there is no baseline to diff against.
	next, err := m.Apply("u1", addWater(500))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next.Profile.Tokens != 100 || next.Profile.Affection != 10 {
		t.Errorf("first write earned a bonus: tokens=%d affection=%d",
			next.Profile.Tokens, next.Profile.Affection)
	}
	if next.Logs[TodayKey()].WaterIntake != 500 {
		t.Errorf("water not recorded: %+v", next.Logs[TodayKey()])
	}
}

func TestApplyAccruesOnSecondWrite(t *testing.T) {
	store := newStubStore()
	store.data["u1"] = onboarded()
	m := NewSessionManager(store, nil)

	if _, err := m.Apply("u1", addWater(240)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// 240 → 490 crosses the 250ml boundary once.
	next, err := m.Apply("u1", addWater(250))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next.Profile.Tokens != 120 {
		t.Errorf("tokens = %d, want 120", next.Profile.Tokens)
	}
	if next.Profile.Affection != 15 {
		t.Errorf("affection = %d, want 15", next.Profile.Affection)
	}
}

func TestApplySaveFailureIsSilent(t *testing.T) {
	store := newStubStore()
	store.data["u1"] = onboarded()
	store.failing = true
	m := NewSessionManager(store, nil)

	next, err := m.Apply("u1", addWater(250))
	if err != nil {
		t.Fatalf("Apply surfaced a persistence failure: %v", err)
	}
	if next.Logs[TodayKey()].WaterIntake != 250 {
		t.Errorf("in-memory state lost on save failure: %+v", next.Logs[TodayKey()])
	}

	// The optimistic in-memory state keeps serving reads.
	data, err := m.Data("u1")
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if data.Logs[TodayKey()].WaterIntake != 250 {
		t.Errorf("read lost optimistic update: %+v", data.Logs[TodayKey()])
	}
}

func TestApplyWithoutProfileNeverAccrues(t *testing.T) {
	store := newStubStore()
	m := NewSessionManager(store, nil)

	next, err := m.Apply("u1", func(d models.AppData) models.AppData {
		d.Logs = PutLog(d.Logs, TodayKey(), models.DailyLog{Date: TodayKey(), WaterIntake: 1000})
		return d
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next.Profile != nil {
		t.Errorf("profile appeared out of nowhere: %+v", next.Profile)
	}
}

// laggyStore makes the first save slow so that, without serialized
// persistence, an older snapshot could land in the store after a
// newer one.
type laggyStore struct {
	*stubStore
	callMu sync.Mutex
	calls  int
	saved  chan int // today's water intake, per completed save
}

func (s *laggyStore) Save(userID string, data models.AppData) error {
	s.callMu.Lock()
	s.calls++
	first := s.calls == 1
	s.callMu.Unlock()
	if first {
		time.Sleep(30 * time.Millisecond)
	}
	err := s.stubStore.Save(userID, data)
	s.saved <- data.Logs[TodayKey()].WaterIntake
	return err
}

func TestStaleSnapshotNeverOutlivesNewer(t *testing.T) {
	inner := newStubStore()
	inner.data["u1"] = onboarded()
	store := &laggyStore{stubStore: inner, saved: make(chan int, 8)}
	m := NewSessionManager(store, nil)

	if _, err := m.Apply("u1", addWater(250)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := m.Apply("u1", addWater(250)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// The newest snapshot (water=500) must become durable.
	deadline := time.After(2 * time.Second)
	last := -1
	for last != 500 {
		select {
		case last = <-store.saved:
		case <-deadline:
			t.Fatalf("newest snapshot never persisted, last durable water=%d", last)
		}
	}

	// No older snapshot may be written after it.
	select {
	case v := <-store.saved:
		if v < 500 {
			t.Fatalf("stale snapshot persisted after newer one: water=%d", v)
		}
	case <-time.After(100 * time.Millisecond):
	}

	durable, err := inner.Load("u1")
	if err != nil || durable == nil {
		t.Fatalf("Load: %v", err)
	}
	if got := durable.Logs[TodayKey()].WaterIntake; got != 500 {
		t.Errorf("durable water = %d, want 500", got)
	}
}

func TestEvictDropsSessionAndReloads(t *testing.T) {
	store := newStubStore()
	store.data["u1"] = onboarded()
	m := NewSessionManager(store, nil)

	if _, err := m.Apply("u1", addWater(250)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	m.Evict("u1")

	// A fresh session starts from whatever the store last accepted.
	data, err := m.Data("u1")
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if data.Profile == nil {
		t.Fatal("profile missing after reload")
	}
}

func TestMealAppendAppliesFlatBonus(t *testing.T) {
	store := newStubStore()
	store.data["u1"] = onboarded()
	m := NewSessionManager(store, nil)

	next, err := m.Apply("u1", func(d models.AppData) models.AppData {
		today := TodayKey()
		entry := GetLogOrDefault(d.Logs, today, d.Profile.Weight)
		entry.Meals = append(entry.Meals, models.FoodItem{ID: "1", Name: "Beef noodles", Calories: 550})
		d.Logs = PutLog(d.Logs, today, entry)
		rewarded := MealBonus(*d.Profile)
		d.Profile = &rewarded
		return d
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next.Profile.Tokens != 100+MealBonusTokens {
		t.Errorf("tokens = %d, want %d", next.Profile.Tokens, 100+MealBonusTokens)
	}
	if next.Profile.Affection != 10+MealBonusAffection {
		t.Errorf("affection = %d, want %d", next.Profile.Affection, 10+MealBonusAffection)
	}
}
