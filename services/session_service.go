package services

import (
	"sync"
	"time"

	"github.com/jiyuan880304-cmd/fitfocus/models"

	log "github.com/sirupsen/logrus"
)

// TodayKey returns the calendar-date key for the current moment,
// matching the key format used throughout AppData.Logs.
func TodayKey() string {
	return time.Now().UTC().Format("2006-01-02")
}

// session is one user's live AppData plus the lock that serializes
// state transitions. Each user action runs to completion under the
// lock before the next one is accepted.
type session struct {
	mu   sync.Mutex
	data models.AppData

	// Saves are serialized through one worker per session; pending
	// always holds the newest snapshot, older ones are skipped.
	saveMu  sync.Mutex
	pending *models.AppData
	saving  bool
}

// SessionManager owns the in-memory AppData of every authenticated
// user and is the only place the reward accrual runs. Every mutation
// goes through Apply so the diff-then-fold sequence cannot be skipped
// by a call site.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*session

	store CloudStore
	hub   *SyncHub
}

func NewSessionManager(store CloudStore, hub *SyncHub) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*session),
		store:    store,
		hub:      hub,
	}
}

// get loads the user's session, pulling the blob from the cloud store
// on first access. An absent record starts from the pristine aggregate.
func (m *SessionManager) get(userID string) (*session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	// Load outside the manager lock; a concurrent first access for the
	// same user just wins the race below.
	data, err := m.store.Load(userID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		fresh := models.NewAppData()
		data = &fresh
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}
	s := &session{data: *data}
	m.sessions[userID] = s
	return s, nil
}

// Data returns a snapshot of the user's current AppData.
func (m *SessionManager) Data(userID string) (models.AppData, error) {
	s, err := m.get(userID)
	if err != nil {
		return models.AppData{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, nil
}

// Apply runs one state transition: transform produces the next
// aggregate, the reward engine diffs today's log between the two
// snapshots and folds any bonus into the profile, and the combined
// result becomes the new session state. Persistence happens as a
// best-effort background save; a failed save is logged and otherwise
// invisible to the caller. Saves for one session never overlap or
// reorder, so the durable record is always the newest snapshot that
// reached the store.
func (m *SessionManager) Apply(userID string, transform func(models.AppData) models.AppData) (models.AppData, error) {
	s, err := m.get(userID)
	if err != nil {
		return models.AppData{}, err
	}

	s.mu.Lock()
	prev := s.data
	next := transform(prev)

	today := TodayKey()
	var prevLog, nextLog *models.DailyLog
	if l, ok := prev.Logs[today]; ok {
		prevLog = &l
	}
	if l, ok := next.Logs[today]; ok {
		nextLog = &l
	}

	if next.Profile != nil {
		accrued := Accrue(prevLog, nextLog, *next.Profile)
		tokens := accrued.Tokens - next.Profile.Tokens
		affection := accrued.Affection - next.Profile.Affection
		next.Profile = &accrued
		m.broadcastReward(userID, tokens, affection)
	}

	s.data = next
	s.mu.Unlock()

	m.scheduleSave(userID, s, next)

	return next, nil
}

// scheduleSave hands the snapshot to the session's save worker,
// starting one if none is running. A snapshot scheduled while another
// is still pending replaces it; only the latest state must survive.
func (m *SessionManager) scheduleSave(userID string, s *session, data models.AppData) {
	s.saveMu.Lock()
	s.pending = &data
	if s.saving {
		s.saveMu.Unlock()
		return
	}
	s.saving = true
	s.saveMu.Unlock()
	go m.saveLoop(userID, s)
}

func (m *SessionManager) saveLoop(userID string, s *session) {
	for {
		s.saveMu.Lock()
		data := s.pending
		s.pending = nil
		if data == nil {
			s.saving = false
			s.saveMu.Unlock()
			return
		}
		s.saveMu.Unlock()

		m.persist(userID, *data)
	}
}

// Evict drops the in-memory session, for logout and account deletion.
// Any save already in flight for the old state still completes.
func (m *SessionManager) Evict(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}

func (m *SessionManager) persist(userID string, data models.AppData) {
	if m.hub != nil {
		m.hub.Broadcast(userID, map[string]any{"kind": EventSyncStarted})
	}
	if err := m.store.Save(userID, data); err != nil {
		log.WithError(err).WithField("user", userID).Warn("background save failed")
	}
	if m.hub != nil {
		m.hub.Broadcast(userID, map[string]any{"kind": EventSyncFinished})
	}
}

func (m *SessionManager) broadcastReward(userID string, tokens, affection int) {
	if m.hub == nil || (tokens == 0 && affection == 0) {
		return
	}
	m.hub.Broadcast(userID, map[string]any{
		"kind":      EventRewardEarned,
		"tokens":    tokens,
		"affection": affection,
	})
}
