package usecase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"arr-mcp/internal/domain"
)

// Session is one conversation transcript. A2A conversations are keyed by
// their contextId; every delegation runs in a fresh session.
type Session struct {
	mu          sync.RWMutex
	ID          string           `json:"id"`           // ULID
	ExternalKey string           `json:"external_key"` // e.g. "a2a:<contextId>"
	Msgs        []domain.Message `json:"messages"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewSession creates an empty session with a generated ULID.
func NewSession(externalKey string) *Session {
	now := time.Now()
	return &Session{
		ID:          ulid.Make().String(),
		ExternalKey: externalKey,
		Msgs:        make([]domain.Message, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewSessionFrom creates a session seeded with history.
func NewSessionFrom(externalKey string, history []domain.Message) *Session {
	s := NewSession(externalKey)
	s.Msgs = append(s.Msgs, history...)
	return s
}

// AddMessage appends a message and updates the timestamp.
func (s *Session) AddMessage(msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	s.Msgs = append(s.Msgs, msg)
	s.UpdatedAt = time.Now()
}

// Messages returns a copy of the message history.
func (s *Session) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]domain.Message, len(s.Msgs))
	copy(cp, s.Msgs)
	return cp
}

// Truncate keeps only the last n messages.
func (s *Session) Truncate(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Msgs) <= n {
		return
	}
	s.Msgs = s.Msgs[len(s.Msgs)-n:]
}

// SessionManager keeps sessions by external key. With a data directory
// sessions can be saved and are reloaded on first use.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	dataDir  string
}

// NewSessionManager creates a session manager. An empty dataDir keeps
// sessions in memory only.
func NewSessionManager(dataDir string) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		dataDir:  dataDir,
	}
}

// validateKey rejects keys that are unsafe as file names.
func validateKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: session key cannot be empty", domain.ErrInvalidInput)
	case strings.ContainsAny(key, "/\\\x00"), strings.Contains(key, ".."):
		return fmt.Errorf("%w: unsafe session key %q", domain.ErrInvalidInput, key)
	case filepath.Clean(key) != key:
		return fmt.Errorf("%w: session key not clean: %q", domain.ErrInvalidInput, key)
	}
	return nil
}

// GetOrCreate returns the session for key, creating it when absent.
func (sm *SessionManager) GetOrCreate(key string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if s, ok := sm.sessions[key]; ok {
		return s
	}
	s := NewSession(key)
	if loaded, err := sm.load(key); err == nil {
		s = loaded
	}
	sm.sessions[key] = s
	return s
}

// Get returns the session for key or ErrSessionNotFound.
func (sm *SessionManager) Get(key string) (*Session, error) {
	sm.mu.RLock()
	s, ok := sm.sessions[key]
	sm.mu.RUnlock()
	if !ok {
		return nil, domain.NewDomainError("SessionManager.Get", domain.ErrSessionNotFound, key)
	}
	return s, nil
}

// Save writes the session for key to the data directory.
func (sm *SessionManager) Save(key string) error {
	if sm.dataDir == "" {
		return nil
	}
	if err := validateKey(key); err != nil {
		return domain.WrapOp("SessionManager.Save", err)
	}
	s, err := sm.Get(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(sm.dataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	s.mu.RLock()
	data, err := json.MarshalIndent(s, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return os.WriteFile(filepath.Join(sm.dataDir, key+".json"), data, 0o600)
}

// Delete removes the session for key from memory and disk.
func (sm *SessionManager) Delete(key string) error {
	sm.mu.Lock()
	_, ok := sm.sessions[key]
	delete(sm.sessions, key)
	sm.mu.Unlock()
	if !ok {
		return domain.NewDomainError("SessionManager.Delete", domain.ErrSessionNotFound, key)
	}
	if sm.dataDir != "" && validateKey(key) == nil {
		if err := os.Remove(filepath.Join(sm.dataDir, key+".json")); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove session file: %w", err)
		}
	}
	return nil
}

// Keys returns the keys of all sessions held in memory, sorted.
func (sm *SessionManager) Keys() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	keys := make([]string, 0, len(sm.sessions))
	for k := range sm.sessions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ReapStaleSessions drops sessions not updated within maxAge from memory
// and returns how many were dropped. Saved files are kept.
func (sm *SessionManager) ReapStaleSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	sm.mu.Lock()
	defer sm.mu.Unlock()
	n := 0
	for key, s := range sm.sessions {
		s.mu.RLock()
		stale := s.UpdatedAt.Before(cutoff)
		s.mu.RUnlock()
		if stale {
			delete(sm.sessions, key)
			n++
		}
	}
	return n
}

func (sm *SessionManager) load(key string) (*Session, error) {
	if sm.dataDir == "" {
		return nil, os.ErrNotExist
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(sm.dataDir, key+".json"))
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
