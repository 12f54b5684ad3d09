package bot

import (
	"sync"

	"github.com/google/uuid"
)

// Session tracks one user's game: the round awaiting an answer plus score
// and streak counters. Sessions live only in memory.
type Session struct {
	ID      string
	UserID  int64
	Current *Round
	Score   int
	Streak  int
}

func NewSession(userID int64, round *Round) *Session {
	return &Session{
		ID:      uuid.NewString(),
		UserID:  userID,
		Current: round,
	}
}

// SessionStore holds at most one session per user. Chat platforms deliver
// per-chat updates sequentially, so a single lock over the map suffices.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

func (s *SessionStore) Get(userID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Put stores the session, replacing any existing one for the same user.
func (s *SessionStore) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess
}

func (s *SessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
