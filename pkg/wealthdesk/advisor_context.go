package wealthdesk

import "sync"

// Speaker labels used when rendering conversation turns into a prompt.
const (
	SpeakerUser      = "User"
	SpeakerAssistant = "Assistant"
)

// defaultContextWindowSize bounds the per-user short-term conversation
// memory. Older turns are evicted oldest-first.
const defaultContextWindowSize = 10

// contextStore keeps a bounded window of recent conversation turns per
// user. It is a prompt-construction cache only; the durable chat log in
// the database is the system of record. Process restart loses all
// windows by design.
type contextStore struct {
	mu      sync.Mutex
	maxSize int
	turns   map[int64][]string
}

func newContextStore(maxSize int) *contextStore {
	if maxSize <= 0 {
		maxSize = defaultContextWindowSize
	}
	return &contextStore{
		maxSize: maxSize,
		turns:   map[int64][]string{},
	}
}

// Append records one turn, evicting the oldest when the window is full.
func (s *contextStore) Append(userID int64, speaker, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := append(s.turns[userID], speaker+": "+text)
	if len(window) > s.maxSize {
		window = window[1:]
	}
	s.turns[userID] = window
}

// Window returns the user's turns oldest-to-newest, each already
// rendered as "<Speaker>: <text>".
func (s *contextStore) Window(userID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := s.turns[userID]
	out := make([]string, len(window))
	copy(out, window)
	return out
}

// Len reports the current window size for a user.
func (s *contextStore) Len(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns[userID])
}
