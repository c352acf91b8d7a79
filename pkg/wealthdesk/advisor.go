package wealthdesk

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// AdvisorOptions configures a new Advisor. Store is required. Client
// overrides the client derived from Completion, which tests use to
// inject scripted backends.
type AdvisorOptions struct {
	Store             ProfileStore
	Logger            *slog.Logger
	Completion        CompletionConfig
	Client            CompletionClient
	ContextWindowSize int
	Now               func() time.Time
}

// Advisor is the conversational pipeline: it assembles a grounded
// prompt from the user's profile and recent conversation, asks the
// completion backend for a reply, and falls back to canned responses
// when the backend is unavailable or fails. One instance is shared
// across requests; its caches are per-user.
type Advisor struct {
	store  ProfileStore
	logger *slog.Logger
	ctx    *contextStore
	now    func() time.Time

	mu       sync.Mutex
	client   CompletionClient
	profiles map[int64]string
}

// NewAdvisor builds an Advisor. Returns an error only when the
// completion configuration names an unknown provider.
func NewAdvisor(opts AdvisorOptions) (*Advisor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	client := opts.Client
	if client == nil {
		built, err := newCompletionClient(opts.Completion)
		if err != nil {
			return nil, err
		}
		client = built
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Advisor{
		store:    opts.Store,
		logger:   logger,
		ctx:      newContextStore(opts.ContextWindowSize),
		now:      now,
		client:   client,
		profiles: map[int64]string{},
	}, nil
}

// SetCompletionConfig swaps the generation backend at runtime, used
// when advisor settings change. An empty API key disables the backend.
func (a *Advisor) SetCompletionConfig(cfg CompletionConfig) error {
	client, err := newCompletionClient(cfg)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.client = client
	a.mu.Unlock()
	return nil
}

// InvalidateProfile drops a user's cached profile snapshot. Portfolio
// and goal mutations call this so the next reply is grounded in fresh
// data.
func (a *Advisor) InvalidateProfile(userID int64) {
	a.mu.Lock()
	delete(a.profiles, userID)
	a.mu.Unlock()
}

// profileSnapshot returns the cached snapshot for a user, building it
// lazily on first access.
func (a *Advisor) profileSnapshot(userID int64) (string, error) {
	a.mu.Lock()
	cached, ok := a.profiles[userID]
	a.mu.Unlock()
	if ok {
		return cached, nil
	}

	snapshot, err := buildProfileSnapshot(a.store, userID, a.now())
	if err != nil {
		return "", err
	}
	a.mu.Lock()
	a.profiles[userID] = snapshot
	a.mu.Unlock()
	return snapshot, nil
}

// GenerateReply produces the assistant's reply to one user message.
// It fails only when the user's profile cannot be loaded; completion
// backend failures degrade to a fallback reply, never to an error.
func (a *Advisor) GenerateReply(ctx context.Context, userID int64, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", NewError(ErrCodeInvalidInput, "message is required")
	}

	a.ctx.Append(userID, SpeakerUser, message)

	snapshot, err := a.profileSnapshot(userID)
	if err != nil {
		return "", err
	}

	prompt := buildAdvisorPrompt(snapshot, a.ctx.Window(userID), message)
	reply := a.complete(ctx, userID, prompt, message)

	a.ctx.Append(userID, SpeakerAssistant, reply)
	return reply, nil
}

func (a *Advisor) complete(ctx context.Context, userID int64, prompt, message string) string {
	a.mu.Lock()
	client := a.client
	a.mu.Unlock()

	if client == nil {
		a.logger.Debug("no completion backend configured, using fallback", "user_id", userID)
		return FallbackReply(message)
	}

	callCtx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	text, err := client.Complete(callCtx, prompt)
	if err != nil {
		a.logger.Warn("completion backend failed, using fallback",
			"user_id", userID,
			"error", err,
		)
		return FallbackReply(message)
	}
	return stripRolePrefix(text)
}

// ContextWindow exposes a user's rendered conversation window.
func (a *Advisor) ContextWindow(userID int64) []string {
	return a.ctx.Window(userID)
}
