package multiagent

import (
	"context"
	"log/slog"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/usecase"
)

// Conversations runs supervisor turns on transcripts kept per external key
// (an A2A contextId or an AG-UI threadId). Turns on one key are serialized.
type Conversations struct {
	sup      *Supervisor
	sessions *usecase.SessionManager
	locker   *usecase.SessionLocker
	logger   *slog.Logger
}

// NewConversations creates Conversations over sessions.
func NewConversations(sup *Supervisor, sessions *usecase.SessionManager, logger *slog.Logger) *Conversations {
	if logger == nil {
		logger = slog.Default()
	}
	return &Conversations{
		sup:      sup,
		sessions: sessions,
		locker:   usecase.NewSessionLocker(),
		logger:   logger,
	}
}

// Supervisor returns the agent conversations run on.
func (c *Conversations) Supervisor() *Supervisor { return c.sup }

// Handle appends prompt to the conversation of channel and key, runs the
// supervisor on it and saves the transcript. An empty key runs on a
// throwaway session.
func (c *Conversations) Handle(ctx context.Context, channel, key, prompt string) (*RunOutcome, error) {
	return c.Run(ctx, key, RunRequest{Prompt: prompt, Channel: channel})
}

// Run is Handle with full control over the request. req.Session is
// replaced by the conversation's session.
func (c *Conversations) Run(ctx context.Context, key string, req RunRequest) (*RunOutcome, error) {
	if key == "" {
		req.Session = nil
		return c.sup.Run(ctx, req)
	}

	sessionKey := req.Channel + ":" + key
	unlock, err := c.locker.Lock(ctx, sessionKey)
	if err != nil {
		return nil, domain.WrapOp("conversation", err)
	}
	defer unlock()

	req.Session = c.sessions.GetOrCreate(sessionKey)
	out, err := c.sup.Run(ctx, req)

	if saveErr := c.sessions.Save(sessionKey); saveErr != nil {
		c.logger.Warn("failed to save session", "session", sessionKey, "error", saveErr)
	}
	return out, err
}

// History returns the transcript of channel and key, or nil when unknown.
func (c *Conversations) History(channel, key string) []domain.Message {
	s, err := c.sessions.Get(channel + ":" + key)
	if err != nil {
		return nil
	}
	return s.Messages()
}
