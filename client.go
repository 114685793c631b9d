package ttkia

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ttkia/ttkia-go/config"
	"github.com/ttkia/ttkia-go/internal/httpclient"
)

// Client talks to a TTKIA deployment. It holds the base URL, the app token
// presented as a bearer credential, and the id of the current conversation
// (the one most recently created or selected on this client).
//
// Every call is a single blocking request/response round trip; the client
// performs no retries and keeps no cache. The current-conversation field is
// not synchronized: share a Client across goroutines only with external
// locking, or pass explicit conversation ids.
type Client struct {
	baseURL    string
	appToken   string
	timeout    time.Duration
	logLevel   string
	headers    map[string]string
	httpClient *http.Client
	logger     *zap.Logger

	currentConversation string
}

// New creates a Client. A base URL and app token are required.
//
//	client, err := ttkia.New(
//	    ttkia.WithBaseURL("https://ttkia.example.com"),
//	    ttkia.WithAppToken(token),
//	)
func New(opts ...Option) (*Client, error) {
	c := &Client{
		timeout:  30 * time.Second,
		logLevel: "INFO",
	}
	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")
	if c.baseURL == "" {
		return nil, ErrNoBaseURL
	}
	if c.appToken == "" {
		return nil, ErrNoAppToken
	}
	if c.httpClient == nil {
		c.httpClient = httpclient.New(httpclient.WithTimeout(c.timeout))
	}
	if c.logger == nil {
		c.logger = newLogger(c.logLevel)
	}

	c.logger.Info("ttkia client initialized", zap.String("base_url", c.baseURL))
	return c, nil
}

// FromConfig creates a Client from an environment-derived configuration.
// Options are applied after the config and may override it.
func FromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithAppToken(cfg.AppToken),
		WithLogLevel(cfg.LogLevel),
		WithTimeout(cfg.Timeout),
	}
	return New(append(base, opts...)...)
}

// InitSession primes the server-side session. The service tolerates clients
// that skip this, so callers may ignore the error for best-effort startup.
func (c *Client) InitSession(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/env", nil, nil)
}

// NewWorkspace creates a fresh workspace/conversation and makes it the
// client's current conversation.
func (c *Client) NewWorkspace(ctx context.Context) (*Workspace, error) {
	ws := &Workspace{}
	if err := c.do(ctx, http.MethodPost, "/new-workspace", nil, ws); err != nil {
		return nil, err
	}
	ws.client = c
	c.currentConversation = ws.ConversationID
	c.logger.Info("workspace created", zap.String("conversation_id", ws.ConversationID))
	return ws, nil
}

// ShowConversation fetches the server-side state of one conversation.
// Returns *NotFoundError when the service no longer knows the id.
func (c *Client) ShowConversation(ctx context.Context, conversationID string) (*ConversationInfo, error) {
	if conversationID == "" {
		return nil, &ValidationError{Field: "conversationID", Reason: "must not be empty"}
	}
	info := &ConversationInfo{}
	payload := map[string]string{"conversation_id": conversationID}
	if err := c.do(ctx, http.MethodPost, "/conversation-info", payload, info); err != nil {
		return nil, err
	}
	if info.ConversationID == "" {
		info.ConversationID = conversationID
	}
	return info, nil
}

// Attachments lists the files attached to a conversation.
func (c *Client) Attachments(ctx context.Context, conversationID string) ([]Attachment, error) {
	info, err := c.ShowConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return info.FileAttachments, nil
}

// DeleteConversation removes a conversation on the server. If it was the
// client's current conversation, the current id is cleared.
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return &ValidationError{Field: "conversationID", Reason: "must not be empty"}
	}
	payload := map[string]string{"conversation_id": conversationID}
	if err := c.do(ctx, http.MethodPost, "/forget", payload, nil); err != nil {
		return err
	}
	if c.currentConversation == conversationID {
		c.currentConversation = ""
	}
	c.logger.Info("conversation deleted", zap.String("conversation_id", conversationID))
	return nil
}

// Conversations lists the user's conversation history.
func (c *Client) Conversations(ctx context.Context) ([]ConversationSummary, error) {
	var user userInfo
	if err := c.do(ctx, http.MethodGet, "/auth/users/me", nil, &user); err != nil {
		return nil, err
	}
	return user.HistoryChat.Conversations, nil
}

// IsAuthenticated probes the service with the configured token. It never
// returns an error: any transport or API failure reads as "not
// authenticated", since the method exists to check reachability.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	if c.appToken == "" {
		return false
	}
	if err := c.do(ctx, http.MethodGet, "/auth/users/me", nil, nil); err != nil {
		c.logger.Warn("authentication check failed", zap.Error(err))
		return false
	}
	return true
}

// SessionInfo reports local session metadata together with a live
// authentication probe.
func (c *Client) SessionInfo(ctx context.Context) SessionInfo {
	return SessionInfo{
		Authenticated:   c.IsAuthenticated(ctx),
		BaseURL:         c.baseURL,
		AppTokenPresent: c.appToken != "",
		Timeout:         c.timeout,
	}
}

// CurrentConversationID returns the id set by the last NewWorkspace or
// SetCurrentConversation call, or "" when none is active.
func (c *Client) CurrentConversationID() string {
	return c.currentConversation
}

// SetCurrentConversation switches the client's current conversation. The id
// is not validated locally; a stale id surfaces as *NotFoundError on the
// next call that uses it.
func (c *Client) SetCurrentConversation(conversationID string) {
	c.currentConversation = conversationID
}

// Workspace returns a handle bound to an existing conversation id, without
// touching the server.
func (c *Client) Workspace(conversationID string) *Workspace {
	return &Workspace{ConversationID: conversationID, client: c}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
