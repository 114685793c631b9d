package ttkia

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// queryRequest is the /query_complete payload.
type queryRequest struct {
	Query          string           `json:"query"`
	ConversationID string           `json:"conversation_id"`
	Prompt         string           `json:"prompt"`
	Style          string           `json:"style"`
	TeacherMode    bool             `json:"teacher_mode"`
	Sources        []string         `json:"sources"`
	AttachedFiles  []map[string]any `json:"attached_files"`
	AttachedURLs   []map[string]any `json:"attached_urls"`
	WebSearch      bool             `json:"web_search"`
	Title          string           `json:"title"`
}

// queryConfig holds per-query options.
type queryConfig struct {
	conversationID string
	prompt         string
	style          string
	teacherMode    bool
	webSearch      bool
	title          string
	sources        []string
	sourcesSet     bool
	attachedFiles  []map[string]any
	attachedURLs   []map[string]any
}

// QueryOption configures a single query.
type QueryOption func(*queryConfig)

// InConversation targets the query at a specific conversation instead of the
// client's current one.
func InConversation(conversationID string) QueryOption {
	return func(q *queryConfig) { q.conversationID = conversationID }
}

// WithPrompt selects a prompt preset. Default is "default".
func WithPrompt(name string) QueryOption {
	return func(q *queryConfig) { q.prompt = name }
}

// WithStyle selects a response style preset. Default is "concise".
func WithStyle(name string) QueryOption {
	return func(q *queryConfig) { q.style = name }
}

// TeacherMode enables the extended step-by-step answer mode. The response's
// ThinkingProcess field is populated when it is on.
func TeacherMode(on bool) QueryOption {
	return func(q *queryConfig) { q.teacherMode = on }
}

// WebSearch lets the assistant augment the answer with live web results.
func WebSearch(on bool) QueryOption {
	return func(q *queryConfig) { q.webSearch = on }
}

// WithTitle sets the title stored with the query. Default is "New Query".
func WithTitle(title string) QueryOption {
	return func(q *queryConfig) { q.title = title }
}

// WithSources restricts retrieval to the named sources. Without this option
// the client fetches the source catalog and uses every title. Pass an empty
// slice to disable retrieval sources entirely.
func WithSources(titles ...string) QueryOption {
	return func(q *queryConfig) {
		q.sources = titles
		q.sourcesSet = true
	}
}

// WithAttachedFiles references previously uploaded files in the query.
func WithAttachedFiles(files ...map[string]any) QueryOption {
	return func(q *queryConfig) { q.attachedFiles = files }
}

// WithAttachedURLs attaches external URLs to the query.
func WithAttachedURLs(urls ...map[string]any) QueryOption {
	return func(q *queryConfig) { q.attachedURLs = urls }
}

// Query asks the assistant a question. The query text must be non-empty;
// that is checked before any network call. The conversation defaults to the
// client's current one.
//
//	resp, err := client.Query(ctx, "¿Qué es SD-WAN?",
//	    ttkia.TeacherMode(true),
//	    ttkia.WebSearch(true),
//	)
func (c *Client) Query(ctx context.Context, text string, opts ...QueryOption) (*QueryResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "query", Reason: "must not be empty"}
	}

	cfg := queryConfig{
		prompt: "default",
		style:  "concise",
		title:  "New Query",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.conversationID == "" {
		cfg.conversationID = c.currentConversation
	}

	if !cfg.sourcesSet {
		cfg.sources = c.allSourceTitles(ctx)
	}

	req := queryRequest{
		Query:          text,
		ConversationID: cfg.conversationID,
		Prompt:         cfg.prompt,
		Style:          cfg.style,
		TeacherMode:    cfg.teacherMode,
		Sources:        emptyIfNil(cfg.sources),
		AttachedFiles:  emptyFilesIfNil(cfg.attachedFiles),
		AttachedURLs:   emptyFilesIfNil(cfg.attachedURLs),
		WebSearch:      cfg.webSearch,
		Title:          cfg.title,
	}

	c.logger.Info("executing query",
		zap.String("conversation_id", cfg.conversationID),
		zap.String("prompt", cfg.prompt),
		zap.String("style", cfg.style),
		zap.Bool("teacher_mode", cfg.teacherMode),
		zap.Bool("web_search", cfg.webSearch),
	)

	out := &QueryResponse{}
	if err := c.do(ctx, http.MethodPost, "/query_complete", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// allSourceTitles fetches the source catalog for automatic source selection.
// A catalog failure degrades to no sources rather than failing the query.
func (c *Client) allSourceTitles(ctx context.Context) []string {
	sources, err := c.Sources(ctx)
	if err != nil {
		c.logger.Warn("could not fetch sources for query", zap.Error(err))
		return []string{}
	}
	titles := make([]string, 0, len(sources))
	for _, s := range sources {
		if s.Title != "" {
			titles = append(titles, s.Title)
		}
	}
	return titles
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyFilesIfNil(s []map[string]any) []map[string]any {
	if s == nil {
		return []map[string]any{}
	}
	return s
}
