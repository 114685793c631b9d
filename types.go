package ttkia

import "time"

// Workspace identifies a server-side workspace/conversation and carries the
// client that created it, so follow-up calls can be made directly on the
// handle. See workspace.go for its methods.
type Workspace struct {
	ConversationID string `json:"conversation_id"`
	Title          string `json:"title,omitempty"`

	client *Client
}

// QueryResponse is the assistant's answer to a single query, with the
// retrieval metadata the service returns alongside it. Unknown fields in the
// wire response are ignored.
type QueryResponse struct {
	ResponseText   string  `json:"response_text"`
	ConversationID string  `json:"conversation_id,omitempty"`
	MessageID      string  `json:"message_id,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`

	// Docs are knowledge-base documents the answer drew on, Links are static
	// reference links, and Webs are live web-search results (populated only
	// when web search was requested).
	Docs  []SourceRef `json:"docs,omitempty"`
	Links []SourceRef `json:"links,omitempty"`
	Webs  []WebResult `json:"webs,omitempty"`

	// ThinkingProcess holds the step-by-step reasoning emitted in teacher
	// mode; empty otherwise.
	ThinkingProcess []string `json:"thinking_process,omitempty"`

	InferredEnvironments []string `json:"inferred_environments,omitempty"`
}

// SourceRef points at a knowledge-base document or static link cited in a
// response.
type SourceRef struct {
	Source string `json:"source,omitempty"`
	Title  string `json:"title,omitempty"`
	Page   int    `json:"page,omitempty"`
}

// WebResult is a web-search hit cited in a response.
type WebResult struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Source is a knowledge-base source available for retrieval.
type Source struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Prompt is a named prompt preset offered by the service.
type Prompt struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Style is a response style preset offered by the service.
type Style struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Attachment is a file associated with a conversation.
type Attachment struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Status         string `json:"status,omitempty"`
	Size           int64  `json:"size,omitempty"`
	ContentType    string `json:"content_type,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ConversationInfo describes the server-side state of one conversation.
type ConversationInfo struct {
	ConversationID  string                `json:"conversation_id"`
	Title           string                `json:"title,omitempty"`
	Messages        []ConversationMessage `json:"messages,omitempty"`
	FileAttachments []Attachment          `json:"file_attachments,omitempty"`
}

// ConversationMessage is one exchange stored in a conversation.
type ConversationMessage struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// ConversationSummary is one entry of the user's conversation history.
type ConversationSummary struct {
	ConversationID string `json:"conversation_id"`
	Title          string `json:"title,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// SessionInfo is local metadata about the client session, with a live
// reachability probe folded in.
type SessionInfo struct {
	Authenticated   bool          `json:"authenticated"`
	BaseURL         string        `json:"base_url"`
	AppTokenPresent bool          `json:"app_token_present"`
	Timeout         time.Duration `json:"timeout"`
}

// userInfo mirrors the /auth/users/me response; only the conversation
// history is surfaced.
type userInfo struct {
	HistoryChat struct {
		Conversations []ConversationSummary `json:"conversations"`
	} `json:"history_chat"`
}
