package ttkia

import (
	"context"
	"io"
)

// Workspace methods bind client operations to one conversation id, so callers
// working within a single workspace don't repeat the id on every call.
//
//	ws, _ := client.NewWorkspace(ctx)
//	ws.UploadFile(ctx, "manual.pdf")
//	resp, _ := ws.Query(ctx, "Summarize the manual")

// Query asks the assistant a question inside this workspace.
func (w *Workspace) Query(ctx context.Context, text string, opts ...QueryOption) (*QueryResponse, error) {
	return w.client.Query(ctx, text, append([]QueryOption{InConversation(w.ConversationID)}, opts...)...)
}

// UploadFile attaches a local file to this workspace.
func (w *Workspace) UploadFile(ctx context.Context, path string, opts ...UploadOption) (*Attachment, error) {
	return w.client.UploadFile(ctx, path, append([]UploadOption{ToConversation(w.ConversationID)}, opts...)...)
}

// Upload attaches streamed content to this workspace.
func (w *Workspace) Upload(ctx context.Context, r io.Reader, filename string, opts ...UploadOption) (*Attachment, error) {
	return w.client.Upload(ctx, r, filename, append([]UploadOption{ToConversation(w.ConversationID)}, opts...)...)
}

// Attachments lists the files attached to this workspace.
func (w *Workspace) Attachments(ctx context.Context) ([]Attachment, error) {
	return w.client.Attachments(ctx, w.ConversationID)
}

// Info fetches the server-side state of this workspace.
func (w *Workspace) Info(ctx context.Context) (*ConversationInfo, error) {
	return w.client.ShowConversation(ctx, w.ConversationID)
}

// Delete removes this workspace on the server.
func (w *Workspace) Delete(ctx context.Context) error {
	return w.client.DeleteConversation(ctx, w.ConversationID)
}
