package ttkia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ttkia/ttkia-go/obs"
)

// uploadConfig holds per-upload options.
type uploadConfig struct {
	conversationID string
	filename       string
}

// UploadOption configures an upload.
type UploadOption func(*uploadConfig)

// ToConversation attaches the file to a specific conversation instead of the
// client's current one.
func ToConversation(conversationID string) UploadOption {
	return func(u *uploadConfig) { u.conversationID = conversationID }
}

// AsFilename stores the file under a custom name instead of its basename.
func AsFilename(name string) UploadOption {
	return func(u *uploadConfig) { u.filename = name }
}

// UploadFile reads a local file and attaches it to a conversation. An
// unreadable path is reported as *FileError before any network call.
func (c *Client) UploadFile(ctx context.Context, path string, opts ...UploadOption) (*Attachment, error) {
	if path == "" {
		return nil, &ValidationError{Field: "path", Reason: "must not be empty"}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	cfg := uploadConfig{filename: filepath.Base(path)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return c.upload(ctx, f, cfg)
}

// Upload attaches in-memory or streamed content to a conversation under the
// given filename.
func (c *Client) Upload(ctx context.Context, r io.Reader, filename string, opts ...UploadOption) (*Attachment, error) {
	if filename == "" {
		return nil, &ValidationError{Field: "filename", Reason: "must not be empty"}
	}
	cfg := uploadConfig{filename: filename}
	for _, opt := range opts {
		opt(&cfg)
	}
	return c.upload(ctx, r, cfg)
}

func (c *Client) upload(ctx context.Context, r io.Reader, cfg uploadConfig) (_ *Attachment, err error) {
	if cfg.conversationID == "" {
		cfg.conversationID = c.currentConversation
	}

	ctx, recorder := obs.StartRequest(ctx, "ttkia.chat-upload",
		attribute.String("ttkia.endpoint", "/chat-upload"),
		attribute.String("http.method", http.MethodPost),
	)
	defer func() { recorder.End(err) }()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := createFormFile(mw, "file", cfg.filename, contentTypeFor(cfg.filename))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	size, err := io.Copy(fw, r)
	if err != nil {
		return nil, &FileError{Path: cfg.filename, Err: err}
	}
	if cfg.conversationID != "" {
		if err := mw.WriteField("conversation_id", cfg.conversationID); err != nil {
			return nil, fmt.Errorf("write conversation_id field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	c.logger.Info("uploading file",
		zap.String("filename", cfg.filename),
		zap.Int64("size", size),
		zap.String("conversation_id", cfg.conversationID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat-upload", buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	att := &Attachment{}
	if err := c.send(req, "/chat-upload", recorder, att); err != nil {
		return nil, err
	}
	if att.ConversationID == "" {
		att.ConversationID = cfg.conversationID
	}
	return att, nil
}

// createFormFile is mw.CreateFormFile with an explicit content type instead
// of the multipart package's blanket application/octet-stream.
func createFormFile(mw *multipart.Writer, field, filename, contentType string) (io.Writer, error) {
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename),
	}
	h["Content-Type"] = []string{contentType}
	return mw.CreatePart(h)
}

// contentTypes maps the document extensions the service commonly receives.
// mime.TypeByExtension covers the rest.
var contentTypes = map[string]string{
	".txt":  "text/plain",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".csv":  "text/csv",
	".json": "application/json",
	".xml":  "application/xml",
	".html": "text/html",
	".htm":  "text/html",
	".md":   "text/markdown",
	".rtf":  "application/rtf",
	".odt":  "application/vnd.oasis.opendocument.text",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
	".odp":  "application/vnd.oasis.opendocument.presentation",
	".pbix": "application/octet-stream",
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
