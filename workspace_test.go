package ttkia

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestWorkspaceQueryUsesItsConversation(t *testing.T) {
	var payload queryRequest
	transport := roundTrip(func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/new-workspace":
			return jsonResponse(200, `{"conversation_id":"ws1"}`), nil
		case "/get_sources":
			return jsonResponse(200, `[]`), nil
		case "/query_complete":
			if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			return jsonResponse(200, `{"conversation_id":"ws1"}`), nil
		default:
			t.Fatalf("unexpected path %s", req.URL.Path)
			return nil, nil
		}
	})
	client := newTestClient(t, transport)

	ws, err := client.NewWorkspace(context.Background())
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	// A later workspace should not redirect queries made on this handle.
	client.SetCurrentConversation("other")

	resp, err := ws.Query(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if payload.ConversationID != "ws1" {
		t.Fatalf("query targeted %q, want ws1", payload.ConversationID)
	}
	if resp.ConversationID != "ws1" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestWorkspaceUploadAndAttachments(t *testing.T) {
	transport := roundTrip(func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/chat-upload":
			form := parseUpload(t, req)
			defer form.RemoveAll()
			if got := form.Value["conversation_id"]; len(got) != 1 || got[0] != "ws1" {
				t.Fatalf("unexpected conversation_id %v", got)
			}
			return jsonResponse(200, `{"id":"a1","name":"notes.txt","conversation_id":"ws1"}`), nil
		case "/conversation-info":
			return jsonResponse(200, `{"conversation_id":"ws1","file_attachments":[{"id":"a1","name":"notes.txt"}]}`), nil
		default:
			t.Fatalf("unexpected path %s", req.URL.Path)
			return nil, nil
		}
	})
	client := newTestClient(t, transport)
	ws := client.Workspace("ws1")

	att, err := ws.Upload(context.Background(), strings.NewReader("hello"), "notes.txt")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if att.ConversationID != "ws1" {
		t.Fatalf("unexpected attachment %+v", att)
	}

	attachments, err := ws.Attachments(context.Background())
	if err != nil {
		t.Fatalf("Attachments: %v", err)
	}
	if len(attachments) != 1 || attachments[0].ID != "a1" {
		t.Fatalf("unexpected attachments %+v", attachments)
	}
}

func TestWorkspaceDeleteThenInfoNotFound(t *testing.T) {
	deleted := false
	transport := roundTrip(func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/forget":
			deleted = true
			return jsonResponse(200, `{"status":"ok"}`), nil
		case "/conversation-info":
			if deleted {
				return jsonResponse(404, `{"detail":"not found"}`), nil
			}
			return jsonResponse(200, `{"conversation_id":"ws1"}`), nil
		default:
			t.Fatalf("unexpected path %s", req.URL.Path)
			return nil, nil
		}
	})
	client := newTestClient(t, transport)
	ws := client.Workspace("ws1")

	if _, err := ws.Info(context.Background()); err != nil {
		t.Fatalf("Info before delete: %v", err)
	}
	if err := ws.Delete(context.Background()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := ws.Info(context.Background()); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}
