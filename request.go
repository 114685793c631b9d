package ttkia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ttkia/ttkia-go/obs"
)

// maxErrorBody bounds how much of an error response body is kept.
const maxErrorBody = 4096

// do sends one authenticated JSON round trip and decodes the response into
// out (skipped when out is nil). Non-2xx statuses are mapped through
// statusError; transport failures come back as *TransportError.
func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) (err error) {
	ctx, recorder := obs.StartRequest(ctx, "ttkia."+strings.Trim(endpoint, "/"),
		attribute.String("ttkia.endpoint", endpoint),
		attribute.String("http.method", method),
	)
	defer func() { recorder.End(err) }()

	var body io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, endpoint, recorder, out)
}

// send finishes request preparation shared by JSON and multipart calls:
// auth, correlation id, extra headers, dispatch, and response decoding.
func (c *Client) send(req *http.Request, endpoint string, recorder *obs.RequestRecorder, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.appToken)
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	recorder.AddAttributes(attribute.String("ttkia.request_id", requestID))

	log := c.logger.With(
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID),
	)
	log.Debug("sending request", zap.String("method", req.Method), zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed", zap.Error(err))
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()
	recorder.AddAttributes(attribute.Int("http.status_code", resp.StatusCode))
	log.Debug("response received", zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := statusError(resp.StatusCode, endpoint, strings.TrimSpace(string(data)))
		log.Warn("request rejected", zap.Int("status", resp.StatusCode))
		return err
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
