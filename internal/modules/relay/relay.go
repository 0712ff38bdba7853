// Package relay forwards a built prompt to the Ollama-style generation
// backend and re-streams its incremental output as cleaned frames.
package relay

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Frame contents reserved for stream termination. Mutually exclusive: a
// stream ends with exactly one of the two.
const (
	EndOfStream = "[END_OF_STREAM]"
	StreamError = "[ERROR]"
)

// Config points the relay at the generation backend. Injected at startup so
// tests can substitute an httptest double.
type Config struct {
	URL   string
	Model string
}

// Client performs streaming generation calls against the backend.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// NewClient creates a relay client. No timeout is set on the underlying
// HTTP client: a hung backend stalls only the request that hit it, and the
// caller may cancel via context.
func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  log,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateChunk is one NDJSON line of the backend response. Response is a
// pointer so a present-but-empty increment is distinguishable from absent.
type generateChunk struct {
	Response *string `json:"response"`
	Done     bool    `json:"done"`
}

// Generate streams the backend output for prompt. Every fragment on the
// returned channel has already passed CleanFragment; the channel carries the
// fragments in backend order, then exactly one terminal sentinel, then
// closes. Upstream failure detail stays server-side: the caller only ever
// sees the StreamError sentinel.
func (c *Client) Generate(ctx context.Context, prompt string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)

		sentinel := EndOfStream
		if err := c.stream(ctx, prompt, out); err != nil {
			c.log.Error("generation stream failed",
				zap.String("backend", c.cfg.URL),
				zap.Error(err),
			)
			sentinel = StreamError
		}
		select {
		case out <- sentinel:
		case <-ctx.Done():
		}
	}()
	return out
}

// stream runs the upstream call and relay loop, sending cleaned fragments
// to out. A nil return means the backend finished normally (done flag or
// clean EOF); any error maps to the StreamError sentinel in Generate.
func (c *Client) stream(ctx context.Context, prompt string, out chan<- string) error {
	payload, err := json.Marshal(generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: true,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/x-ndjson")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend status %s: %s", resp.Status, bytes.TrimSpace(body))
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var chunk generateChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			return fmt.Errorf("decode backend line: %w", err)
		}

		if chunk.Response != nil {
			select {
			case out <- CleanFragment(*chunk.Response):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if chunk.Done {
			// Do not wait for upstream to close the connection.
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read backend stream: %w", err)
	}
	return nil
}
