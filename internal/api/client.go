// Package api is the typed client for the Digital Cafe REST API. It owns
// bearer-token attachment and the uniform 401 handling; every entity it
// returns is authoritative on the server and only transiently cached here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/session"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	client  *http.Client
	baseURL string
	session *session.Store
	bus     *events.Bus
}

func NewClient(cfg Config, sess *session.Store, bus *events.Bus) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		client: &http.Client{
			Transport: &authTransport{
				Session: sess,
				Base:    http.DefaultTransport,
			},
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		session: sess,
		bus:     bus,
	}
}

// authTransport adds the bearer token (when a session exists) to every
// outgoing request.
type authTransport struct {
	Session *session.Store
	Base    http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	return t.Base.RoundTrip(req)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.Header.Get("Content-Encoding") == "br" {
		resp.Body = &readCloserWrapper{Reader: brotli.NewReader(resp.Body), Closer: resp.Body}
	}
	return resp, nil
}

// do runs one authenticated call. A 401 is handled centrally: the local
// session is cleared, one session event is published, and every caller gets
// the same ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// A stale token can 401 on several calls in a row; once the
		// session is gone there is nothing left to clear or signal.
		if c.session.IsLoggedIn() {
			c.session.Clear()
			c.bus.Publish(events.TopicSession)
		}
		return ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

type readCloserWrapper struct {
	io.Reader
	io.Closer
}

func (r *readCloserWrapper) Read(p []byte) (n int, err error) {
	return r.Reader.Read(p)
}

func (r *readCloserWrapper) Close() error {
	return r.Closer.Close()
}
