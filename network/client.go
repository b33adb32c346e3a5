// Package network provides the HTTP sessions page requests are sent through.
package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/clipseek/clipseek/constant"
	"github.com/clipseek/clipseek/log"
	"github.com/clipseek/clipseek/search"
)

// maxBody caps how much of a response is read into memory.
const maxBody = 16 << 20

// Options configures the sessions produced by Dialer.
type Options struct {
	// Timeout bounds a single request. Zero disables it.
	Timeout time.Duration
	// Token is sent as access_token when non-empty.
	Token string
	// UserAgent defaults to constant.UserAgent.
	UserAgent string
	// Fingerprint routes TLS through a browser-like ClientHello.
	Fingerprint bool
}

// Session is an HTTP-backed search.Session. Its connections are private to
// one search and are dropped on Close.
type Session struct {
	client    *http.Client
	idle      interface{ CloseIdleConnections() }
	token     string
	userAgent string
}

// Dialer returns a search.Dialer that opens a fresh Session per search.
func Dialer(opts Options) search.Dialer {
	return func(context.Context) (search.Session, error) {
		return NewSession(opts), nil
	}
}

// NewSession builds a Session with its own connection pool.
func NewSession(opts Options) *Session {
	var rt interface {
		http.RoundTripper
		CloseIdleConnections()
	}

	if opts.Fingerprint {
		rt = newFingerprintTransport()
	} else {
		rt = newTransport()
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = constant.UserAgent
	}

	return &Session{
		client:    &http.Client{Timeout: opts.Timeout, Transport: rt},
		idle:      rt,
		token:     opts.Token,
		userAgent: ua,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// Fetch performs a GET of endpoint with params and returns the body.
// Any non-2xx status is reported as an error.
func (s *Session) Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	for k, vs := range params {
		q[k] = append([]string(nil), vs...)
	}
	if s.token != "" {
		q.Set("access_token", s.token)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		log.With(log.Fields{"offset": params.Get("offset")}).Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	log.With(log.Fields{
		"offset":  params.Get("offset"),
		"status":  resp.StatusCode,
		"elapsed": time.Since(started).String(),
	}).Debug("page request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

// Close releases the session's idle connections.
func (s *Session) Close() error {
	s.idle.CloseIdleConnections()
	return nil
}
