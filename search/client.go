package search

import (
	"context"
	"errors"
)

// Session is a Transport scoped to a single Search call.
type Session interface {
	Transport
	Close() error
}

// Dialer opens the Session used by one Search call.
type Dialer func(ctx context.Context) (Session, error)

type staticSession struct {
	Transport
}

func (staticSession) Close() error { return nil }

// Static returns a Dialer that hands out t with a no-op Close.
func Static(t Transport) Dialer {
	return func(context.Context) (Session, error) {
		return staticSession{t}, nil
	}
}

// Client aggregates paginated search results.
// It holds no per-search state and is safe for concurrent use.
type Client struct {
	settings Settings
	dial     Dialer
}

// NewClient returns a Client that reaches the provider through dial.
func NewClient(settings Settings, dial Dialer) *Client {
	return &Client{settings: settings, dial: dial}
}

// Search runs the query across as many pages as needed and returns the
// deduplicated records in request order. Any page failure discards
// everything fetched so far.
func (c *Client) Search(ctx context.Context, q Query) ([]VideoRecord, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if c.dial == nil {
		return nil, &TransportError{Err: errors.New("no transport configured")}
	}

	session, err := c.dial(ctx)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = session.Close() }()

	raw, err := c.collect(ctx, session, q)
	if err != nil {
		return nil, err
	}

	return Deduplicate(raw), nil
}

// collect fetches pages strictly in order. A page shorter than the page
// size is the last one.
func (c *Client) collect(ctx context.Context, t Transport, q Query) ([]VideoRecord, error) {
	var (
		endpoint = c.settings.Endpoint()
		items    = make([]VideoRecord, 0, q.PageSize)
	)

	for page := 0; page < q.MaxPages; page++ {
		params := BuildParams(c.settings, q, page*q.PageSize)

		result, err := FetchPage(ctx, t, endpoint, params, page)
		if err != nil {
			return nil, err
		}

		items = append(items, result.Items...)

		if len(result.Items) < result.Requested {
			break
		}
	}

	return items, nil
}
