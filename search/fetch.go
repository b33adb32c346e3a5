package search

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Transport performs one request and returns the raw response body.
type Transport interface {
	Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, endpoint string, params url.Values) ([]byte, error)

func (f TransportFunc) Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	return f(ctx, endpoint, params)
}

// PageResult is one decoded page.
type PageResult struct {
	Items     []VideoRecord
	Requested int
}

// FetchPage requests a single page and decodes it.
// The page index is only used to annotate errors.
func FetchPage(ctx context.Context, t Transport, endpoint string, params url.Values, page int) (*PageResult, error) {
	body, err := t.Fetch(ctx, endpoint, params)
	if err != nil {
		return nil, &TransportError{Page: page, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ProviderError{Page: page, Err: err}
	}

	if env.Response == nil || env.Response.Items == nil {
		return nil, newProviderError(page, env.Error)
	}

	items := make([]VideoRecord, len(env.Response.Items))
	for i, item := range env.Response.Items {
		items[i] = item.record()
	}

	requested, _ := strconv.Atoi(params.Get("count"))
	return &PageResult{Items: items, Requested: requested}, nil
}
