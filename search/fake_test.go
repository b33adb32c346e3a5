package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"sync"
)

var errConnReset = errors.New("connection reset by peer")

// fakeProvider serves canned pages and records every request it sees.
type fakeProvider struct {
	mu      sync.Mutex
	pages   [][]providerItem
	failAt  int // page index that fails at the transport level, -1 for none
	errorAt int // page index that answers with an error payload, -1 for none
	calls   []url.Values
	closed  int
}

func newFakeProvider(pages ...[]providerItem) *fakeProvider {
	return &fakeProvider{pages: pages, failAt: -1, errorAt: -1}
}

func (f *fakeProvider) Fetch(_ context.Context, _ string, params url.Values) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	page := len(f.calls)
	f.calls = append(f.calls, params)

	if page == f.failAt {
		return nil, errConnReset
	}

	if page == f.errorAt {
		return []byte(`{"error":{"error_code":6,"error_msg":"Too many requests per second"}}`), nil
	}

	var items []providerItem
	if page < len(f.pages) {
		items = f.pages[page]
	}
	if items == nil {
		items = []providerItem{}
	}

	body := map[string]any{
		"response": map[string]any{
			"count": len(items),
			"items": items,
		},
	}
	return json.Marshal(body)
}

func (f *fakeProvider) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

func (f *fakeProvider) dialer() Dialer {
	return func(context.Context) (Session, error) {
		return f, nil
	}
}

func (f *fakeProvider) offsets() []int {
	out := make([]int, len(f.calls))
	for i, c := range f.calls {
		out[i], _ = strconv.Atoi(c.Get("offset"))
	}
	return out
}

// itemRange builds n items with consecutive ids starting at first.
func itemRange(first int64, n int) []providerItem {
	items := make([]providerItem, n)
	for i := range items {
		id := first + int64(i)
		items[i] = providerItem{ID: id, OwnerID: -1, Title: "clip " + strconv.FormatInt(id, 10), Views: int(id * 10), Date: 1700000000 + id}
		items[i].Likes.Count = int(id)
	}
	return items
}
