package network

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/clipseek/clipseek/search"
	. "github.com/smartystreets/goconvey/convey"
)

// provider serves total videos in pages, honoring count and offset.
func provider(total int, seen *[]url.Values) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		*seen = append(*seen, q)

		count, _ := strconv.Atoi(q.Get("count"))
		offset, _ := strconv.Atoi(q.Get("offset"))

		items := []map[string]any{}
		for i := offset; i < offset+count && i < total; i++ {
			items = append(items, map[string]any{
				"id":       i + 1,
				"owner_id": -42,
				"title":    fmt.Sprintf("clip %d", i+1),
				"likes":    map[string]int{"count": i},
				"views":    i * 100,
				"date":     1700000000 + i,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": map[string]any{"count": total, "items": items},
		})
	}
}

func TestSessionFetch(t *testing.T) {
	Convey("Given a session against a test server", t, func() {
		var (
			seen      []url.Values
			userAgent string
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.UserAgent()
			provider(3, &seen)(w, r)
		}))
		defer srv.Close()

		session := NewSession(Options{Timeout: 5 * time.Second, Token: "secret", UserAgent: "clipseek-test"})
		defer session.Close()

		Convey("Parameters, token and user agent are sent", func() {
			body, err := session.Fetch(context.Background(), srv.URL+"/method/video.search", url.Values{
				"q":      {"travel"},
				"count":  {"10"},
				"offset": {"0"},
			})

			So(err, ShouldBeNil)
			So(string(body), ShouldContainSubstring, `"items"`)
			So(seen, ShouldHaveLength, 1)
			So(seen[0].Get("q"), ShouldEqual, "travel")
			So(seen[0].Get("access_token"), ShouldEqual, "secret")
			So(userAgent, ShouldEqual, "clipseek-test")
		})
	})

	Convey("Given a server answering with a 502", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewSession(Options{}).Fetch(context.Background(), srv.URL, url.Values{})

		Convey("The status is reported as an error", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "502")
		})
	})

	Convey("Given a cancelled context", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewSession(Options{}).Fetch(ctx, srv.URL, url.Values{})

		Convey("The request fails without reaching the server", func() {
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDialerWithSearchClient(t *testing.T) {
	Convey("Given a provider with 23 videos", t, func() {
		var seen []url.Values
		srv := httptest.NewServer(provider(23, &seen))
		defer srv.Close()

		settings := search.Settings{BaseURL: srv.URL + "/method/", APIVersion: "5.131"}
		client := search.NewClient(settings, Dialer(Options{Timeout: 5 * time.Second}))

		Convey("A search walks every page until the short one", func() {
			videos, err := client.Search(context.Background(), search.Query{
				Text:     "travel",
				PageSize: 10,
				MaxPages: 5,
				Sort:     search.Popularity,
			})

			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 23)
			So(seen, ShouldHaveLength, 3)
			So(seen[2].Get("offset"), ShouldEqual, "20")
			So(seen[0].Has("access_token"), ShouldBeFalse)
		})
	})

	Convey("Given a provider that goes away", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		addr := srv.URL
		srv.Close()

		client := search.NewClient(search.Settings{BaseURL: addr, APIVersion: "5.131"}, Dialer(Options{Timeout: time.Second}))
		_, err := client.Search(context.Background(), search.Query{Text: "x", PageSize: 5, MaxPages: 2, Sort: search.Recency})

		Convey("The failure surfaces as a transport error", func() {
			var te *search.TransportError
			So(err, ShouldHaveSameTypeAs, te)
		})
	})
}
