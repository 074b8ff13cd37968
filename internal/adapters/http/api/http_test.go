package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/curio/internal/adapters/http/api"
	"github.com/okian/curio/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing

type mockCatalog struct {
	items    []types.Item
	itemsErr error
}

func (m *mockCatalog) Items(ctx context.Context, skip, limit int) ([]types.Item, error) {
	if m.itemsErr != nil {
		return nil, m.itemsErr
	}
	if skip < 0 {
		skip = 0
	}
	if skip >= len(m.items) || limit <= 0 {
		return []types.Item{}, nil
	}
	end := skip + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[skip:end], nil
}

func (m *mockCatalog) Search(ctx context.Context, q string) (types.SearchResult, error) {
	return types.NewSearchResult(q), nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func defaultCatalog() *mockCatalog {
	return &mockCatalog{
		items: []types.Item{
			{ItemName: "Foo"},
			{ItemName: "Bar"},
			{ItemName: "Baz"},
		},
	}
}

func newTestMux(deps api.Dependencies) *http.ServeMux {
	statsProvider := &mockStatsProvider{stats: map[string]interface{}{"started": true}}
	server := api.NewServer(deps, statsProvider, 10)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		mux := newTestMux(defaultCatalog())

		Convey("When registering routes", func() {
			Convey("Then the health endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/healthz", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the stats endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/stats", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the items endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/items/", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And the search endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/search/?q=x", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And unknown routes should return 404", func() {
				req := httptest.NewRequest("GET", "/unknown", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestItemsEndpoint(t *testing.T) {
	Convey("Given the items endpoint over the three-item catalog", t, func() {
		mux := newTestMux(defaultCatalog())

		get := func(target string) *httptest.ResponseRecorder {
			req := httptest.NewRequest("GET", target, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			return w
		}

		decodeItems := func(w *httptest.ResponseRecorder) []types.Item {
			var items []types.Item
			So(json.Unmarshal(w.Body.Bytes(), &items), ShouldBeNil)
			return items
		}

		Convey("When requesting with no parameters", func() {
			w := get("/items/")

			Convey("Then all three items should come back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
				items := decodeItems(w)
				So(items, ShouldHaveLength, 3)
				So(items[0].ItemName, ShouldEqual, "Foo")
				So(items[1].ItemName, ShouldEqual, "Bar")
				So(items[2].ItemName, ShouldEqual, "Baz")
			})
		})

		Convey("When requesting skip=1 limit=1", func() {
			w := get("/items/?skip=1&limit=1")

			Convey("Then exactly the second item should come back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, `[{"item_name":"Bar"}]`)
			})
		})

		Convey("When skip points past the catalog", func() {
			w := get("/items/?skip=10")

			Convey("Then the response should be an empty array", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, `[]`)
			})
		})

		Convey("When skip fails integer coercion", func() {
			w := get("/items/?skip=abc")

			Convey("Then it should return 422 naming the field", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["code"], ShouldEqual, "invalid_parameter")
				So(body["field"], ShouldEqual, "skip")
			})
		})

		Convey("When limit fails integer coercion", func() {
			w := get("/items/?limit=ten")

			Convey("Then it should return 422 naming the field", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["code"], ShouldEqual, "invalid_parameter")
				So(body["field"], ShouldEqual, "limit")
			})
		})

		Convey("When the length law is checked for non-negative skip and limit", func() {
			for skip := 0; skip <= 5; skip++ {
				for limit := 0; limit <= 5; limit++ {
					w := get(fmt.Sprintf("/items/?skip=%d&limit=%d", skip, limit))
					So(w.Code, ShouldEqual, http.StatusOK)

					want := 3 - skip
					if want < 0 {
						want = 0
					}
					if limit < want {
						want = limit
					}
					So(decodeItems(w), ShouldHaveLength, want)
				}
			}
		})

		Convey("When using a non-GET method", func() {
			req := httptest.NewRequest("POST", "/items/", strings.NewReader(`{}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When requesting a subpath", func() {
			w := get("/items/extra")

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})

	Convey("Given a catalog whose reads fail", t, func() {
		mux := newTestMux(&mockCatalog{itemsErr: errors.New("boom")})

		Convey("When requesting the listing", func() {
			req := httptest.NewRequest("GET", "/items/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 500 with an error body", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["code"], ShouldEqual, "internal_error")
			})
		})
	})
}

func TestSearchEndpoint(t *testing.T) {
	Convey("Given the search endpoint", t, func() {
		mux := newTestMux(defaultCatalog())

		get := func(target string) *httptest.ResponseRecorder {
			req := httptest.NewRequest("GET", target, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			return w
		}

		Convey("When searching with a query", func() {
			w := get("/search/?q=foo")

			Convey("Then the envelope should echo the query with empty results", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, `{"query":"foo","results":[]}`)
			})
		})

		Convey("When the query matches an actual item name", func() {
			w := get("/search/?q=Foo")

			Convey("Then the results should still be empty", func() {
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, `{"query":"Foo","results":[]}`)
			})
		})

		Convey("When q is present but empty", func() {
			w := get("/search/?q=")

			Convey("Then it should count as supplied and echo the empty string", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, `{"query":"","results":[]}`)
			})
		})

		Convey("When q is missing", func() {
			w := get("/search/")

			Convey("Then it should return 422 naming the field", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["code"], ShouldEqual, "missing_parameter")
				So(body["field"], ShouldEqual, "q")
			})
		})

		Convey("When using a non-GET method", func() {
			req := httptest.NewRequest("DELETE", "/search/?q=x", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	Convey("Given routes wrapped with the request ID middleware", t, func() {
		mux := newTestMux(defaultCatalog())

		Convey("When a request carries no request ID", func() {
			req := httptest.NewRequest("GET", "/items/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the response should carry a generated one", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldNotBeEmpty)
			})
		})

		Convey("When a request supplies its own ID", func() {
			req := httptest.NewRequest("GET", "/search/?q=x", nil)
			req.Header.Set(api.RequestIDHeader, "req-42")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the response should echo it back", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "req-42")
			})
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given the stats endpoint", t, func() {
		mux := newTestMux(defaultCatalog())

		Convey("When fetching stats", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return the provider's snapshot", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var stats map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
				So(stats["started"], ShouldEqual, true)
			})
		})

		Convey("When using a non-GET method", func() {
			req := httptest.NewRequest("POST", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
