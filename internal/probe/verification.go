package probe

import (
	"context"
	"fmt"
	"net/http"
)

// check pairs a named expectation with the request that exercises it.
type check struct {
	name string
	run  func(ctx context.Context, client *HTTPClient, baseURL string) error
}

// endpointChecks returns the full probe suite for the catalog API.
func endpointChecks() []check {
	return []check{
		{
			name: "items default paging returns the full catalog",
			run: func(ctx context.Context, client *HTTPClient, baseURL string) error {
				items, status, err := fetchItems(ctx, client, baseURL+"/items/")
				if err != nil {
					return err
				}
				if status != http.StatusOK {
					return fmt.Errorf("unexpected status: %d", status)
				}
				if len(items) != 3 {
					return fmt.Errorf("expected 3 items, got %d", len(items))
				}
				return nil
			},
		},
		{
			name: "items skip=1 limit=1 returns the second record",
			run: func(ctx context.Context, client *HTTPClient, baseURL string) error {
				items, status, err := fetchItems(ctx, client, baseURL+"/items/?skip=1&limit=1")
				if err != nil {
					return err
				}
				if status != http.StatusOK {
					return fmt.Errorf("unexpected status: %d", status)
				}
				if len(items) != 1 || items[0].ItemName != "Bar" {
					return fmt.Errorf("expected [Bar], got %v", items)
				}
				return nil
			},
		},
		{
			name: "items with skip past the catalog returns an empty array",
			run: func(ctx context.Context, client *HTTPClient, baseURL string) error {
				items, status, err := fetchItems(ctx, client, baseURL+"/items/?skip=10")
				if err != nil {
					return err
				}
				if status != http.StatusOK {
					return fmt.Errorf("unexpected status: %d", status)
				}
				if len(items) != 0 {
					return fmt.Errorf("expected empty result, got %v", items)
				}
				return nil
			},
		},
		{
			name: "items with a non-integer skip is rejected with 422",
			run: func(ctx context.Context, client *HTTPClient, baseURL string) error {
				return expectValidationError(ctx, client, baseURL+"/items/?skip=abc", "skip")
			},
		},
		{
			name: "search echoes the query with empty results",
			run: func(ctx context.Context, client *HTTPClient, baseURL string) error {
				resp, err := client.Get(ctx, baseURL+"/search/?q=foo")
				if err != nil {
					return err
				}
				body, err := readResponseBody(resp)
				if err != nil {
					return err
				}
				if resp.StatusCode != http.StatusOK {
					return fmt.Errorf("unexpected status: %d", resp.StatusCode)
				}
				var result SearchResult
				if err := unmarshalJSON(body, &result); err != nil {
					return fmt.Errorf("failed to decode envelope: %w", err)
				}
				if result.Query != "foo" {
					return fmt.Errorf("expected query echo 'foo', got %q", result.Query)
				}
				if len(result.Results) != 0 {
					return fmt.Errorf("expected empty results, got %d entries", len(result.Results))
				}
				return nil
			},
		},
		{
			name: "search without q is rejected with 422",
			run: func(ctx context.Context, client *HTTPClient, baseURL string) error {
				return expectValidationError(ctx, client, baseURL+"/search/", "q")
			},
		},
	}
}

// fetchItems performs a listing request and decodes the item array.
func fetchItems(ctx context.Context, client *HTTPClient, url string) ([]Item, int, error) {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, 0, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}
	var items []Item
	if err := unmarshalJSON(body, &items); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, resp.StatusCode, nil
}

// expectValidationError asserts a 422 response naming the given field.
func expectValidationError(ctx context.Context, client *HTTPClient, url, field string) error {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		return fmt.Errorf("expected 422, got %d", resp.StatusCode)
	}
	var errBody ErrorBody
	if err := unmarshalJSON(body, &errBody); err != nil {
		return fmt.Errorf("failed to decode error body: %w", err)
	}
	if errBody.Field != field {
		return fmt.Errorf("expected error field %q, got %q", field, errBody.Field)
	}
	if errBody.Code == "" || errBody.Message == "" {
		return fmt.Errorf("error body missing code or message: %+v", errBody)
	}
	return nil
}
