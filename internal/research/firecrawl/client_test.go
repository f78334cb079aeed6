package firecrawl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer fc-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Query != "task tools alternatives" || req.Limit != 10 {
			t.Errorf("unexpected request %+v", req)
		}
		json.NewEncoder(w).Encode(searchResponse{
			Success: true,
			Data: []SearchResult{
				{Title: "Best task tools", URL: "https://example.com", Description: "desc"},
			},
		})
	}))
	t.Cleanup(srv.Close)

	client := NewClient("fc-key")
	client.baseURL = srv.URL

	results, err := client.Search(context.Background(), SearchRequest{
		Query:         "task tools alternatives",
		Limit:         10,
		ScrapeOptions: &ScrapeOptions{Formats: []string{"markdown"}, OnlyMainContent: true},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Best task tools" {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestSearchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewClient("fc-key")
	client.baseURL = srv.URL

	if _, err := client.Search(context.Background(), SearchRequest{Query: "q"}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
