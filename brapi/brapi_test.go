package brapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQuoteType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quote/PETR4" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"results":[{"symbol":"PETR4","shortName":"PETROBRAS PN","currency":"BRL","quoteType":"EQUITY"}]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL, "")
	got, err := c.QuoteType(context.Background(), "PETR4")
	if err != nil {
		t.Fatalf("QuoteType() error = %v", err)
	}
	if got != "EQUITY" {
		t.Errorf("QuoteType() = %q, want %q", got, "EQUITY")
	}
}

func TestQuoteTypeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL, "")
	if _, err := c.QuoteType(context.Background(), "NOPE999"); err == nil {
		t.Fatal("QuoteType() expected an error on 404")
	}
}

func TestQuoteTypeEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL, "")
	if _, err := c.QuoteType(context.Background(), "XXXX11"); err == nil {
		t.Fatal("QuoteType() expected an error on empty results")
	}
}

func TestQuoteTypeToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("token"); got != "secret" {
			t.Errorf("token = %q, want %q", got, "secret")
		}
		w.Write([]byte(`{"results":[{"quoteType":"CRYPTOCURRENCY"}]}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL, "secret")
	got, err := c.QuoteType(context.Background(), "BTC-USD")
	if err != nil {
		t.Fatalf("QuoteType() error = %v", err)
	}
	if got != "CRYPTOCURRENCY" {
		t.Errorf("QuoteType() = %q, want %q", got, "CRYPTOCURRENCY")
	}
}
