// Package brapi implements a minimal client for the brapi.dev quote API,
// used as a best-effort, last-resort source of quote-type metadata when a
// holding cannot be classified locally.
package brapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://brapi.dev/api"

// Client queries brapi.dev. The zero value is not usable, use New.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client. The token may be empty for the free tier.
func New(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithBaseURL creates a client against a specific endpoint, for tests.
func NewWithBaseURL(baseURL, token string) *Client {
	c := New(token)
	c.baseURL = baseURL
	return c
}

/*
	{
	    "results": [
	        {
	            "symbol": "PETR4",
	            "shortName": "PETROBRAS PN",
	            "currency": "BRL",
	            "quoteType": "EQUITY"
	        }
	    ]
	}
*/
func (c *Client) QuoteType(ctx context.Context, ticker string) (string, error) {
	addr := fmt.Sprintf("%s/quote/%s?fundamental=false", c.baseURL, url.PathEscape(ticker))
	if c.token != "" {
		addr += "&token=" + url.QueryEscape(c.token)
	}

	var jobj any
	if err := c.jwget(ctx, addr, &jobj); err != nil {
		return "", fmt.Errorf("error retrieving quote for %q: %w", ticker, err)
	}

	path := "$.results[0].quoteType"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing quote for %q: %q %w", ticker, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing quote for %q: %q not a string %v", ticker, path, jval)
	}
	return val, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func (c *Client) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
