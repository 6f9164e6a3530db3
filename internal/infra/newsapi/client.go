// Package newsapi is an HTTP client for a NewsAPI-compatible news
// provider (https://newsapi.org/docs).
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	everythingPath   = "/v2/everything"
	topHeadlinesPath = "/v2/top-headlines"
)

// Source identifies the outlet an article came from.
type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// Article mirrors the provider's article document. The provider returns
// null for missing fields, which decode to zero values here.
type Article struct {
	Source      Source    `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
}

// Response is the provider's top-level payload. Code and Message are
// only populated when Status is "error".
type Response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// RawResult carries the provider's body verbatim plus the decoded
// status fields, for callers that forward the payload untouched.
type RawResult struct {
	Body    []byte
	Status  string
	Code    string
	Message string
}

// Query holds the request parameters shared by both provider endpoints.
// Zero-valued fields are omitted from the request.
type Query struct {
	Q        string
	Category string
	Language string
	Page     int
	PageSize int
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Language != "" {
		v.Set("language", q.Language)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return v
}

// ProviderError is returned when the provider answers with a non-"ok"
// status payload.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("news provider error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("news provider error: %s", e.Message)
}

// Client calls the provider over HTTP.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a Client with an HTTP client bound to the
// configured timeout.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Everything searches all indexed articles.
func (c *Client) Everything(ctx context.Context, q Query) (*Response, error) {
	return c.get(ctx, everythingPath, q)
}

// TopHeadlines returns current headlines, optionally filtered by
// category and language.
func (c *Client) TopHeadlines(ctx context.Context, q Query) (*Response, error) {
	return c.get(ctx, topHeadlinesPath, q)
}

// EverythingRaw searches all indexed articles and returns the provider
// body verbatim alongside the decoded status fields.
func (c *Client) EverythingRaw(ctx context.Context, q Query) (*RawResult, error) {
	body, err := c.fetch(ctx, everythingPath, q)
	if err != nil {
		return nil, err
	}

	var peek struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &peek); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	return &RawResult{Body: body, Status: peek.Status, Code: peek.Code, Message: peek.Message}, nil
}

func (c *Client) get(ctx context.Context, path string, q Query) (*Response, error) {
	body, err := c.fetch(ctx, path, q)
	if err != nil {
		return nil, err
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	if out.Status != "ok" {
		return nil, &ProviderError{Code: out.Code, Message: out.Message}
	}
	return &out, nil
}

func (c *Client) fetch(ctx context.Context, path string, q Query) ([]byte, error) {
	params := q.values()
	params.Set("apiKey", c.config.APIKey)
	endpoint := c.config.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full request URL, API key included.
		// Keep only the underlying cause.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	// The provider reports failures in the payload status field and
	// mirrors it in the HTTP status. A non-2xx answer with a JSON body
	// still decodes; anything else surfaces as a plain error.
	if resp.StatusCode >= 500 && !json.Valid(body) {
		return nil, fmt.Errorf("news provider returned status %d", resp.StatusCode)
	}
	return body, nil
}
