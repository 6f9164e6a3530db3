// Package news assembles provider search results into the response
// envelope the API serves.
package news

import (
	"context"
	"net/http"
	"strings"

	"newskeep/internal/domain/entity"
	"newskeep/internal/infra/newsapi"
)

// Defaults applied when a request omits a parameter.
const (
	DefaultQuery    = "world"
	DefaultCategory = "general"
	DefaultLanguage = "en"
	DefaultPage     = 1
	DefaultPageSize = 80
)

// Provider is the slice of the news client this service needs.
type Provider interface {
	Everything(ctx context.Context, q newsapi.Query) (*newsapi.Response, error)
	TopHeadlines(ctx context.Context, q newsapi.Query) (*newsapi.Response, error)
	EverythingRaw(ctx context.Context, q newsapi.Query) (*newsapi.RawResult, error)
}

// Envelope is the uniform payload for the envelope-style endpoints.
// Status doubles as the HTTP status code the handler writes.
type Envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *newsapi.Response `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type Service struct {
	Provider Provider
}

// EverythingParams are the caller-supplied search parameters. Zero
// values fall back to the package defaults.
type EverythingParams struct {
	Q        string
	Page     int
	PageSize int
}

// Everything searches all indexed articles. Failures are folded into
// the envelope, never returned.
func (s *Service) Everything(ctx context.Context, p EverythingParams) *Envelope {
	q := newsapi.Query{
		Q:        defaultString(p.Q, DefaultQuery),
		Page:     defaultInt(p.Page, DefaultPage),
		PageSize: defaultInt(p.PageSize, DefaultPageSize),
	}
	resp, err := s.Provider.Everything(ctx, q)
	return envelopeFor(resp, err)
}

// TopHeadlinesParams are the caller-supplied headline parameters. Zero
// values fall back to the package defaults.
type TopHeadlinesParams struct {
	Category string
	Language string
	Page     int
	PageSize int
}

// TopHeadlines returns current headlines. Failures are folded into the
// envelope, never returned.
func (s *Service) TopHeadlines(ctx context.Context, p TopHeadlinesParams) *Envelope {
	q := newsapi.Query{
		Category: defaultString(p.Category, DefaultCategory),
		Language: defaultString(p.Language, DefaultLanguage),
		Page:     defaultInt(p.Page, DefaultPage),
		PageSize: defaultInt(p.PageSize, DefaultPageSize),
	}
	resp, err := s.Provider.TopHeadlines(ctx, q)
	return envelopeFor(resp, err)
}

// SearchParams are the caller-supplied parameters for the verbatim
// search endpoint. Q is required; the rest default like Everything.
type SearchParams struct {
	Q        string
	Language string
	Page     int
	PageSize int
}

// Search runs a provider search and returns the provider payload
// verbatim. An empty query is a validation error; a non-"ok" provider
// status surfaces as *newsapi.ProviderError.
func (s *Service) Search(ctx context.Context, p SearchParams) ([]byte, error) {
	if strings.TrimSpace(p.Q) == "" {
		return nil, &entity.ValidationError{Field: "q", Message: "q is required"}
	}

	raw, err := s.Provider.EverythingRaw(ctx, newsapi.Query{
		Q:        p.Q,
		Language: p.Language,
		Page:     defaultInt(p.Page, DefaultPage),
		PageSize: defaultInt(p.PageSize, DefaultPageSize),
	})
	if err != nil {
		return nil, err
	}
	if raw.Status != "ok" {
		return nil, &newsapi.ProviderError{Code: raw.Code, Message: raw.Message}
	}
	return raw.Body, nil
}

func envelopeFor(resp *newsapi.Response, err error) *Envelope {
	if err != nil {
		return &Envelope{
			Status:  http.StatusInternalServerError,
			Success: false,
			Message: "failed",
			Error:   err.Error(),
		}
	}

	// An empty result set keeps data out of the envelope entirely;
	// clients key off the message, not an empty article list.
	if resp.TotalResults == 0 {
		return &Envelope{
			Status:  http.StatusOK,
			Success: true,
			Message: "No results",
		}
	}
	return &Envelope{
		Status:  http.StatusOK,
		Success: true,
		Message: "Success",
		Data:    resp,
	}
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func defaultInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
