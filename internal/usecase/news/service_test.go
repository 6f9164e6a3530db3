package news_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"newskeep/internal/domain/entity"
	"newskeep/internal/infra/newsapi"
	"newskeep/internal/usecase/news"
)

type stubProvider struct {
	gotQuery newsapi.Query

	resp *newsapi.Response
	raw  *newsapi.RawResult
	err  error
}

func (s *stubProvider) Everything(_ context.Context, q newsapi.Query) (*newsapi.Response, error) {
	s.gotQuery = q
	return s.resp, s.err
}

func (s *stubProvider) TopHeadlines(_ context.Context, q newsapi.Query) (*newsapi.Response, error) {
	s.gotQuery = q
	return s.resp, s.err
}

func (s *stubProvider) EverythingRaw(_ context.Context, q newsapi.Query) (*newsapi.RawResult, error) {
	s.gotQuery = q
	return s.raw, s.err
}

func TestService_Everything_Defaults(t *testing.T) {
	provider := &stubProvider{resp: &newsapi.Response{Status: "ok", TotalResults: 3}}
	svc := &news.Service{Provider: provider}

	env := svc.Everything(context.Background(), news.EverythingParams{})

	want := newsapi.Query{Q: "world", Page: 1, PageSize: 80}
	if provider.gotQuery != want {
		t.Errorf("query = %+v, want %+v", provider.gotQuery, want)
	}
	if env.Status != http.StatusOK || !env.Success || env.Message != "Success" {
		t.Errorf("envelope = %+v", env)
	}
	if env.Data == nil || env.Data.TotalResults != 3 {
		t.Errorf("data = %+v", env.Data)
	}
}

func TestService_Everything_NoResults(t *testing.T) {
	provider := &stubProvider{resp: &newsapi.Response{Status: "ok", TotalResults: 0}}
	svc := &news.Service{Provider: provider}

	env := svc.Everything(context.Background(), news.EverythingParams{Q: "zyzzyva"})
	if env.Message != "No results" || !env.Success {
		t.Errorf("envelope = %+v", env)
	}
	if env.Data != nil {
		t.Errorf("data = %+v, want it omitted when there are no results", env.Data)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := fields["data"]; ok {
		t.Errorf("serialized envelope = %s, want no data key", raw)
	}
}

func TestService_Everything_ProviderDown(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	svc := &news.Service{Provider: provider}

	env := svc.Everything(context.Background(), news.EverythingParams{})
	if env.Status != http.StatusInternalServerError || env.Success {
		t.Errorf("envelope = %+v", env)
	}
	if env.Message != "failed" || env.Error == "" {
		t.Errorf("envelope = %+v", env)
	}
	if env.Data != nil {
		t.Errorf("data should be empty on failure, got %+v", env.Data)
	}
}

func TestService_TopHeadlines_Defaults(t *testing.T) {
	provider := &stubProvider{resp: &newsapi.Response{Status: "ok", TotalResults: 1}}
	svc := &news.Service{Provider: provider}

	env := svc.TopHeadlines(context.Background(), news.TopHeadlinesParams{})

	want := newsapi.Query{Category: "general", Language: "en", Page: 1, PageSize: 80}
	if provider.gotQuery != want {
		t.Errorf("query = %+v, want %+v", provider.gotQuery, want)
	}
	if env.Status != http.StatusOK || env.Message != "Success" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestService_TopHeadlines_PassesParams(t *testing.T) {
	provider := &stubProvider{resp: &newsapi.Response{Status: "ok", TotalResults: 1}}
	svc := &news.Service{Provider: provider}

	svc.TopHeadlines(context.Background(), news.TopHeadlinesParams{
		Category: "technology",
		Language: "de",
		Page:     3,
		PageSize: 20,
	})

	want := newsapi.Query{Category: "technology", Language: "de", Page: 3, PageSize: 20}
	if provider.gotQuery != want {
		t.Errorf("query = %+v, want %+v", provider.gotQuery, want)
	}
}

func TestService_Search(t *testing.T) {
	const payload = `{"status":"ok","totalResults":1,"articles":[]}`
	provider := &stubProvider{raw: &newsapi.RawResult{Body: []byte(payload), Status: "ok"}}
	svc := &news.Service{Provider: provider}

	body, err := svc.Search(context.Background(), news.SearchParams{Q: "golang"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if string(body) != payload {
		t.Errorf("body = %s, want the provider payload verbatim", body)
	}
	if provider.gotQuery.Q != "golang" || provider.gotQuery.PageSize != 80 {
		t.Errorf("query = %+v", provider.gotQuery)
	}
}

func TestService_Search_MissingQuery(t *testing.T) {
	svc := &news.Service{Provider: &stubProvider{}}

	for _, q := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), news.SearchParams{Q: q})
		var vErr *entity.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("Search(q=%q) = %v, want ValidationError", q, err)
		}
	}
}

func TestService_Search_ProviderStatusError(t *testing.T) {
	provider := &stubProvider{raw: &newsapi.RawResult{
		Body:    []byte(`{"status":"error","code":"rateLimited","message":"too many requests"}`),
		Status:  "error",
		Code:    "rateLimited",
		Message: "too many requests",
	}}
	svc := &news.Service{Provider: provider}

	_, err := svc.Search(context.Background(), news.SearchParams{Q: "golang"})

	var pErr *newsapi.ProviderError
	if !errors.As(err, &pErr) {
		t.Fatalf("Search = %v, want ProviderError", err)
	}
	if pErr.Message != "too many requests" {
		t.Errorf("message = %q", pErr.Message)
	}
}
