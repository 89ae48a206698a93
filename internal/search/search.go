// internal/search/search.go
//
// Global site search.
//
// A search is one JOIN query against the content store (store.SearchContent
// resolves the field → section → page visibility chain in SQL), followed by
// snippet extraction and highlighting per hit.  Rich-text values are reduced
// to plain text before matching so markup never leaks into a snippet.
package search

import (
	"context"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/sanitize"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

// DefaultLimit caps the hits returned per query.
const DefaultLimit = 50

// Result is one hit, ready for rendering or JSON output.
type Result struct {
	PageName    string `json:"page_name"`
	PageLink    string `json:"page_link"`
	SectionName string `json:"section_name"`
	ContentType string `json:"content_type"`
	Snippet     string `json:"snippet"` // pre-escaped HTML with <mark> wrappers
}

// Searcher names the store capability this package needs; *store.Store
// satisfies it.
type Searcher interface {
	SearchContent(ctx context.Context, query string, limit int) ([]store.SearchHit, error)
}

// Service runs queries and shapes results.
type Service struct {
	store Searcher
	limit int
}

// New returns a Service with the default result limit.
func New(st Searcher) *Service {
	return &Service{store: st, limit: DefaultLimit}
}

// Search runs one query.  An empty or whitespace term returns no
// results and touches no storage.
func (s *Service) Search(ctx context.Context, term string) ([]Result, error) {
	metrics.SearchTotal.Inc()

	hits, err := s.store.SearchContent(ctx, term, s.limit)
	if err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(hits))
	for _, h := range hits {
		plain := sanitize.Plain(h.Content)
		out = append(out, Result{
			PageName:    h.PageName,
			PageLink:    h.PageLink,
			SectionName: h.SectionName,
			ContentType: h.ContentType,
			Snippet:     string(Highlight(Snippet(plain, term), term)),
		})
	}
	return out, nil
}
