// internal/store/search.go
//
// Global content search.  A single JOIN resolves the visibility chain
// (field → section → page) in the database, so one search is one query
// regardless of how many pages exist.  Matching is case-insensitive
// substring via LIKE with escaped metacharacters.
package store

import (
	"context"
	"strings"
)

// SearchHit is one matched content field together with the page and
// section that make it reachable.
type SearchHit struct {
	FieldID     uint64 `db:"field_id" json:"field_id"`
	ContentType string `db:"content_type" json:"content_type"`
	Content     string `db:"content" json:"content"`
	SectionName string `db:"section_name" json:"section_name"`
	PageName    string `db:"page_name" json:"page_name"`
	PageLink    string `db:"page_link" json:"page_link"`
}

// escapeLike neutralises LIKE metacharacters so user input matches
// literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// SearchContent finds visible, search-opted-in content fields whose text
// contains the query, restricted to visible sections on visible
// non-system pages.  Style sidecar rows never match.  An empty query
// returns no hits.
func (s *Store) SearchContent(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	const q = `SELECT c.id AS field_id, c.content_type, c.content,
                      sc.section_name, p.page_name, p.page_link
                 FROM site_content c
                 JOIN site_config sc ON sc.section_name = c.section
                 JOIN pages p        ON p.page_name = sc.page
                WHERE c.include_in_global_search = 1
                  AND c.is_visible = 1
                  AND sc.is_visible = 1
                  AND p.is_visible = 1
                  AND p.is_system_page = 0
                  AND c.content_type NOT LIKE '%\_style'
                  AND LOWER(c.content) LIKE ?
                ORDER BY p.display_order, p.id, sc.display_order, sc.id,
                         c.display_order, c.id
                LIMIT ?`
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	var hits []SearchHit
	if err := s.db.SelectContext(ctx, &hits, q, pattern, limit); err != nil {
		return nil, err
	}
	return hits, nil
}
