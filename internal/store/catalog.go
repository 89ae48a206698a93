// internal/store/catalog.go
//
// Query helpers for `projects` and `articles`.
package store

import (
	"context"
	"fmt"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
)

// Projects returns every project, newest first.
func (s *Store) Projects(ctx context.Context) ([]Project, error) {
	v, err := s.cache.get(cacheKey(TableProjects, "all"), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TableProjects).Inc()
		const q = `SELECT id, title, description, image_url, tags, link,
                          created_at, updated_at
                     FROM projects
                    ORDER BY created_at DESC, id DESC`
		var rows []Project
		if err := s.db.SelectContext(ctx, &rows, q); err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Project), nil
}

// CreateProject inserts one project.
func (s *Store) CreateProject(ctx context.Context, p Project) (uint64, error) {
	const q = `INSERT INTO projects (title, description, image_url, tags, link)
            VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, p.Title, p.Description, p.ImageURL, p.Tags, p.Link)
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	id, _ := res.LastInsertId()
	s.afterWrite(TableProjects, "insert")
	return uint64(id), nil
}

// UpdateProject patches one project.
func (s *Store) UpdateProject(ctx context.Context, p Project) error {
	const q = `UPDATE projects
                  SET title = ?, description = ?, image_url = ?, tags = ?, link = ?
                WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, q,
		p.Title, p.Description, p.ImageURL, p.Tags, p.Link, p.ID); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	s.afterWrite(TableProjects, "update")
	return nil
}

// DeleteProject removes one project.
func (s *Store) DeleteProject(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, TableProjects, id)
}

// Articles returns every article, newest publication date first.
func (s *Store) Articles(ctx context.Context) ([]Article, error) {
	v, err := s.cache.get(cacheKey(TableArticles, "all"), func() (any, error) {
		metrics.StoreQueryTotal.WithLabelValues(TableArticles).Inc()
		const q = `SELECT id, title, category, excerpt, content, date,
                          read_time, link, created_at, updated_at
                     FROM articles
                    ORDER BY date DESC, id DESC`
		var rows []Article
		if err := s.db.SelectContext(ctx, &rows, q); err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Article), nil
}

// CreateArticle inserts one article.
func (s *Store) CreateArticle(ctx context.Context, a Article) (uint64, error) {
	const q = `INSERT INTO articles (title, category, excerpt, content, date, read_time, link)
            VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q,
		a.Title, a.Category, a.Excerpt, a.Content, a.Date, a.ReadTime, a.Link)
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	id, _ := res.LastInsertId()
	s.afterWrite(TableArticles, "insert")
	return uint64(id), nil
}

// UpdateArticle patches one article.
func (s *Store) UpdateArticle(ctx context.Context, a Article) error {
	const q = `UPDATE articles
                  SET title = ?, category = ?, excerpt = ?, content = ?,
                      date = ?, read_time = ?, link = ?
                WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, q,
		a.Title, a.Category, a.Excerpt, a.Content, a.Date, a.ReadTime, a.Link, a.ID); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	s.afterWrite(TableArticles, "update")
	return nil
}

// DeleteArticle removes one article.
func (s *Store) DeleteArticle(ctx context.Context, id uint64) error {
	return s.deleteByID(ctx, TableArticles, id)
}
