// internal/web/public.go
//
// Public-site handlers: page renders, search, contact, and the 404
// fallback.
//
// Failure semantics: a data problem never produces a hard error page.
// A missing page renders the 404 template; a store failure renders the
// hardcoded fallback copy and logs the cause.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/form"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/message"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/view"
)

// handlePage renders one public page; "/" maps to the "home" link.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	link := chi.URLParam(r, "page")
	if link == "" {
		link = "home"
	}

	data, err := s.pages.BuildPage(r.Context(), link)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.handleNotFound(w, r)
		return
	case err != nil:
		metrics.PageRenderErrorsTotal.Inc()
		zap.S().Errorw("page build failed", "page", link, "error", err)
		data = view.FallbackPage()
	}

	if tok, err := form.GenerateToken(); err == nil {
		data.CSRF = tok
	}
	data.RenderTS = time.Now().UnixMicro()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.views.Render(w, "page", data); err != nil {
		metrics.PageRenderErrorsTotal.Inc()
		zap.S().Errorw("template render failed", "page", link, "error", err)
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := s.views.Render(w, "notfound", nil); err != nil {
		zap.S().Errorw("notfound render failed", "error", err)
	}
}

//
// Search
//

type searchPageData struct {
	Query   string
	Results []searchRow
}

type searchRow struct {
	PageName    string
	PageLink    string
	SectionName string
	SnippetHTML template.HTML
}

func (s *Server) handleSearchHTML(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := s.search.Search(r.Context(), query)
	if err != nil {
		// Swallowed to an empty result list; the visitor just sees no
		// hits.
		zap.S().Errorw("search failed", "query", query, "error", err)
		results = nil
	}

	data := searchPageData{Query: query}
	for _, res := range results {
		data.Results = append(data.Results, searchRow{
			PageName:    res.PageName,
			PageLink:    res.PageLink,
			SectionName: res.SectionName,
			SnippetHTML: template.HTML(res.Snippet),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.views.Render(w, "search", data); err != nil {
		zap.S().Errorw("search render failed", "error", err)
	}
}

func (s *Server) handleSearchJSON(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results, err := s.search.Search(r.Context(), query)
	if err != nil {
		zap.S().Errorw("search failed", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
	})
}

//
// Contact
//

// handleContact validates a contact submission against the YAML form
// definition, persists it, and enqueues a notification email.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed form data")
		return
	}

	clean, errs := form.ValidateForm("contact", r.PostForm)
	if len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": errs,
		})
		return
	}

	msg := store.ContactMessage{
		Name:    stringField(clean, "name"),
		Email:   stringField(clean, "email"),
		Subject: stringField(clean, "subject"),
		Body:    stringField(clean, "body"),
	}
	id, err := s.store.InsertContactMessage(r.Context(), msg)
	if err != nil {
		zap.S().Errorw("contact insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save your message")
		return
	}

	_ = message.EnqueueEmail(r.Context(), message.Email{
		To:      []string{"owner"},
		Subject: "New contact message: " + msg.Subject,
		Text:    msg.Body,
	})

	// Plain form posts bounce back to the site; API clients get JSON.
	if r.Header.Get("Accept") == "application/json" {
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
		return
	}
	http.Redirect(w, r, "/?sent=1", http.StatusSeeOther)
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}
