// internal/web/admin.go
//
// Admin API handlers.  Every route below is mounted behind the bearer
// token middleware (see server.go); bodies are JSON DTOs validated in
// internal/admin before any write.
//
// Scoping is explicit: the sections list takes ?page=, the content list
// takes ?section=.  There is no server-side "currently selected"
// state — each request names its own scope.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/admin"
)

func (s *Server) mountAdminRoutes(r chi.Router) {
	r.Route("/pages", func(r chi.Router) {
		r.Get("/", s.listJSON(func(req *http.Request) (any, error) {
			return s.admin.ListPages(req.Context())
		}))
		r.Post("/", s.createPage)
		r.Put("/", s.updatePage)
		r.Delete("/{id}", s.deleteByID(s.admin.DeletePage))
		r.Post("/move", s.move(s.admin.MovePage))
	})

	r.Route("/sections", func(r chi.Router) {
		r.Get("/", s.listJSON(func(req *http.Request) (any, error) {
			return s.admin.ListSections(req.Context(), req.URL.Query().Get("page"))
		}))
		r.Post("/", s.createSection)
		r.Put("/", s.updateSection)
		r.Delete("/{id}", s.deleteByID(s.admin.DeleteSection))
		r.Post("/move", s.move(s.admin.MoveSection))
	})

	r.Route("/content", func(r chi.Router) {
		r.Get("/", s.listJSON(func(req *http.Request) (any, error) {
			return s.admin.ListContent(req.Context(), req.URL.Query().Get("section"))
		}))
		r.Post("/", s.saveContent)
		r.Put("/", s.saveContent)
		r.Delete("/{id}", s.deleteByID(s.admin.DeleteContent))
		r.Post("/move", s.move(s.admin.MoveContent))
	})

	r.Route("/navigation", func(r chi.Router) {
		r.Get("/", s.listJSON(func(req *http.Request) (any, error) {
			return s.admin.ListNavigation(req.Context())
		}))
		r.Post("/", s.saveNavigation)
		r.Put("/", s.saveNavigation)
		r.Delete("/{id}", s.deleteByID(s.admin.DeleteNavigation))
		r.Post("/move", s.move(s.admin.MoveNavigation))
	})

	r.Route("/menu", func(r chi.Router) {
		r.Get("/", s.listJSON(func(req *http.Request) (any, error) {
			return s.admin.ListMenu(req.Context())
		}))
		r.Post("/", s.saveMenu)
		r.Put("/", s.saveMenu)
		r.Delete("/{id}", s.deleteByID(s.admin.DeleteMenu))
		r.Post("/move", s.move(s.admin.MoveMenu))
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", s.listJSON(func(req *http.Request) (any, error) {
			return s.admin.ListProjects(req.Context())
		}))
		r.Post("/", s.saveProject)
		r.Put("/", s.saveProject)
		r.Delete("/{id}", s.deleteByID(s.admin.DeleteProject))
	})

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", s.listJSON(func(req *http.Request) (any, error) {
			return s.admin.ListArticles(req.Context())
		}))
		r.Post("/", s.saveArticle)
		r.Put("/", s.saveArticle)
		r.Delete("/{id}", s.deleteByID(s.admin.DeleteArticle))
	})

	r.Route("/settings", func(r chi.Router) {
		r.Get("/", s.listJSON(func(req *http.Request) (any, error) {
			return s.admin.Settings(req.Context())
		}))
		r.Put("/", s.saveSetting)
	})

	r.Get("/stats/visits", func(w http.ResponseWriter, req *http.Request) {
		n, err := s.admin.VisitCount(req.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"visits": n})
	})

	r.Get("/messages", func(w http.ResponseWriter, req *http.Request) {
		limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
		msgs, err := s.admin.ContactMessages(req.Context(), limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	})
}

//
// Login (mounted outside the token gate)
//

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in admin.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}
	res, err := s.admin.Login(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

//
// Generic handler builders
//

// listJSON adapts a list call to a GET handler.
func (s *Server) listJSON(fn func(*http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// deleteByID adapts a delete call to a DELETE /{id} handler.
func (s *Server) deleteByID(fn func(ctx context.Context, id uint64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		if err := fn(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

// move adapts a reorder call to a POST /move handler.
func (s *Server) move(fn func(ctx context.Context, in admin.MoveInput) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in admin.MoveInput
		if !decodeJSON(w, r, &in) {
			return
		}
		if err := fn(r.Context(), in); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"moved": true})
	}
}

//
// Entity-specific bodies
//

func (s *Server) createPage(w http.ResponseWriter, r *http.Request) {
	var in admin.PageInput
	if !decodeJSON(w, r, &in) {
		return
	}
	id, err := s.admin.CreatePage(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *Server) updatePage(w http.ResponseWriter, r *http.Request) {
	var in admin.PageInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := s.admin.UpdatePage(r.Context(), in); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (s *Server) createSection(w http.ResponseWriter, r *http.Request) {
	var in admin.SectionInput
	if !decodeJSON(w, r, &in) {
		return
	}
	id, err := s.admin.CreateSection(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *Server) updateSection(w http.ResponseWriter, r *http.Request) {
	var in admin.SectionInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := s.admin.UpdateSection(r.Context(), in); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (s *Server) saveContent(w http.ResponseWriter, r *http.Request) {
	var in admin.ContentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	id, err := s.admin.SaveContent(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"id": id})
}

func (s *Server) saveNavigation(w http.ResponseWriter, r *http.Request) {
	var in admin.NavigationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	id, err := s.admin.SaveNavigation(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"id": id})
}

func (s *Server) saveMenu(w http.ResponseWriter, r *http.Request) {
	var in admin.MenuInput
	if !decodeJSON(w, r, &in) {
		return
	}
	id, err := s.admin.SaveMenu(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"id": id})
}

func (s *Server) saveSetting(w http.ResponseWriter, r *http.Request) {
	var in admin.SettingInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := s.admin.SaveSetting(r.Context(), in); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

func (s *Server) saveProject(w http.ResponseWriter, r *http.Request) {
	var in admin.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	id, err := s.admin.SaveProject(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"id": id})
}

func (s *Server) saveArticle(w http.ResponseWriter, r *http.Request) {
	var in admin.ArticleInput
	if !decodeJSON(w, r, &in) {
		return
	}
	id, err := s.admin.SaveArticle(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"id": id})
}

// decodeJSON reads a body into dst, answering 400 on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}
