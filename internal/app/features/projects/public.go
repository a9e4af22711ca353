// internal/app/features/projects/public.go
package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	projectstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/projects"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/paging"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// viewResult is the payload of a successful view-count increment.
type viewResult struct {
	Slug      string `json:"slug"`
	ViewCount int64  `json:"view_count"`
}

// ServeList handles GET /api/public/projects. Only published projects
// are visible here; publication state is enforced in the query, not by
// post-filtering a page.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	pg := paging.Parse(r)

	published := true
	f := projectstore.Filter{Published: &published}
	if s := query.Get(r, "status"); s != "" {
		f.Status = s
	}
	if s := query.Get(r, "featured"); s == "true" {
		t := true
		f.Featured = &t
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, f, pg.Offset(), pg.Limit)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list projects", err, "Failed to fetch projects")
		return
	}
	envelope.Paginated(w, rows, envelope.NewPagination(total, pg.Number, pg.Limit))
}

// ServeBySlug handles GET /api/public/projects/{slug}. Unpublished and
// nonexistent slugs return the same 404.
func (h *Handler) ServeBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		envelope.Fail(w, http.StatusBadRequest, "Slug is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			envelope.Fail(w, http.StatusNotFound, "Project not found")
			return
		}
		h.ErrLog.ServerError(w, r, "get project by slug", err, "Failed to fetch project")
		return
	}
	envelope.OK(w, p)
}

// HandleView handles POST /api/public/projects/{slug}/view: an atomic
// counter bump that returns the new total.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		envelope.Fail(w, http.StatusBadRequest, "Slug is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Store.IncrementViews(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			envelope.Fail(w, http.StatusNotFound, "Project not found")
			return
		}
		h.ErrLog.ServerError(w, r, "increment project views", err, "Failed to record view")
		return
	}
	envelope.OK(w, viewResult{Slug: slug, ViewCount: count})
}
