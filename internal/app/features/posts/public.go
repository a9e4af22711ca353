// internal/app/features/posts/public.go
package posts

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	poststore "github.com/robilprogramer/portofolio-sub001/internal/app/store/posts"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/paging"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

type viewResult struct {
	Slug      string `json:"slug"`
	ViewCount int64  `json:"view_count"`
}

// ServeList handles GET /api/public/posts with optional category and
// tag filters. Only published posts are visible.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	pg := paging.Parse(r)

	published := true
	f := poststore.Filter{
		Category:  query.Get(r, "category"),
		Tag:       query.Get(r, "tag"),
		Published: &published,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, f, pg.Offset(), pg.Limit)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list posts", err, "Failed to fetch posts")
		return
	}
	envelope.Paginated(w, rows, envelope.NewPagination(total, pg.Number, pg.Limit))
}

// ServeBySlug handles GET /api/public/posts/{slug}. Unpublished and
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
			envelope.Fail(w, http.StatusNotFound, "Post not found")
			return
		}
		h.ErrLog.ServerError(w, r, "get post by slug", err, "Failed to fetch post")
		return
	}
	envelope.OK(w, p)
}

// HandleView handles POST /api/public/posts/{slug}/view.
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
			envelope.Fail(w, http.StatusNotFound, "Post not found")
			return
		}
		h.ErrLog.ServerError(w, r, "increment post views", err, "Failed to record view")
		return
	}
	envelope.OK(w, viewResult{Slug: slug, ViewCount: count})
}
