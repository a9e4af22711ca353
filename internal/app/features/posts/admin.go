// internal/app/features/posts/admin.go
package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	poststore "github.com/robilprogramer/portofolio-sub001/internal/app/store/posts"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/gates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/paging"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/search"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeAdminList handles GET /api/admin/posts: drafts included.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r); !res.OK {
		return
	}

	pg := paging.Parse(r)

	f := poststore.Filter{
		Category: query.Get(r, "category"),
		Tag:      query.Get(r, "tag"),
		Search:   search.LikePattern(query.Get(r, "q")),
	}
	switch query.Get(r, "published") {
	case "true":
		t := true
		f.Published = &t
	case "false":
		ff := false
		f.Published = &ff
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, f, pg.Offset(), pg.Limit)
	if err != nil {
		h.ErrLog.ServerError(w, r, "admin list posts", err, "Failed to fetch posts")
		return
	}
	envelope.Paginated(w, rows, envelope.NewPagination(total, pg.Number, pg.Limit))
}

// HandleCreate handles POST /api/admin/posts.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAdmin(w, r)
	if !res.OK {
		return
	}

	var in createInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		envelope.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		envelope.ValidationFailed(w, errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, in.toModel())
	if err != nil {
		if errors.Is(err, poststore.ErrDuplicateSlug) {
			envelope.Fail(w, http.StatusConflict, "A post with this slug already exists")
			return
		}
		h.ErrLog.ServerError(w, r, "create post", err, "Failed to create post")
		return
	}

	h.Log.Info("post created",
		zap.String("post_id", created.ID),
		zap.String("slug", created.Slug),
		zap.String("by", res.UserID))
	envelope.Created(w, created)
}

// HandleUpdate handles PUT /api/admin/posts/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAdmin(w, r)
	if !res.OK {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		envelope.Fail(w, http.StatusBadRequest, "ID is required")
		return
	}

	var in updateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		envelope.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		envelope.ValidationFailed(w, errs)
		return
	}
	changes := in.changes()
	if len(changes) == 0 {
		envelope.Fail(w, http.StatusBadRequest, "No fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.Update(ctx, id, changes)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			envelope.Fail(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, poststore.ErrDuplicateSlug):
			envelope.Fail(w, http.StatusConflict, "A post with this slug already exists")
		default:
			h.ErrLog.ServerError(w, r, "update post", err, "Failed to update post")
		}
		return
	}

	h.Log.Info("post updated",
		zap.String("post_id", id),
		zap.String("by", res.UserID))
	envelope.OK(w, updated)
}

// HandleDelete handles DELETE /api/admin/posts/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAdmin(w, r)
	if !res.OK {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		envelope.Fail(w, http.StatusBadRequest, "ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			envelope.Fail(w, http.StatusNotFound, "Post not found")
			return
		}
		h.ErrLog.ServerError(w, r, "delete post", err, "Failed to delete post")
		return
	}

	h.Log.Info("post deleted",
		zap.String("post_id", id),
		zap.String("by", res.UserID))
	envelope.OKMessage(w, "Post deleted")
}
