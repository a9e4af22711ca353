// internal/app/features/sociallinks/handlers.go
package sociallinks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/gates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /api/public/social-links: published links only,
// no owner detail.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.ListPublished(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list social links", err, "Failed to fetch social links")
		return
	}
	envelope.OK(w, rows)
}

// ServeAdminList handles GET /api/admin/social-links with the owning
// user preloaded.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r); !res.OK {
		return
	}

	var published *bool
	switch query.Get(r, "published") {
	case "true":
		t := true
		published = &t
	case "false":
		f := false
		published = &f
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.ListWithOwner(ctx, published)
	if err != nil {
		h.ErrLog.ServerError(w, r, "admin list social links", err, "Failed to fetch social links")
		return
	}
	envelope.OK(w, rows)
}

// HandleCreate handles POST /api/admin/social-links. The link is
// attributed to the session user.
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

	created, err := h.Store.Create(ctx, in.toModel(res.UserID))
	if err != nil {
		h.ErrLog.ServerError(w, r, "create social link", err, "Failed to create social link")
		return
	}

	h.Log.Info("social link created",
		zap.String("link_id", created.ID),
		zap.String("platform", created.Platform),
		zap.String("by", res.UserID))
	envelope.Created(w, created)
}

// HandleUpdate handles PUT /api/admin/social-links/{id}.
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
		if errors.Is(err, gorm.ErrRecordNotFound) {
			envelope.Fail(w, http.StatusNotFound, "Social link not found")
			return
		}
		h.ErrLog.ServerError(w, r, "update social link", err, "Failed to update social link")
		return
	}

	h.Log.Info("social link updated",
		zap.String("link_id", id),
		zap.String("by", res.UserID))
	envelope.OK(w, updated)
}

// HandleDelete handles DELETE /api/admin/social-links/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Social link not found")
			return
		}
		h.ErrLog.ServerError(w, r, "delete social link", err, "Failed to delete social link")
		return
	}

	h.Log.Info("social link deleted",
		zap.String("link_id", id),
		zap.String("by", res.UserID))
	envelope.OKMessage(w, "Social link deleted")
}
