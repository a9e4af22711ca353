// internal/app/features/profile/handlers.go
package profile

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
)

// ServePublic handles GET /api/public/profile: the newest published
// profile, or 404 when none is live yet.
func (h *Handler) ServePublic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.LatestPublished(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			envelope.Fail(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.ErrLog.ServerError(w, r, "get public profile", err, "Failed to fetch profile")
		return
	}
	envelope.OK(w, p)
}

// ServeAdmin handles GET /api/admin/profile: the newest row whether or
// not it's published, so drafts stay editable.
func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.Latest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			envelope.Fail(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.ErrLog.ServerError(w, r, "get admin profile", err, "Failed to fetch profile")
		return
	}
	envelope.OK(w, p)
}

// HandleCreate handles POST /api/admin/profile. Each create is a new
// row; publishing it makes it the live profile.
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
		h.ErrLog.ServerError(w, r, "create profile", err, "Failed to create profile")
		return
	}

	h.Log.Info("profile created",
		zap.String("profile_id", created.ID),
		zap.String("by", res.UserID))
	envelope.Created(w, created)
}

// HandleUpdate handles PUT /api/admin/profile/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.ErrLog.ServerError(w, r, "update profile", err, "Failed to update profile")
		return
	}

	h.Log.Info("profile updated",
		zap.String("profile_id", id),
		zap.String("by", res.UserID))
	envelope.OK(w, updated)
}
