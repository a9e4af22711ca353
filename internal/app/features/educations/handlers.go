// internal/app/features/educations/handlers.go
package educations

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

// ServeList handles GET /api/public/education.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.List(ctx, true)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list educations", err, "Failed to fetch education entries")
		return
	}
	envelope.OK(w, rows)
}

// ServeAdminList handles GET /api/admin/education.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.List(ctx, false)
	if err != nil {
		h.ErrLog.ServerError(w, r, "admin list educations", err, "Failed to fetch education entries")
		return
	}
	envelope.OK(w, rows)
}

// HandleCreate handles POST /api/admin/education.
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
		h.ErrLog.ServerError(w, r, "create education", err, "Failed to create education entry")
		return
	}

	h.Log.Info("education created",
		zap.String("education_id", created.ID),
		zap.String("institution", created.Institution),
		zap.String("by", res.UserID))
	envelope.Created(w, created)
}

// HandleUpdate handles PUT /api/admin/education/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Education entry not found")
			return
		}
		h.ErrLog.ServerError(w, r, "update education", err, "Failed to update education entry")
		return
	}

	h.Log.Info("education updated",
		zap.String("education_id", id),
		zap.String("by", res.UserID))
	envelope.OK(w, updated)
}

// HandleDelete handles DELETE /api/admin/education/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Education entry not found")
			return
		}
		h.ErrLog.ServerError(w, r, "delete education", err, "Failed to delete education entry")
		return
	}

	h.Log.Info("education deleted",
		zap.String("education_id", id),
		zap.String("by", res.UserID))
	envelope.OKMessage(w, "Education entry deleted")
}
