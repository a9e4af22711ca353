// internal/app/features/skills/handlers.go
package skills

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	skillstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/skills"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/gates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /api/public/skills. The set is small, so the
// response is the full published list: grouped by category, then
// display order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	published := true
	f := skillstore.Filter{
		Category:  query.Get(r, "category"),
		Published: &published,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.List(ctx, f)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list skills", err, "Failed to fetch skills")
		return
	}
	envelope.OK(w, rows)
}

// ServeAdminList handles GET /api/admin/skills: unpublished included.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r); !res.OK {
		return
	}

	f := skillstore.Filter{Category: query.Get(r, "category")}
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

	rows, err := h.Store.List(ctx, f)
	if err != nil {
		h.ErrLog.ServerError(w, r, "admin list skills", err, "Failed to fetch skills")
		return
	}
	envelope.OK(w, rows)
}

// HandleCreate handles POST /api/admin/skills.
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
		h.ErrLog.ServerError(w, r, "create skill", err, "Failed to create skill")
		return
	}

	h.Log.Info("skill created",
		zap.String("skill_id", created.ID),
		zap.String("name", created.Name),
		zap.String("by", res.UserID))
	envelope.Created(w, created)
}

// HandleUpdate handles PUT /api/admin/skills/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Skill not found")
			return
		}
		h.ErrLog.ServerError(w, r, "update skill", err, "Failed to update skill")
		return
	}

	h.Log.Info("skill updated",
		zap.String("skill_id", id),
		zap.String("by", res.UserID))
	envelope.OK(w, updated)
}

// HandleDelete handles DELETE /api/admin/skills/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Skill not found")
			return
		}
		h.ErrLog.ServerError(w, r, "delete skill", err, "Failed to delete skill")
		return
	}

	h.Log.Info("skill deleted",
		zap.String("skill_id", id),
		zap.String("by", res.UserID))
	envelope.OKMessage(w, "Skill deleted")
}
