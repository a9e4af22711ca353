// internal/app/features/projects/admin.go
package projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	projectstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/projects"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/gates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/paging"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/search"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeAdminList handles GET /api/admin/projects: every project,
// published or not, optionally filtered by status and published.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r); !res.OK {
		return
	}

	pg := paging.Parse(r)

	var f projectstore.Filter
	if s := query.Get(r, "status"); s != "" {
		f.Status = s
	}
	switch query.Get(r, "published") {
	case "true":
		t := true
		f.Published = &t
	case "false":
		ff := false
		f.Published = &ff
	}
	f.Search = search.LikePattern(query.Get(r, "q"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, total, err := h.Store.List(ctx, f, pg.Offset(), pg.Limit)
	if err != nil {
		h.ErrLog.ServerError(w, r, "admin list projects", err, "Failed to fetch projects")
		return
	}
	envelope.Paginated(w, rows, envelope.NewPagination(total, pg.Number, pg.Limit))
}

// HandleCreate handles POST /api/admin/projects.
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
		if errors.Is(err, projectstore.ErrDuplicateSlug) {
			envelope.Fail(w, http.StatusConflict, "A project with this slug already exists")
			return
		}
		h.ErrLog.ServerError(w, r, "create project", err, "Failed to create project")
		return
	}

	h.Log.Info("project created",
		zap.String("project_id", created.ID),
		zap.String("slug", created.Slug),
		zap.String("by", res.UserID))
	envelope.Created(w, created)
}

// HandleUpdate handles PUT /api/admin/projects/{id}: a partial update,
// only fields present in the body change.
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
			envelope.Fail(w, http.StatusNotFound, "Project not found")
		case errors.Is(err, projectstore.ErrDuplicateSlug):
			envelope.Fail(w, http.StatusConflict, "A project with this slug already exists")
		default:
			h.ErrLog.ServerError(w, r, "update project", err, "Failed to update project")
		}
		return
	}

	h.Log.Info("project updated",
		zap.String("project_id", id),
		zap.String("by", res.UserID))
	envelope.OK(w, updated)
}

// HandleDelete handles DELETE /api/admin/projects/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Project not found")
			return
		}
		h.ErrLog.ServerError(w, r, "delete project", err, "Failed to delete project")
		return
	}

	h.Log.Info("project deleted",
		zap.String("project_id", id),
		zap.String("by", res.UserID))
	envelope.OKMessage(w, "Project deleted")
}
