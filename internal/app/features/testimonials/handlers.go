// internal/app/features/testimonials/handlers.go
package testimonials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	testimonialstore "github.com/robilprogramer/portofolio-sub001/internal/app/store/testimonials"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/gates"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /api/public/testimonials with an optional
// featured=true filter.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	published := true
	f := testimonialstore.Filter{Published: &published}
	if query.Get(r, "featured") == "true" {
		t := true
		f.Featured = &t
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.List(ctx, f)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list testimonials", err, "Failed to fetch testimonials")
		return
	}
	envelope.OK(w, rows)
}

// ServeAdminList handles GET /api/admin/testimonials.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAdmin(w, r); !res.OK {
		return
	}

	var f testimonialstore.Filter
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
		h.ErrLog.ServerError(w, r, "admin list testimonials", err, "Failed to fetch testimonials")
		return
	}
	envelope.OK(w, rows)
}

// HandleCreate handles POST /api/admin/testimonials.
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
		h.ErrLog.ServerError(w, r, "create testimonial", err, "Failed to create testimonial")
		return
	}

	h.Log.Info("testimonial created",
		zap.String("testimonial_id", created.ID),
		zap.String("author", created.AuthorName),
		zap.String("by", res.UserID))
	envelope.Created(w, created)
}

// HandleUpdate handles PUT /api/admin/testimonials/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Testimonial not found")
			return
		}
		h.ErrLog.ServerError(w, r, "update testimonial", err, "Failed to update testimonial")
		return
	}

	h.Log.Info("testimonial updated",
		zap.String("testimonial_id", id),
		zap.String("by", res.UserID))
	envelope.OK(w, updated)
}

// HandleDelete handles DELETE /api/admin/testimonials/{id}.
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
			envelope.Fail(w, http.StatusNotFound, "Testimonial not found")
			return
		}
		h.ErrLog.ServerError(w, r, "delete testimonial", err, "Failed to delete testimonial")
		return
	}

	h.Log.Info("testimonial deleted",
		zap.String("testimonial_id", id),
		zap.String("by", res.UserID))
	envelope.OKMessage(w, "Testimonial deleted")
}
