// internal/app/system/envelope/envelope.go

// Package envelope writes the uniform JSON wrapper used by every API
// response: { success, data?, message?, pagination? }.
//
// The shape is canonical across the whole API. Earlier clients saw two
// variants ({data} vs {success, data}); both field names are preserved
// here so the frontend can migrate without breakage.
package envelope

import (
	"encoding/json"
	"net/http"
)

// Pagination describes one page of a list response.
// Pages is always ceil(Total / Limit).
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPagination computes the pagination block for a list response.
func NewPagination(total int64, page, limit int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// body is the wire shape of every API response.
type body struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

func write(w http.ResponseWriter, status int, b body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(b)
}

// OK writes a 200 success envelope around data.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, body{Success: true, Data: data})
}

// OKMessage writes a 200 success envelope with a message and no data.
func OKMessage(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, body{Success: true, Message: msg})
}

// Created writes a 201 success envelope around the created record.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, body{Success: true, Data: data})
}

// CreatedMessage writes a 201 success envelope with a message and no data.
func CreatedMessage(w http.ResponseWriter, msg string) {
	write(w, http.StatusCreated, body{Success: true, Message: msg})
}

// Paginated writes a 200 success envelope with a pagination block.
func Paginated(w http.ResponseWriter, data any, p *Pagination) {
	write(w, http.StatusOK, body{Success: true, Data: data, Pagination: p})
}

// Fail writes a failure envelope with the given status and message.
// The message must be caller-safe; storage error detail never goes here.
func Fail(w http.ResponseWriter, status int, msg string) {
	write(w, status, body{Success: false, Message: msg})
}

// ValidationFailed writes a 400 envelope carrying structured field errors.
// Validation detail is the one failure class intentionally exposed to callers.
func ValidationFailed(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, body{Success: false, Message: "Validation failed", Errors: errs})
}
