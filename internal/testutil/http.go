package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/auth"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// AdminUser returns session claims with the ADMIN role.
func AdminUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    uuid.NewString(),
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  models.RoleAdmin,
	}
}

// SuperAdminUser returns session claims with the SUPER_ADMIN role.
func SuperAdminUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    uuid.NewString(),
		Name:  "Test Superadmin",
		Email: "root@test.com",
		Role:  models.RoleSuperAdmin,
	}
}

// WithUser injects claims into the request context, bypassing the
// session middleware.
func WithUser(r *http.Request, u *auth.SessionUser) *http.Request {
	return auth.WithTestUser(r, u)
}

// NewJSONRequest builds a request with a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Envelope is the decoded API response wrapper used in assertions.
type Envelope struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors"`
	Pagination *struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
		Pages int   `json:"pages"`
	} `json:"pagination"`
}

// DecodeEnvelope parses the recorded response body into an Envelope.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}

// DecodeData unmarshals the envelope's data field into out.
func DecodeData(t *testing.T, env Envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode envelope data: %v (data: %s)", err, string(env.Data))
	}
}
