// internal/app/system/limits/limits.go
package limits

// Request body size caps for unauthenticated endpoints. These endpoints
// accept input from anyone, so oversized payloads are cut off before the
// JSON decoder allocates for them.
const (
	// MaxLoginBody caps POST /api/auth/login payloads.
	MaxLoginBody = 4 << 10 // 4 KB

	// MaxPageViewBody caps POST /api/public/analytics/pageview payloads.
	MaxPageViewBody = 8 << 10 // 8 KB
)
