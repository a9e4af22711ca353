// internal/app/system/search/search_test.go
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"go", "%go%"},
		{"  cli tool ", "%cli tool%"},
		{"100%", `%100\%%`},
		{"snake_case", `%snake\_case%`},
		{`back\slash`, `%back\\slash%`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LikePattern(tc.in), "input %q", tc.in)
	}
}
