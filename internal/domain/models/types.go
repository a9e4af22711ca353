// internal/domain/models/types.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a []string column as a JSON-encoded TEXT value.
// Used for Project.TechStack and Post.Tags, which are read and written
// as a unit and never queried element-by-element.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("StringList: unsupported source type %T", src)
	}
}

// Roles recognized by the admin authorization gate.
const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// IsAdminRole reports whether role grants access to the admin surface.
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
