// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"database/sql"

	"gorm.io/gorm"
)

// DBDeps holds database dependencies for the app. GORM is the layer the
// stores use; the raw *sql.DB underneath is kept for ping checks and
// shutdown.
type DBDeps struct {
	DB    *gorm.DB
	SQLDB *sql.DB
}
