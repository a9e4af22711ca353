// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to the portfolio
// service. Values are loaded in LoadConfig from config files,
// PORTFOLIO_* environment variables, or command-line flags.
type AppConfig struct {
	// SQLite storage
	SQLitePath string // database file path (e.g., ./data/portfolio.db)

	// Session management
	SessionKey    string // secret key for signing session cookies
	SessionName   string // cookie name
	SessionDomain string // cookie domain (blank means current host)

	// SuperAdmin bootstrap: when both are set and no account with the
	// email exists, one is created at startup.
	SuperAdminEmail    string
	SuperAdminPassword string
	SuperAdminName     string

	// Base URL of the public frontend, used in absolute links.
	BaseURL string

	// AnalyticsRetentionDays controls how long raw pageview rows are
	// kept before the retention worker prunes them. Zero disables
	// pruning.
	AnalyticsRetentionDays int
}
