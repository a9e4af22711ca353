// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"path/filepath"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the portfolio service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: sqlite_path, session_name, etc.
//   - Environment variables: PORTFOLIO_SQLITE_PATH, PORTFOLIO_SESSION_NAME, etc.
//   - Command-line flags: --sqlite_path, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "sqlite_path", Default: "./data/portfolio.db", Desc: "SQLite database file path"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "portfolio_session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// SuperAdmin bootstrap
	{Name: "superadmin_email", Default: "", Desc: "Email of the superadmin account (created on startup if missing)"},
	{Name: "superadmin_password", Default: "", Desc: "Initial password for the superadmin account"},
	{Name: "superadmin_name", Default: "Site Owner", Desc: "Display name for the superadmin account"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL of the public frontend"},

	{Name: "analytics_retention_days", Default: 365, Desc: "Days to keep raw pageview rows (0 disables pruning)"},
}

const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PORTFOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SQLitePath: appValues.String("sqlite_path"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		SuperAdminEmail:    appValues.String("superadmin_email"),
		SuperAdminPassword: appValues.String("superadmin_password"),
		SuperAdminName:     appValues.String("superadmin_name"),

		BaseURL: appValues.String("base_url"),

		AnalyticsRetentionDays: appValues.Int("analytics_retention_days"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Catching bad config here means the process dies with a clear message
// instead of failing on the first request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SQLitePath == "" {
		return fmt.Errorf("sqlite_path must not be empty")
	}
	if !filepath.IsLocal(appCfg.SQLitePath) && !filepath.IsAbs(appCfg.SQLitePath) {
		return fmt.Errorf("sqlite_path %q is not a valid path", appCfg.SQLitePath)
	}

	if coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		return fmt.Errorf("session_key still has the development default; set PORTFOLIO_SESSION_KEY")
	}

	if appCfg.SuperAdminEmail != "" && appCfg.SuperAdminPassword == "" {
		return fmt.Errorf("superadmin_email is set but superadmin_password is empty")
	}

	if appCfg.AnalyticsRetentionDays < 0 {
		return fmt.Errorf("analytics_retention_days must not be negative")
	}

	return nil
}
