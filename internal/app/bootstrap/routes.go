// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	analyticsfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/analytics"
	authfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/authsession"
	certificatesfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/certificates"
	educationsfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/educations"
	experiencesfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/experiences"
	healthfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/health"
	postsfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/posts"
	profilefeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/profile"
	projectsfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/projects"
	skillsfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/skills"
	sociallinksfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/sociallinks"
	testimonialsfeature "github.com/robilprogramer/portofolio-sub001/internal/app/features/testimonials"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/auth"
	"github.com/robilprogramer/portofolio-sub001/internal/app/system/errlog"
	"github.com/robilprogramer/portofolio-sub001/internal/domain/models"
)

// BuildHandler constructs the root HTTP handler (router) for the app.
//
// WAFFLE calls this after configuration, DB connection, schema setup,
// and the Startup hook have completed.
//
// The API splits into three surfaces:
//   - /api/public/*: anonymous reads of published content
//   - /api/auth/*:   session lifecycle
//   - /api/admin/*:  full CRUD, gated by a signed-in admin session
//
// Admin handlers additionally re-check the session themselves, so a
// route wired outside the gated subtree by mistake still refuses
// anonymous mutations.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	errLog := errlog.New(logger)

	profileH := profilefeature.NewHandler(deps.DB, errLog, logger)
	projectsH := projectsfeature.NewHandler(deps.DB, errLog, logger)
	postsH := postsfeature.NewHandler(deps.DB, errLog, logger)
	skillsH := skillsfeature.NewHandler(deps.DB, errLog, logger)
	experiencesH := experiencesfeature.NewHandler(deps.DB, errLog, logger)
	educationsH := educationsfeature.NewHandler(deps.DB, errLog, logger)
	certificatesH := certificatesfeature.NewHandler(deps.DB, errLog, logger)
	testimonialsH := testimonialsfeature.NewHandler(deps.DB, errLog, logger)
	socialLinksH := sociallinksfeature.NewHandler(deps.DB, errLog, logger)
	analyticsH := analyticsfeature.NewHandler(deps.DB, errLog, logger)
	authH := authfeature.NewHandler(deps.DB, sessionMgr, errLog, logger)
	healthH := healthfeature.NewHandler(deps.SQLDB, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	r.Mount("/health", healthfeature.Routes(healthH))
	r.Mount("/api/auth", authfeature.Routes(authH))

	r.Route("/api/public", func(r chi.Router) {
		r.Mount("/profile", profilefeature.PublicRoutes(profileH))
		r.Mount("/projects", projectsfeature.PublicRoutes(projectsH))
		r.Mount("/posts", postsfeature.PublicRoutes(postsH))
		r.Mount("/skills", skillsfeature.PublicRoutes(skillsH))
		r.Mount("/experiences", experiencesfeature.PublicRoutes(experiencesH))
		r.Mount("/education", educationsfeature.PublicRoutes(educationsH))
		r.Mount("/certificates", certificatesfeature.PublicRoutes(certificatesH))
		r.Mount("/testimonials", testimonialsfeature.PublicRoutes(testimonialsH))
		r.Mount("/social-links", sociallinksfeature.PublicRoutes(socialLinksH))
		r.Mount("/analytics", analyticsfeature.PublicRoutes(analyticsH))
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(sessionMgr.RequireSignedIn)
		r.Use(sessionMgr.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))

		r.Mount("/profile", profilefeature.AdminRoutes(profileH))
		r.Mount("/projects", projectsfeature.AdminRoutes(projectsH))
		r.Mount("/posts", postsfeature.AdminRoutes(postsH))
		r.Mount("/skills", skillsfeature.AdminRoutes(skillsH))
		r.Mount("/experiences", experiencesfeature.AdminRoutes(experiencesH))
		r.Mount("/education", educationsfeature.AdminRoutes(educationsH))
		r.Mount("/certificates", certificatesfeature.AdminRoutes(certificatesH))
		r.Mount("/testimonials", testimonialsfeature.AdminRoutes(testimonialsH))
		r.Mount("/social-links", sociallinksfeature.AdminRoutes(socialLinksH))
		r.Mount("/analytics", analyticsfeature.AdminRoutes(analyticsH))
	})

	logger.Info("router built",
		zap.String("env", coreCfg.Env),
		zap.Bool("secure_cookies", secure))

	return r, nil
}
