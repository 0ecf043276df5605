package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/config"
	"github.com/DhavalSuthar-24/clubhub/internal/athlete"
	"github.com/DhavalSuthar-24/clubhub/internal/auth"
	"github.com/DhavalSuthar-24/clubhub/internal/club"
	"github.com/DhavalSuthar-24/clubhub/internal/contact"
	"github.com/DhavalSuthar-24/clubhub/internal/enrollment"
	"github.com/DhavalSuthar-24/clubhub/internal/event"
	"github.com/DhavalSuthar-24/clubhub/internal/match"
	"github.com/DhavalSuthar-24/clubhub/internal/middleware"
	"github.com/DhavalSuthar-24/clubhub/internal/permission"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/internal/result"
	"github.com/DhavalSuthar-24/clubhub/internal/role"
	"github.com/DhavalSuthar-24/clubhub/internal/statistic"
	"github.com/DhavalSuthar-24/clubhub/internal/transfer"
	"github.com/DhavalSuthar-24/clubhub/internal/user"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	"github.com/DhavalSuthar-24/clubhub/pkg/metrics"
	"github.com/DhavalSuthar-24/clubhub/pkg/ratelimit"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
	"github.com/DhavalSuthar-24/clubhub/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
)

// Deps are the collaborators the router hands to the feature packages.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Store  storage.ObjectStore
	Clock  clock.Clock
	Logger *slog.Logger
	// Notifier defaults to auth.LogNotifier.
	Notifier auth.Notifier
}

func SetupRoutes(d Deps) *gin.Engine {
	if d.Clock == nil {
		d.Clock = clock.System()
	}
	if d.Notifier == nil {
		d.Notifier = auth.LogNotifier{}
	}
	cfg := d.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default()) // allows all origins
	r.Use(logging.Middleware(d.Logger))
	r.Use(metrics.Middleware())

	r.Static("/public", "./public")

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/healthz", healthz(d.DB))

	refs := refcheck.New(d.DB)
	table := rmiddleware.NewTable()

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, d.DB), rmiddleware.Gate(table))

	authSvc := auth.NewService(auth.NewAuthRepository(d.DB), d.Clock, d.Notifier, auth.Options{
		JWTSecret:   cfg.JWT.AccessTokenSecret,
		TokenExpiry: cfg.AccessTokenExpiry(),
		FrontendURL: cfg.App.FrontendURL,
	})
	limiter := ratelimit.New(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	auth.RegisterAuthRoutes(api, protected, table, authSvc, limiter.Middleware())

	user.RegisterRoutes(protected, table, user.NewService(user.NewUserRepository(d.DB), refs))
	role.RegisterRoutes(protected, table, role.NewService(role.NewRoleRepository(d.DB)))
	permission.RegisterRoutes(protected, table, permission.NewService(permission.NewPermissionRepository(d.DB)))

	stats := statistic.NewService(statistic.NewStatisticRepository(d.DB), refs)
	contacts := contact.NewService(contact.NewContactRepository(d.DB), refs)

	club.RegisterRoutes(protected, table, club.NewService(club.NewClubRepository(d.DB), refs, d.Clock, d.Store))
	athlete.RegisterRoutes(protected, table, athlete.NewService(athlete.NewAthleteRepository(d.DB), d.Store), contacts, stats)
	contact.RegisterRoutes(protected, table, contacts)
	transfer.RegisterRoutes(protected, table, transfer.NewService(transfer.NewTransferRepository(d.DB), refs, d.Clock))
	event.RegisterRoutes(protected, table, event.NewService(event.NewEventRepository(d.DB), refs, d.Clock))
	enrollment.RegisterRoutes(protected, table, enrollment.NewService(enrollment.NewEnrollmentRepository(d.DB), refs, d.Clock))
	match.RegisterRoutes(protected, table, match.NewService(match.NewMatchRepository(d.DB), refs, d.Clock), stats)
	result.RegisterRoutes(protected, table, result.NewService(result.NewResultRepository(d.DB), refs))
	statistic.RegisterRoutes(protected, table, stats)

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			logging.FromContext(c.Request.Context()).Error("health check failed", "error", err)
			responses.SendError(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
