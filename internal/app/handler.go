package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dms-backend/internal/adapter/filestore"
	"github.com/heartmarshall/dms-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/dms-backend/internal/adapter/postgres/audit"
	documentrepo "github.com/heartmarshall/dms-backend/internal/adapter/postgres/document"
	notificationrepo "github.com/heartmarshall/dms-backend/internal/adapter/postgres/notification"
	permissionrepo "github.com/heartmarshall/dms-backend/internal/adapter/postgres/permission"
	userrepo "github.com/heartmarshall/dms-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/dms-backend/internal/auth"
	"github.com/heartmarshall/dms-backend/internal/config"
	"github.com/heartmarshall/dms-backend/internal/service/dashboard"
	notificationsvc "github.com/heartmarshall/dms-backend/internal/service/notification"
	usersvc "github.com/heartmarshall/dms-backend/internal/service/user"
	"github.com/heartmarshall/dms-backend/internal/service/workflow"
	"github.com/heartmarshall/dms-backend/internal/transport/dataloader"
	"github.com/heartmarshall/dms-backend/internal/transport/middleware"
	"github.com/heartmarshall/dms-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and transport into the root HTTP
// handler. The returned stop function releases background resources.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, files *filestore.Store, logger *slog.Logger) (http.Handler, func()) {
	// Repositories.
	users := userrepo.New(pool)
	documents := documentrepo.New(pool)
	requests := permissionrepo.New(pool)
	notifications := notificationrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services.
	workflowSvc := workflow.NewService(logger, documents, requests, users, audit, notifications, tx)
	userSvc := usersvc.NewService(logger, users, audit, tx)
	notificationSvc := notificationsvc.NewService(logger, notifications)
	dashboardSvc := dashboard.NewService(logger, documents, requests, notifications)

	// Identity.
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	identity := auth.NewIdentityResolver(jwt, users)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Documents: rest.NewDocumentHandler(workflowSvc, files, rest.PageConfig{
			DefaultSize: cfg.Documents.DefaultPageSize,
			MaxSize:     cfg.Documents.MaxPageSize,
		}, cfg.Storage.MaxUploadBytes, logger),
		Permissions:   rest.NewPermissionHandler(workflowSvc, logger),
		Notifications: rest.NewNotificationHandler(notificationSvc, logger),
		Dashboard:     rest.NewDashboardHandler(dashboardSvc, logger),
		Users:         rest.NewUserHandler(userSvc, logger),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(identity),
		middleware.Logger(logger),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		dataloader.Middleware(&dataloader.Repos{User: users}),
	)

	return chain(router), limiter.Stop
}
