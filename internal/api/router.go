package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Clem0-o7/csetechutsav25-user-admin-backend/docs"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/api/handler"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/api/middleware"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/ports"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/service"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/infrastructure/config"
	mongodb "github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/infrastructure/db/redis"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/infrastructure/mail"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil: the login throttle is then disabled and login proceeds
// unthrottled.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderSetCookie},
	}))
	e.Use(echoprometheus.NewMiddleware("techutsav_admin"))

	// --- Dependencies ---
	registrantRepo := mongodb.NewRegistrantRepository(db)
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		User:        cfg.SMTP.User,
		Pass:        cfg.SMTP.Pass,
		SenderName:  cfg.SMTP.SenderName,
		SenderEmail: cfg.SMTP.SenderEmail,
	})

	tokens := service.NewTokenService(cfg.SecretKey)
	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginLimiter(rdb)
	}
	authService := service.NewAuthService(cfg.Admins.CredentialTable(), tokens, throttle, log)
	registrantService := service.NewRegistrantService(registrantRepo, mailer, log)

	authHandler := handler.NewAuthHandler(authService)
	registrantHandler := handler.NewRegistrantHandler(registrantService)

	session := middleware.Session(tokens)
	adminOnly := middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleDepartmentAdmin)

	// --- Auth ---
	e.POST("/", authHandler.Login)

	// --- Protected admin routes ---
	e.GET("/getData", registrantHandler.List, session, adminOnly)
	e.GET("/getPaymentImage/:id", registrantHandler.PaymentImage, session, adminOnly)
	e.PUT("/update", registrantHandler.UpdatePayment, session, adminOnly)
	e.GET("/downloadData", registrantHandler.Download, session, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
