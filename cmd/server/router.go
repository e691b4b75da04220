package main

import (
	"context"
	"time"

	"medibase/cmd/server/handlers"
	authHandlers "medibase/cmd/server/handlers/auth"
	doctorsHandlers "medibase/cmd/server/handlers/doctors"
	documentsHandlers "medibase/cmd/server/handlers/documents"
	"medibase/cmd/server/handlers/httperr"
	medicalHandlers "medibase/cmd/server/handlers/medical"
	patientsHandlers "medibase/cmd/server/handlers/patients"
	"medibase/cmd/server/middlewares"
	"medibase/internal/clients/mongo"
	"medibase/internal/config"
	"medibase/internal/logger"
	"medibase/internal/mailer"
	authServices "medibase/internal/services/auth"
	doctorsServices "medibase/internal/services/doctors"
	documentsServices "medibase/internal/services/documents"
	medicalServices "medibase/internal/services/medical"
	patientsServices "medibase/internal/services/patients"
	"medibase/internal/utils/crypto"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const (
	RateLimitExpiration = 1 * time.Minute
)

// setupRouter configures and returns a Fiber app with all routes
func setupRouter(ctx context.Context, cfg config.Config) *fiber.App {

	// Initialize validator and register password validation
	v := validator.New()
	if err := crypto.RegisterPasswordValidator(v); err != nil {
		logger.L().Error("failed to register password validator", "err", err)
		panic(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(middlewares.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
	}))

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app)
	}

	// Health check endpoint, outside versioned API to appease scanners and to avoid logging
	app.Get("/healthz", handlers.Healthz)

	var v1 fiber.Router
	if cfg.RequestLoggingEnabled {
		v1 = app.Group("/api/v1", fiberlogger.New())
		logger.L().Info("request logging enabled")
	} else {
		v1 = app.Group("/api/v1")
		logger.L().Info("request logging disabled")
	}

	jwtMiddleware := middlewares.JWT(cfg)
	limiterMW := middlewares.BuildRateLimiter(cfg.AuthRatePerMin, RateLimitExpiration)

	// Repositories (shared users collection + per-record collections)
	usersRepo := mongo.NewUsersRepo(mongo.DB())
	if err := usersRepo.EnsureIndexes(ctx); err != nil {
		logger.L().Error("failed to create user indexes", "error", err)
		panic(err)
	}
	doctorsRepo := mongo.NewDoctorsRepo(mongo.DB())
	patientsRepo := mongo.NewPatientsRepo(mongo.DB())
	vaccinationsRepo := mongo.NewVaccinationsRepo(mongo.DB())
	if err := vaccinationsRepo.EnsureIndexes(ctx); err != nil {
		logger.L().Error("failed to create vaccination indexes", "error", err)
		panic(err)
	}
	allergiesRepo := mongo.NewAllergiesRepo(mongo.DB())
	if err := allergiesRepo.EnsureIndexes(ctx); err != nil {
		logger.L().Error("failed to create allergy indexes", "error", err)
		panic(err)
	}
	documentsRepo := mongo.NewDocumentsRepo(mongo.DB())

	// Services
	authSvc := authServices.NewService(usersRepo, mailer.New(cfg), cfg, logger.L())
	doctorsSvc := doctorsServices.NewService(doctorsRepo, cfg, logger.L())
	patientsSvc := patientsServices.NewService(patientsRepo, cfg, logger.L())
	medicalSvc := medicalServices.NewService(vaccinationsRepo, allergiesRepo, patientsSvc, logger.L())
	documentsSvc := documentsServices.NewService(documentsRepo, logger.L())

	// Handlers
	authH := authHandlers.NewHandlers(authSvc, v)
	doctorsH := doctorsHandlers.NewHandlers(doctorsSvc, v)
	patientsH := patientsHandlers.NewHandlers(patientsSvc, v)
	medicalH := medicalHandlers.NewHandlers(medicalSvc, v)
	documentsH := documentsHandlers.NewHandlers(documentsSvc, v)

	// Public auth routes share one rate-limit bucket
	authGrp := v1.Group("/auth", limiterMW)
	authGrp.Post("/login", authH.Login)
	authGrp.Post("/forgot-password", authH.ForgotPassword)
	authGrp.Post("/reset-password", authH.ResetPassword)
	v1.Put("/auth/password", jwtMiddleware, authH.UpdatePassword)

	v1.Get("/me", jwtMiddleware, authH.Me)

	// Doctors
	doctorsGrp := v1.Group("/doctors", jwtMiddleware)
	doctorsGrp.Post("/", middlewares.RequireRoles(authServices.RoleAdmin), doctorsH.Create)
	doctorsGrp.Get("/:id", doctorsH.Get)

	// Patients and their medical sub-records
	patientsGrp := v1.Group("/patients", jwtMiddleware)
	patientsGrp.Post("/", middlewares.RequireRoles(authServices.RoleDoctor, authServices.RoleAdmin), patientsH.Create)
	patientsGrp.Put("/me/vaccination-schedule",
		middlewares.RequireRoles(authServices.RolePatient, authServices.RoleAdmin), medicalH.PutVaccinationSchedule)
	patientsGrp.Put("/me/allergies",
		middlewares.RequireRoles(authServices.RolePatient, authServices.RoleAdmin), medicalH.PutAllergyData)
	patientsGrp.Get("/:id", patientsH.Get)

	// Documents
	v1.Post("/documents", jwtMiddleware, documentsH.Upload)

	return app
}
