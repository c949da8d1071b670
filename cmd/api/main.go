package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"parttimejobs/internal/handler"
	mid "parttimejobs/internal/middleware"
	"parttimejobs/internal/model"
	"parttimejobs/internal/repository"
	"parttimejobs/internal/service"
	"parttimejobs/internal/upload"
	"parttimejobs/pkg/config"
	"parttimejobs/pkg/database"
	"parttimejobs/pkg/jwtutil"
	"parttimejobs/pkg/logger"
	"parttimejobs/prometheus"
)

const serviceName = "parttimejobs-api"

func main() {
	appConfig, err := config.Load(serviceName)
	if err != nil {
		// Can't use the structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: serviceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting service", appConfig.LogConfig()...)

	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.Role{},
		&model.User{},
		&model.Student{},
		&model.Employer{},
		&model.JobCategory{},
		&model.Job{},
		&model.Application{},
		&model.ApplicationHistory{},
		&model.Contract{},
		&model.Payment{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := repository.SeedRoles(db); err != nil {
		log.Fatal("Failed to seed roles", zap.Error(err))
	}
	log.Info("Migrations and role seeding complete")

	jwt := jwtutil.NewJWTUtil(&appConfig.JWT)
	metrics := prometheus.NewHTTPMetrics(appConfig.Metrics.Prefix)
	cvStore := upload.NewCVStore(&appConfig.Upload)

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	employerRepo := repository.NewEmployerRepository(db)
	categoryRepo := repository.NewJobCategoryRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	historyRepo := repository.NewApplicationHistoryRepository(db)
	contractRepo := repository.NewContractRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	authService := service.NewAuthService(userRepo, studentRepo, employerRepo, jwt)
	userService := service.NewUserService(userRepo, studentRepo, employerRepo)
	roleService := service.NewRoleService(roleRepo)
	studentService := service.NewStudentService(studentRepo, userRepo)
	employerService := service.NewEmployerService(employerRepo, userRepo)
	categoryService := service.NewJobCategoryService(categoryRepo)
	jobService := service.NewJobService(jobRepo, employerRepo, categoryRepo, applicationRepo)
	applicationService := service.NewApplicationService(applicationRepo, studentRepo, jobRepo)
	historyService := service.NewApplicationHistoryService(historyRepo, applicationRepo)
	contractService := service.NewContractService(contractRepo, applicationRepo)
	paymentService := service.NewPaymentService(paymentRepo, contractRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(mid.RequestID())
	e.Use(logger.Middleware())
	e.Use(metrics.Middleware())

	e.Static("/uploads", appConfig.Upload.Dir+"/uploads")

	handlers := &handler.Handlers{
		Auth:         handler.NewAuthHandler(authService, userService, metrics),
		Users:        handler.NewUserHandler(userService, metrics),
		Roles:        handler.NewRoleHandler(roleService, metrics),
		Students:     handler.NewStudentHandler(studentService, cvStore, metrics),
		Employers:    handler.NewEmployerHandler(employerService, metrics),
		Categories:   handler.NewJobCategoryHandler(categoryService, metrics),
		Jobs:         handler.NewJobHandler(jobService, metrics),
		Applications: handler.NewApplicationHandler(applicationService, metrics),
		Histories:    handler.NewApplicationHistoryHandler(historyService, metrics),
		Contracts:    handler.NewContractHandler(contractService, metrics),
		Payments:     handler.NewPaymentHandler(paymentService, metrics),
	}
	handler.RegisterRoutes(e, handlers, jwt, metrics)

	log.Info("Starting server", zap.String("port", appConfig.Server.Port))
	if err := e.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
