package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"parttimejobs/internal/model"
	"parttimejobs/internal/web/client"
	"parttimejobs/internal/web/controller"
	"parttimejobs/internal/web/session"
	"parttimejobs/pkg/config"
	"parttimejobs/pkg/logger"
)

const serviceName = "parttimejobs-web"

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

	sessionManager := session.NewManager(&appConfig.Web)
	api := client.NewAPI(&appConfig.Web)

	ct, err := controller.New(api, sessionManager, "web/templates")
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	// Public pages
	r.Get("/", ct.Home)
	r.Get("/login", ct.LoginPage)
	r.Post("/login", ct.LoginSubmit)
	r.Get("/register", ct.RegisterPage)
	r.Post("/register", ct.RegisterSubmit)
	r.Get("/logout", ct.Logout)
	r.Get("/access-denied", ct.AccessDenied)
	r.Get("/jobs", ct.JobList)
	r.Get("/jobs/{id}", ct.JobDetail)

	// Any signed-in user
	r.Group(func(r chi.Router) {
		r.Use(controller.RequireAuth(sessionManager))
		r.Get("/profile", ct.Profile)
		r.Get("/change-password", ct.ChangePasswordPage)
		r.Post("/change-password", ct.ChangePasswordSubmit)
		r.Get("/contracts/{id}", ct.ContractDetail)
	})

	// Students
	r.Group(func(r chi.Router) {
		r.Use(controller.RequireRole(sessionManager, model.RoleStudent))
		r.Post("/profile/student", ct.EditStudentProfileSubmit)
		r.Post("/profile/upload-cv", ct.UploadCVSubmit)
		r.Post("/jobs/{id}/apply", ct.ApplySubmit)
		r.Get("/my-applications", ct.MyApplications)
		r.Post("/applications/{id}/withdraw", ct.WithdrawSubmit)
		r.Get("/my-contracts", ct.MyContracts)
		r.Get("/my-payments", ct.MyPayments)
	})

	// Employers and admins
	r.Group(func(r chi.Router) {
		r.Use(controller.RequireRole(sessionManager, model.RoleEmployer, model.RoleAdmin))
		r.Post("/profile/employer", ct.EditEmployerProfileSubmit)
		r.Get("/my-jobs", ct.MyJobs)
		r.Get("/jobs/create", ct.JobCreatePage)
		r.Post("/jobs/create", ct.JobCreateSubmit)
		r.Post("/jobs/{id}/delete", ct.JobDeleteSubmit)
		r.Get("/applications", ct.EmployerApplications)
		r.Get("/applications/{id}", ct.ApplicationDetail)
		r.Post("/applications/{id}/accept", ct.ApplicationAccept)
		r.Post("/applications/{id}/reject", ct.ApplicationReject)
		r.Get("/contracts", ct.ContractList)
		r.Get("/contracts/create", ct.ContractCreatePage)
		r.Post("/contracts/create", ct.ContractCreateSubmit)
		r.Post("/contracts/{id}/complete", ct.ContractCompleteSubmit)
		r.Get("/contracts/{id}/payments/new", ct.PaymentCreatePage)
		r.Post("/contracts/{id}/payments", ct.PaymentCreateSubmit)
		r.Post("/payments/{id}/status", ct.PaymentStatusSubmit)
	})

	// Admins only
	r.Group(func(r chi.Router) {
		r.Use(controller.RequireRole(sessionManager, model.RoleAdmin))
		r.Get("/admin", ct.AdminDashboard)
		r.Get("/admin/users", ct.AdminUsers)
		r.Post("/admin/users/{id}/toggle-active", ct.AdminUserToggleActive)
		r.Post("/admin/users/{id}/delete", ct.AdminUserDelete)
		r.Get("/admin/jobs", ct.AdminJobs)
		r.Post("/admin/jobs/{id}/delete", ct.AdminJobDelete)
		r.Get("/admin/applications", ct.AdminApplications)
		r.Get("/admin/categories", ct.AdminCategories)
		r.Post("/admin/categories", ct.AdminCategoryCreate)
		r.Get("/admin/employers", ct.AdminEmployers)
		r.Post("/admin/employers/{id}/verify", ct.AdminEmployerToggleVerified)
		r.Post("/contracts/{id}/delete", ct.ContractDeleteSubmit)
		r.Post("/payments/{id}/delete", ct.PaymentDeleteSubmit)
	})

	log.Info("Starting web client", zap.String("port", appConfig.Web.Port), zap.String("api", appConfig.Web.APIBaseURL))
	if err := http.ListenAndServe(":"+appConfig.Web.Port, r); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
