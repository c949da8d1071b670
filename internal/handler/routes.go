package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mid "parttimejobs/internal/middleware"
	"parttimejobs/internal/model"
	"parttimejobs/pkg/jwtutil"
	"parttimejobs/prometheus"
)

// Handlers bundles the resource handlers for route registration.
type Handlers struct {
	Auth         *AuthHandler
	Users        *UserHandler
	Roles        *RoleHandler
	Students     *StudentHandler
	Employers    *EmployerHandler
	Categories   *JobCategoryHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Histories    *ApplicationHistoryHandler
	Contracts    *ContractHandler
	Payments     *PaymentHandler
}

// RegisterRoutes wires the full API surface onto the echo instance.
func RegisterRoutes(e *echo.Echo, h *Handlers, jwt *jwtutil.JWTUtil, metrics *prometheus.HTTPMetrics) {
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authed := mid.JWT(jwt, metrics)
	admin := mid.RequireRoles(model.RoleAdmin)
	employerOrAdmin := mid.RequireRoles(model.RoleEmployer, model.RoleAdmin)
	studentOrAdmin := mid.RequireRoles(model.RoleStudent, model.RoleAdmin)

	auth := e.Group("/api/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.GET("/user/:id", h.Auth.GetUser, authed)
	auth.POST("/change-password/:userId", h.Auth.ChangePassword, authed)

	users := e.Group("/api/users", authed, admin)
	users.GET("", h.Users.List)
	users.GET("/:id", h.Users.Get)
	users.PUT("/:id", h.Users.Update)
	users.DELETE("/:id", h.Users.Delete)

	roles := e.Group("/api/roles")
	roles.GET("", h.Roles.List)
	roles.GET("/:id", h.Roles.Get)
	roles.GET("/name/:name", h.Roles.GetByName)
	roles.POST("", h.Roles.Create, authed, admin)
	roles.PUT("/:id", h.Roles.Update, authed, admin)
	roles.DELETE("/:id", h.Roles.Delete, authed, admin)

	students := e.Group("/api/students")
	students.POST("", h.Students.Create)
	students.GET("", h.Students.List, authed)
	students.GET("/:id", h.Students.Get, authed)
	students.GET("/user/:userId", h.Students.Get, authed)
	students.GET("/major/:major", h.Students.ListByMajor, authed)
	students.POST("/profile", h.Students.CreateProfile, authed)
	students.PUT("/:id", h.Students.Update, authed, studentOrAdmin)
	students.POST("/:id/upload-cv", h.Students.UploadCV, authed, studentOrAdmin)
	students.DELETE("/:id", h.Students.Delete, authed, admin)

	employers := e.Group("/api/employers")
	employers.POST("", h.Employers.Create)
	employers.GET("/verified", h.Employers.ListVerified)
	employers.GET("", h.Employers.List, authed)
	employers.GET("/:id", h.Employers.Get, authed)
	employers.GET("/user/:userId", h.Employers.Get, authed)
	employers.PUT("/:id", h.Employers.Update, authed, employerOrAdmin)
	employers.DELETE("/:id", h.Employers.Delete, authed, admin)

	categories := e.Group("/api/jobcategories")
	categories.GET("", h.Categories.List)
	categories.GET("/:id", h.Categories.Get)
	categories.POST("", h.Categories.Create, authed, admin)
	categories.PUT("/:id", h.Categories.Update, authed, admin)
	categories.DELETE("/:id", h.Categories.Delete, authed, admin)

	jobs := e.Group("/api/jobs")
	jobs.GET("", h.Jobs.List)
	jobs.GET("/active", h.Jobs.ListActive)
	jobs.GET("/:id", h.Jobs.Get)
	jobs.GET("/employer/:employerId", h.Jobs.ListByEmployer)
	jobs.GET("/category/:categoryId", h.Jobs.ListByCategory)
	jobs.POST("", h.Jobs.Create, authed, employerOrAdmin)
	jobs.PUT("/:id", h.Jobs.Update, authed, employerOrAdmin)
	jobs.DELETE("/:id", h.Jobs.Delete, authed, employerOrAdmin)

	applications := e.Group("/api/applications", authed)
	applications.GET("", h.Applications.List, admin)
	applications.GET("/:id", h.Applications.Get)
	applications.GET("/student/:studentId", h.Applications.ListByStudent, studentOrAdmin)
	applications.GET("/job/:jobId", h.Applications.ListByJob, employerOrAdmin)
	applications.POST("", h.Applications.Create, mid.RequireRoles(model.RoleStudent))
	applications.PATCH("/:id/status", h.Applications.UpdateStatus, employerOrAdmin)
	applications.DELETE("/:id", h.Applications.Delete, studentOrAdmin)

	histories := e.Group("/api/applicationhistories", authed)
	histories.GET("/:id", h.Histories.Get)
	histories.GET("/application/:applicationId", h.Histories.ListByApplication)
	histories.POST("", h.Histories.Create, employerOrAdmin)

	contracts := e.Group("/api/contracts", authed)
	contracts.GET("", h.Contracts.List, admin)
	contracts.GET("/active", h.Contracts.ListActive)
	contracts.GET("/:id", h.Contracts.Get)
	contracts.GET("/application/:applicationId", h.Contracts.GetByApplication)
	contracts.GET("/student/:studentId", h.Contracts.ListByStudent)
	contracts.GET("/employer/:employerId", h.Contracts.ListByEmployer, employerOrAdmin)
	contracts.POST("", h.Contracts.Create, employerOrAdmin)
	contracts.PUT("/:id", h.Contracts.Update, employerOrAdmin)
	contracts.DELETE("/:id", h.Contracts.Delete, admin)

	payments := e.Group("/api/payments", authed)
	payments.GET("", h.Payments.List, admin)
	payments.GET("/:id", h.Payments.Get)
	payments.GET("/contract/:contractId", h.Payments.ListByContract)
	payments.GET("/student/:studentId", h.Payments.ListByStudent)
	payments.GET("/status/:status", h.Payments.ListByStatus, mid.RequireRoles(model.RoleAdmin, model.RoleEmployer))
	payments.POST("", h.Payments.Create, employerOrAdmin)
	payments.PUT("/:id", h.Payments.Update)
	payments.DELETE("/:id", h.Payments.Delete, admin)
}
