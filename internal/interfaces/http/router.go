package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/empleos-api/internal/application/analytics"
	"github.com/jhoicas/empleos-api/internal/application/auth"
	"github.com/jhoicas/empleos-api/internal/application/usecase"
	"github.com/jhoicas/empleos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AccountUC   *usecase.AccountUseCase
	ResumeUC    *usecase.ResumeUseCase
	VacancyUC   *usecase.VacancyUseCase
	LinkUC      *usecase.LinkUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (register y login públicos; me y refresh requieren token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Post("/refresh", AuthMiddleware(deps.JWTSecret), authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Resumes (la autorización fina la decide el use case según el rol)
	resumes := protected.Group("/resumes")
	resumeHandler := NewResumeHandler(deps.ResumeUC)
	linkHandler := NewLinkHandler(deps.LinkUC)
	resumes.Get("/", resumeHandler.List)
	resumes.Post("/", RequireRole(string(entity.RoleWorker)), resumeHandler.Create)
	resumes.Get("/search", resumeHandler.Search)
	resumes.Get("/:id", resumeHandler.GetByID)
	resumes.Put("/:id", resumeHandler.Update)
	resumes.Delete("/:id", resumeHandler.Delete)
	resumes.Get("/:id/links", linkHandler.ByResume)

	// Vacancies
	vacancies := protected.Group("/vacancies")
	vacancyHandler := NewVacancyHandler(deps.VacancyUC)
	vacancies.Get("/", vacancyHandler.List)
	vacancies.Post("/", RequireRole(string(entity.RoleEmployer)), vacancyHandler.Create)
	vacancies.Get("/my", RequireRole(string(entity.RoleEmployer)), vacancyHandler.GetMine)
	vacancies.Get("/search", vacancyHandler.Search)
	vacancies.Get("/:id", vacancyHandler.GetByID)
	vacancies.Put("/:id", vacancyHandler.Update)
	vacancies.Delete("/:id", vacancyHandler.Delete)
	vacancies.Get("/:id/links", linkHandler.ByVacancy)

	// Links (las rutas fijas van antes que /:id)
	links := protected.Group("/links")
	links.Post("/apply", RequireRole(string(entity.RoleWorker)), linkHandler.Apply)
	links.Post("/offer", RequireRole(string(entity.RoleEmployer)), linkHandler.Offer)
	links.Get("/check-exists", linkHandler.CheckExists)
	links.Get("/my-applications", RequireRole(string(entity.RoleWorker)), linkHandler.MyApplications)
	links.Get("/received-applications", RequireRole(string(entity.RoleEmployer)), linkHandler.ReceivedApplications)
	links.Get("/", RequireRole(string(entity.RoleAdmin)), linkHandler.List)
	links.Get("/:id", linkHandler.GetByID)
	links.Delete("/:id", linkHandler.Delete)

	// Accounts (administración)
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", RequireRole(string(entity.RoleAdmin)), accountHandler.List)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Delete("/:id", RequireRole(string(entity.RoleAdmin)), accountHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
