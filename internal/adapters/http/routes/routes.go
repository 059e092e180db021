package routes

import (
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/http/handlers"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/http/middleware"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/config"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	dueRepo := repositories.NewDueRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	socialRepo := repositories.NewSocialCaseRepository(db)

	// Initialize services
	authService := services.NewAuthService(db, accountRepo, memberRepo, cfg)
	accountService := services.NewAccountService(accountRepo)
	memberService := services.NewMemberService(memberRepo, accountRepo)
	activityService := services.NewActivityService(activityRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, activityRepo, memberRepo)
	contributionService := services.NewContributionService(contributionRepo, memberRepo)
	dueService := services.NewDueService(dueRepo, memberRepo)
	documentService := services.NewDocumentService(documentRepo)
	socialService := services.NewSocialService(socialRepo, memberRepo)
	dashboardService := services.NewDashboardService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(accountService)
	memberHandler := handlers.NewMemberHandler(memberService)
	activityHandler := handlers.NewActivityHandler(activityService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	contributionHandler := handlers.NewContributionHandler(contributionService)
	dueHandler := handlers.NewDueHandler(dueService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	socialHandler := handlers.NewSocialHandler(socialService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Auth routes (login/register public, rate limited)
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Get("/verify", middleware.AuthMiddleware(cfg), authHandler.Verify)

	// Everything below requires a valid token
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	members := protected.Group("/members", middleware.RequirePermission("members"))
	members.Get("/", memberHandler.List)
	members.Post("/", memberHandler.Create)
	members.Get("/:id", memberHandler.Get)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)

	activities := protected.Group("/activities", middleware.RequirePermission("activities"))
	activities.Get("/", activityHandler.List)
	activities.Post("/", activityHandler.Create)
	activities.Get("/:id", activityHandler.Get)
	activities.Put("/:id", activityHandler.Update)
	activities.Delete("/:id", activityHandler.Delete)

	attendance := protected.Group("/attendance", middleware.RequirePermission("attendance"))
	attendance.Get("/", attendanceHandler.List)
	attendance.Post("/", attendanceHandler.Create)
	attendance.Get("/stats/overview", attendanceHandler.Overview)
	attendance.Get("/activity/:activityId", attendanceHandler.ListByActivity)
	attendance.Get("/member/:memberId", attendanceHandler.ListByMember)
	attendance.Put("/:id", attendanceHandler.Update)
	attendance.Delete("/:id", attendanceHandler.Delete)

	contributions := protected.Group("/contributions", middleware.RequirePermission("contributions"))
	contributions.Get("/", contributionHandler.List)
	contributions.Post("/", contributionHandler.Create)
	contributions.Get("/stats/overview", contributionHandler.Overview)
	contributions.Get("/member/:memberId", contributionHandler.ListByMember)
	contributions.Put("/:id", contributionHandler.Update)
	contributions.Delete("/:id", contributionHandler.Delete)

	dues := protected.Group("/dues", middleware.RequirePermission("dues"))
	dues.Get("/", dueHandler.List)
	dues.Post("/", dueHandler.Create)
	dues.Get("/stats/overview", dueHandler.Overview)
	dues.Get("/member/:memberId", dueHandler.ListByMember)
	dues.Put("/:id", dueHandler.Update)
	dues.Delete("/:id", dueHandler.Delete)

	documents := protected.Group("/documents", middleware.RequirePermission("documents"))
	documents.Get("/", documentHandler.List)
	documents.Post("/", documentHandler.Create)
	documents.Get("/:id", documentHandler.Get)
	documents.Put("/:id", documentHandler.Update)
	documents.Delete("/:id", documentHandler.Delete)

	socialCases := protected.Group("/social-cases", middleware.RequirePermission("social"))
	socialCases.Get("/", socialHandler.List)
	socialCases.Post("/", socialHandler.Create)
	socialCases.Get("/member/:memberId", socialHandler.ListByMember)
	socialCases.Get("/:id", socialHandler.Get)
	socialCases.Put("/:id", socialHandler.Update)
	socialCases.Delete("/:id", socialHandler.Delete)
	socialCases.Post("/:id/assistances", socialHandler.CreateAssistance)
	socialCases.Get("/:id/assistances", socialHandler.ListAssistances)

	dashboard := protected.Group("/dashboard", middleware.RequirePermission("dashboard"))
	dashboard.Get("/stats", dashboardHandler.Stats)

	reports := protected.Group("/reports", middleware.RequirePermission("reports"))
	reports.Get("/members", reportHandler.Members)
	reports.Get("/financial", reportHandler.Financial)
	reports.Get("/activities", reportHandler.Activities)
	reports.Get("/social-cases", reportHandler.SocialCases)

	// Account administration (admin only)
	accounts := protected.Group("/accounts", middleware.AdminOnly())
	accounts.Get("/", accountHandler.List)
	accounts.Get("/:id", accountHandler.Get)
	accounts.Put("/:id/role", accountHandler.UpdateRole)
	accounts.Put("/:id/activate", accountHandler.Activate)
	accounts.Put("/:id/deactivate", accountHandler.Deactivate)
	accounts.Put("/:id/password", accountHandler.ResetPassword)
	accounts.Delete("/:id", accountHandler.Delete)
}
