package router

import (
	"database/sql"

	"bar_ops_backend/internal/handlers"
	"bar_ops_backend/internal/middleware"
	"bar_ops_backend/internal/repositories"
	"bar_ops_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)
	shiftRepo := repositories.NewShiftRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	noteRepo := repositories.NewNoteRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Initialize Services
	authService := services.NewAuthService(employeeRepo, db)
	employeeService := services.NewEmployeeService(employeeRepo, db)
	templateService := services.NewTemplateService(templateRepo, db)
	shiftService := services.NewShiftService(shiftRepo, employeeRepo, db)
	assignmentService := services.NewAssignmentService(taskRepo, templateRepo, shiftRepo, employeeRepo, db)
	noteService := services.NewNoteService(noteRepo, db)
	reportService := services.NewReportService(reportRepo, shiftRepo, taskRepo, db)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	noteHandler := handlers.NewNoteHandler(noteService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupEmployeeRoutes(authenticated, employeeHandler)
		SetupTemplateRoutes(authenticated, templateHandler)
		SetupShiftRoutes(authenticated, shiftHandler)
		SetupDailyTaskRoutes(authenticated, assignmentHandler)
		SetupNoteRoutes(authenticated, noteHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}
