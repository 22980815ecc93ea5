package router

import (
	"bar_ops_backend/internal/handlers"
	"bar_ops_backend/internal/middleware"
	"bar_ops_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh-token", authHandler.RefreshToken)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.POST("/logout", authHandler.Logout)
			authRequiredRoutes.GET("/me", authHandler.GetCurrentEmployee)
		}
	}
}

// SetupEmployeeRoutes sets up the employee routes.
// Write operations are admin only, reads are open to any signed-in employee.
func SetupEmployeeRoutes(authenticatedGroup *gin.RouterGroup, employeeHandler *handlers.EmployeeHandler) {
	employeeWriteRoutes := authenticatedGroup.Group("/employees")
	employeeWriteRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		employeeWriteRoutes.POST("", employeeHandler.CreateEmployee)
		employeeWriteRoutes.PUT("/:id", employeeHandler.UpdateEmployee)
		employeeWriteRoutes.DELETE("/:id", employeeHandler.DeleteEmployee)
	}

	authenticatedGroup.GET("/employees", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee), employeeHandler.GetEmployees)
	authenticatedGroup.GET("/employees/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee), employeeHandler.GetEmployeeByID)
}

// SetupTemplateRoutes sets up the task template routes.
// Template management is admin only, listing is open to any signed-in employee.
func SetupTemplateRoutes(authenticatedGroup *gin.RouterGroup, templateHandler *handlers.TemplateHandler) {
	templateWriteRoutes := authenticatedGroup.Group("/task-templates")
	templateWriteRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		templateWriteRoutes.POST("", templateHandler.CreateTemplate)
		templateWriteRoutes.PUT("/:id", templateHandler.UpdateTemplate)
	}

	authenticatedGroup.GET("/task-templates", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee), templateHandler.GetTemplates)
	authenticatedGroup.GET("/task-templates/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee), templateHandler.GetTemplateByID)
}

// SetupShiftRoutes sets up the shift routes.
func SetupShiftRoutes(authenticatedGroup *gin.RouterGroup, shiftHandler *handlers.ShiftHandler) {
	shiftRoutes := authenticatedGroup.Group("/shifts")
	shiftRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee))
	{
		shiftRoutes.POST("", shiftHandler.CreateShift)
		shiftRoutes.GET("", shiftHandler.GetShifts)
		shiftRoutes.GET("/:id", shiftHandler.GetShiftByID)
		shiftRoutes.PUT("/:id", shiftHandler.UpdateShift)
		shiftRoutes.DELETE("/:id", shiftHandler.DeleteShift)
	}
}

// SetupDailyTaskRoutes sets up the daily task board routes.
func SetupDailyTaskRoutes(authenticatedGroup *gin.RouterGroup, assignmentHandler *handlers.AssignmentHandler) {
	dailyTaskRoutes := authenticatedGroup.Group("/daily-tasks")
	dailyTaskRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee))
	{
		dailyTaskRoutes.GET("", assignmentHandler.GetDailyTasks)
		dailyTaskRoutes.POST("", assignmentHandler.AssignTask)
		dailyTaskRoutes.PATCH("/:id/complete", assignmentHandler.CompleteTask)
		dailyTaskRoutes.PATCH("/:id/uncomplete", assignmentHandler.UncompleteTask)
		dailyTaskRoutes.DELETE("/:id", assignmentHandler.DeleteAssignedTask)
	}
}

// SetupNoteRoutes sets up the staff note routes.
func SetupNoteRoutes(authenticatedGroup *gin.RouterGroup, noteHandler *handlers.NoteHandler) {
	noteRoutes := authenticatedGroup.Group("/notes")
	noteRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee))
	{
		noteRoutes.POST("", noteHandler.CreateNote)
		noteRoutes.GET("", noteHandler.GetNotes)
		noteRoutes.PATCH("/:id/archive", noteHandler.ArchiveNote)
		noteRoutes.PATCH("/:id/unarchive", noteHandler.UnarchiveNote)
	}

	// Clearing the archive is destructive, keep it admin only.
	authenticatedGroup.DELETE("/notes/archived", middleware.RoleAuthMiddleware(models.RoleAdmin), noteHandler.DeleteArchivedNotes)
}

// SetupReportRoutes sets up the shift report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/shifts")
	reportRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee))
	{
		reportRoutes.GET("/:id/report", reportHandler.GetShiftReport)
		reportRoutes.PUT("/:id/cash-report", reportHandler.SaveCashReport)
	}
}
