package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/controllers"
	"github.com/jmcabral/registra/internal/middleware"
)

// SetupRouter registers the API routes. Everything under /api except
// login requires a valid session.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	programController *controllers.ProgramController,
	studentController *controllers.StudentController,
	sessionAuth *middleware.SessionAuth,
) {
	api := router.Group("/api")

	api.POST("/login", authController.Login)

	protected := api.Group("")
	protected.Use(sessionAuth.RequireSession())

	protected.POST("/logout", authController.Logout)

	colleges := protected.Group("/colleges")
	{
		colleges.GET("", collegeController.List)
		colleges.GET("/search", collegeController.Search)
		colleges.POST("/add", collegeController.Add)
		colleges.PUT("/update", collegeController.Update)
		colleges.DELETE("/delete", collegeController.Delete)
	}

	programs := protected.Group("/programs")
	{
		programs.GET("", programController.List)
		programs.GET("/search", programController.Search)
		programs.POST("/add", programController.Add)
		programs.PUT("/update", programController.Update)
		programs.DELETE("/delete", programController.Delete)
	}

	students := protected.Group("/students")
	{
		students.GET("", studentController.List)
		students.GET("/search", studentController.Search)
		students.POST("/add", studentController.Add)
		students.PUT("/update", studentController.Update)
		students.DELETE("/delete", studentController.Delete)
	}
}
