package routes

import (
	"Backend-NMIT-Records/src/controllers"
	"Backend-NMIT-Records/src/middleware"
	"Backend-NMIT-Records/src/models"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes ลงทะเบียน route ทั้งหมดภายใต้ /api/v1
func InitRoutes(app *fiber.App, ctl *controllers.Controller) {
	api := app.Group("/api/v1")

	// Route เช็คว่า API และ MongoDB ทำงานอยู่
	api.Get("/", ctl.Health)

	auth := middleware.AuthJWT([]byte(ctl.Config.JWT.Secret), ctl.Blacklist)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	branchRoutes(api, ctl)
	classRoutes(api, ctl)
	studentRoutes(api, ctl, auth, adminOnly)
	statsRoutes(api, ctl)
	authRoutes(api, ctl, auth)
	adminJobRoutes(api, ctl, auth, adminOnly)
}

func branchRoutes(router fiber.Router, ctl *controllers.Controller) {
	router.Post("/branch", ctl.CreateBranch)
	router.Get("/branches", ctl.ListBranches)
}

func classRoutes(router fiber.Router, ctl *controllers.Controller) {
	router.Post("/class", ctl.CreateClass)
	router.Get("/classes", ctl.ListClasses)
}

func studentRoutes(router fiber.Router, ctl *controllers.Controller, auth, adminOnly fiber.Handler) {
	student := router.Group("/student")
	student.Post("/", ctl.CreateStudent)
	student.Get("/all", ctl.GetAllStudents) // ต้องมาก่อน /:id
	student.Get("/:id/no-phone", ctl.GetStudentByIDNoPhone)
	student.Get("/:id/no-phone-lean", ctl.GetStudentByIDNoPhoneLean)
	student.Get("/:id", ctl.GetStudentByID)
	student.Delete("/:id", auth, adminOnly, ctl.DeleteStudent)

	studentsGroup := router.Group("/students")
	studentsGroup.Get("/", ctl.GetStudentsPaginated)
	studentsGroup.Get("/search", ctl.SearchStudents)
	studentsGroup.Get("/class/:classId", ctl.GetStudentsByClass)
}

func statsRoutes(router fiber.Router, ctl *controllers.Controller) {
	router.Get("/stats", ctl.GetIndexStats)
	router.Get("/avg-cgpa", ctl.GetAverageCgpa)
	router.Get("/count-by-age", ctl.GetCountByAge)
	router.Get("/highest-cgpa", ctl.GetHighestCgpa)
	router.Get("/count-by-role", ctl.GetCountByRole)
	router.Get("/average-age-by-role", ctl.GetAverageAgeByRole)
}

func authRoutes(router fiber.Router, ctl *controllers.Controller, auth fiber.Handler) {
	authGroup := router.Group("/auth")
	authGroup.Post("/login", ctl.Login)
	authGroup.Post("/logout", auth, ctl.Logout)
}

func adminJobRoutes(router fiber.Router, ctl *controllers.Controller, auth, adminOnly fiber.Handler) {
	jobsGroup := router.Group("/admin/jobs", auth, adminOnly)
	jobsGroup.Post("/seed", ctl.EnqueueSeed)
	jobsGroup.Post("/seed/run-now", ctl.RunSeedNow)
}
