package controllers

import (
	"Backend-NMIT-Records/src/services/stats"
	"Backend-NMIT-Records/src/services/students"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AverageCgpaResponse ผลของ GET /avg-cgpa
type AverageCgpaResponse struct {
	AverageCgpa float64 `json:"averageCgpa"`
}

// HighestCgpaResponse ผลของ GET /highest-cgpa
type HighestCgpaResponse struct {
	HighestCgpa float64 `json:"highestCgpa"`
}

// GetAverageCgpa godoc
// @Summary Average CGPA of all students (3 decimals)
// @Tags stats
// @Produce json
// @Success 200 {object} AverageCgpaResponse
// @Failure 404 {object} models.ErrorResponse "no students"
// @Router /avg-cgpa [get]
func (ctl *Controller) GetAverageCgpa(c *fiber.Ctx) error {
	avg, err := stats.CalculateAverageCgpa(c.UserContext(), ctl.Store)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(AverageCgpaResponse{AverageCgpa: avg})
}

// GetHighestCgpa godoc
// @Summary Highest CGPA
// @Tags stats
// @Produce json
// @Success 200 {object} HighestCgpaResponse
// @Failure 404 {object} models.ErrorResponse "no students"
// @Router /highest-cgpa [get]
func (ctl *Controller) GetHighestCgpa(c *fiber.Ctx) error {
	max, err := stats.FindHighestCgpa(c.UserContext(), ctl.Store)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(HighestCgpaResponse{HighestCgpa: max})
}

// GetCountByAge godoc
// @Summary Number of students per age
// @Tags stats
// @Produce json
// @Success 200 {array} models.AgeCount
// @Router /count-by-age [get]
func (ctl *Controller) GetCountByAge(c *fiber.Ctx) error {
	rows, err := stats.CountStudentsByAge(c.UserContext(), ctl.Store)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(rows)
}

// GetCountByRole godoc
// @Summary Number of students per role
// @Tags stats
// @Produce json
// @Success 200 {array} models.RoleCount
// @Router /count-by-role [get]
func (ctl *Controller) GetCountByRole(c *fiber.Ctx) error {
	rows, err := stats.CountStudentsByRole(c.UserContext(), ctl.Store)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(rows)
}

// GetAverageAgeByRole godoc
// @Summary Average age per role
// @Tags stats
// @Produce json
// @Success 200 {array} models.RoleAverageAge
// @Router /average-age-by-role [get]
func (ctl *Controller) GetAverageAgeByRole(c *fiber.Ctx) error {
	rows, err := stats.CalculateAverageAgeByRole(c.UserContext(), ctl.Store)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(rows)
}

// GetIndexStats godoc
// @Summary Time an email lookup and list student indexes
// @Tags stats
// @Produce json
// @Param email query string true "Email to look up"
// @Success 200 {object} models.IndexProfile
// @Failure 400 {object} models.ErrorResponse
// @Router /stats [get]
func (ctl *Controller) GetIndexStats(c *fiber.Ctx) error {
	profile, err := students.ProfileEmailLookup(c.UserContext(), ctl.Store, c.Query("email"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(profile)
}
