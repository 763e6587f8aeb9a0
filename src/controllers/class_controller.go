package controllers

import (
	"net/http"

	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/services/classes"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateClass godoc
// @Summary Create class
// @Description Create a class under a branch. The branch is not checked for existence.
// @Tags classes
// @Accept json
// @Produce json
// @Param class body models.CreateClassInput true "Class"
// @Success 201 {object} models.Class
// @Failure 400 {object} models.ErrorResponse
// @Router /class [post]
func (ctl *Controller) CreateClass(c *fiber.Ctx) error {
	var input models.CreateClassInput
	if err := c.BodyParser(&input); err != nil {
		return utils.WriteError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input format")
	}

	class, err := classes.CreateClass(c.UserContext(), ctl.Store, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(class)
}

// ListClasses godoc
// @Summary List classes
// @Tags classes
// @Produce json
// @Param branchId query string false "Filter by branch ID"
// @Success 200 {array} models.Class
// @Router /classes [get]
func (ctl *Controller) ListClasses(c *fiber.Ctx) error {
	list, err := classes.ListClasses(c.UserContext(), ctl.Store, c.Query("branchId"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(list)
}
